package command

import (
	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return apperrors.Validation("the id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return apperrors.Storage("failed to delete product", err)
	}

	return nil
}
