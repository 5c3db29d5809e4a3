package command

import (
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// DeleteSaleCommand represents the command to delete a sale
type DeleteSaleCommand struct {
	ID uint
}

// DeleteSaleHandler handles sale deletion command
type DeleteSaleHandler struct {
	repo domain.SaleRepository
}

// NewDeleteSaleHandler creates a new delete sale handler
func NewDeleteSaleHandler(repo domain.SaleRepository) *DeleteSaleHandler {
	return &DeleteSaleHandler{repo: repo}
}

// Handle executes the delete sale command
func (h *DeleteSaleHandler) Handle(cmd DeleteSaleCommand) error {
	if cmd.ID == 0 {
		return apperrors.Validation("the id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return apperrors.Storage("failed to delete sale", err)
	}

	return nil
}
