package command

import (
	"github.com/tair/retail-management/internal/purchase/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// DeletePurchaseCommand represents the command to delete a purchase
type DeletePurchaseCommand struct {
	ID uint
}

// DeletePurchaseHandler handles purchase deletion command
type DeletePurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewDeletePurchaseHandler creates a new delete purchase handler
func NewDeletePurchaseHandler(repo domain.PurchaseRepository) *DeletePurchaseHandler {
	return &DeletePurchaseHandler{repo: repo}
}

// Handle executes the delete purchase command
func (h *DeletePurchaseHandler) Handle(cmd DeletePurchaseCommand) error {
	if cmd.ID == 0 {
		return apperrors.Validation("the id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return apperrors.Storage("failed to delete purchase", err)
	}

	return nil
}
