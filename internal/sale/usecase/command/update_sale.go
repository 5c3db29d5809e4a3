package command

import (
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// UpdateSaleCommand represents the command to update a sale status
type UpdateSaleCommand struct {
	ID     uint
	Status string
}

// UpdateSaleHandler handles sale update command
type UpdateSaleHandler struct {
	repo domain.SaleRepository
}

// NewUpdateSaleHandler creates a new update sale handler
func NewUpdateSaleHandler(repo domain.SaleRepository) *UpdateSaleHandler {
	return &UpdateSaleHandler{repo: repo}
}

// Handle executes the update sale command. Only the status is mutable;
// the header amounts and the items are fixed at creation time.
func (h *UpdateSaleHandler) Handle(cmd UpdateSaleCommand) (*domain.Sale, error) {
	if cmd.ID == 0 {
		return nil, apperrors.Validation("the id is required")
	}
	if cmd.Status == "" {
		return nil, apperrors.Validation("the status is required")
	}
	if !domain.ValidStatus(cmd.Status) {
		return nil, apperrors.Validation("the status must be Pending, Completed or Canceled")
	}

	sale, err := h.repo.UpdateStatus(cmd.ID, cmd.Status)
	if err != nil {
		return nil, apperrors.Storage("failed to update sale", err)
	}
	return sale, nil
}
