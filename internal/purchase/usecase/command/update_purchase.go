package command

import (
	"github.com/tair/retail-management/internal/purchase/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// UpdatePurchaseCommand represents the command to update a purchase.
// Zero-valued fields are left untouched on the stored row.
type UpdatePurchaseCommand struct {
	ID            uint
	Description   string
	Price         float64
	PaymentMethod string
}

// UpdatePurchaseHandler handles purchase update command
type UpdatePurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewUpdatePurchaseHandler creates a new update purchase handler
func NewUpdatePurchaseHandler(repo domain.PurchaseRepository) *UpdatePurchaseHandler {
	return &UpdatePurchaseHandler{repo: repo}
}

// Handle executes the update purchase command
func (h *UpdatePurchaseHandler) Handle(cmd UpdatePurchaseCommand) (*domain.Purchase, error) {
	if cmd.ID == 0 {
		return nil, apperrors.Validation("the id is required")
	}
	if len(cmd.Description) > 255 {
		return nil, apperrors.Validation("the description must have a maximum of 255 characters")
	}
	if cmd.Price < 0 {
		return nil, apperrors.Validation("the price must be a positive number")
	}

	purchase, err := h.repo.Update(cmd.ID, func(p *domain.Purchase) {
		if cmd.Description != "" {
			p.Description = cmd.Description
		}
		if cmd.Price > 0 {
			p.Price = cmd.Price
		}
		if cmd.PaymentMethod != "" {
			p.PaymentMethod = cmd.PaymentMethod
		}
	})
	if err != nil {
		return nil, apperrors.Storage("failed to update purchase", err)
	}

	return purchase, nil
}
