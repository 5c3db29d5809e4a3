package command

import (
	"github.com/tair/retail-management/internal/purchase/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// CreatePurchaseCommand represents the command to create a new purchase
type CreatePurchaseCommand struct {
	Description   string
	Price         float64
	PaymentMethod string
}

// CreatePurchaseHandler handles purchase creation command
type CreatePurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewCreatePurchaseHandler creates a new create purchase handler
func NewCreatePurchaseHandler(repo domain.PurchaseRepository) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{repo: repo}
}

// Handle executes the create purchase command
func (h *CreatePurchaseHandler) Handle(cmd CreatePurchaseCommand) (*domain.Purchase, error) {
	if cmd.Description == "" {
		return nil, apperrors.Validation("the description is required")
	}
	if len(cmd.Description) > 255 {
		return nil, apperrors.Validation("the description must have a maximum of 255 characters")
	}
	if cmd.Price <= 0 {
		return nil, apperrors.Validation("the price must be a positive number")
	}
	if cmd.PaymentMethod == "" {
		return nil, apperrors.Validation("the payment method is required")
	}

	purchase := &domain.Purchase{
		Description:   cmd.Description,
		Price:         cmd.Price,
		PaymentMethod: cmd.PaymentMethod,
	}

	if err := h.repo.Create(purchase); err != nil {
		return nil, apperrors.Storage("failed to create purchase", err)
	}

	return purchase, nil
}
