package query

import (
	"github.com/tair/retail-management/internal/purchase/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// ListPurchasesQuery represents the query to list all purchases
type ListPurchasesQuery struct{}

// ListPurchasesHandler handles list purchases query
type ListPurchasesHandler struct {
	repo domain.PurchaseRepository
}

// NewListPurchasesHandler creates a new list purchases handler
func NewListPurchasesHandler(repo domain.PurchaseRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{repo: repo}
}

// Handle executes the list purchases query
func (h *ListPurchasesHandler) Handle(ListPurchasesQuery) ([]domain.Purchase, error) {
	purchases, err := h.repo.FindAll()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch purchases", err)
	}
	return purchases, nil
}
