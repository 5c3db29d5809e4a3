package query

import (
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// ListSalesQuery represents the query to list all sales
type ListSalesQuery struct{}

// ListSalesHandler handles list sales query
type ListSalesHandler struct {
	repo domain.SaleRepository
}

// NewListSalesHandler creates a new list sales handler
func NewListSalesHandler(repo domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{repo: repo}
}

// Handle executes the list sales query
func (h *ListSalesHandler) Handle(ListSalesQuery) ([]domain.Sale, error) {
	sales, err := h.repo.FindAll()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch sales", err)
	}
	return sales, nil
}
