package query

import (
	"errors"

	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// GetSaleQuery represents the query to fetch one sale with its items
type GetSaleQuery struct {
	ID uint
}

// GetSaleHandler handles get sale query
type GetSaleHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleHandler creates a new get sale handler
func NewGetSaleHandler(repo domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{repo: repo}
}

// Handle executes the get sale query. An unknown id still answers with
// an empty header and no items rather than an error.
func (h *GetSaleHandler) Handle(q GetSaleQuery) (*domain.SaleWithItems, error) {
	if q.ID == 0 {
		return nil, apperrors.Validation("the id is required")
	}

	result := &domain.SaleWithItems{Items: []domain.ItemWithProduct{}}

	sale, err := h.repo.FindByID(q.ID)
	if err != nil && !errors.Is(err, domain.ErrSaleNotFound) {
		return nil, apperrors.Storage("failed to fetch sale", err)
	}
	if sale == nil {
		return result, nil
	}
	result.Sale = *sale

	items, err := h.repo.FindItems(q.ID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch sale items", err)
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}
