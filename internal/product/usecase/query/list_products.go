package query

import (
	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// ListProductsQuery represents the query to list all products
type ListProductsQuery struct{}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch products", err)
	}
	return products, nil
}
