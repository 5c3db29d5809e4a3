package command

import (
	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, apperrors.Validation("the name is required")
	}
	if len(cmd.Name) > 150 {
		return nil, apperrors.Validation("the name must have a maximum of 150 characters")
	}
	if len(cmd.Description) > 255 {
		return nil, apperrors.Validation("the description must have a maximum of 255 characters")
	}
	if cmd.Price <= 0 {
		return nil, apperrors.Validation("the price must be a positive number")
	}
	if cmd.Stock < 0 {
		return nil, apperrors.Validation("the stock cannot be negative")
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, apperrors.Storage("failed to create product", err)
	}

	return product, nil
}
