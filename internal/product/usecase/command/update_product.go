package command

import (
	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// UpdateProductCommand represents the command to update a product.
// Zero-valued fields are left untouched on the stored row.
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Description string
	Price       float64
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperrors.Validation("the id is required")
	}
	if len(cmd.Name) > 150 {
		return nil, apperrors.Validation("the name must have a maximum of 150 characters")
	}
	if len(cmd.Description) > 255 {
		return nil, apperrors.Validation("the description must have a maximum of 255 characters")
	}
	if cmd.Price < 0 {
		return nil, apperrors.Validation("the price must be a positive number")
	}

	product, err := h.repo.Update(cmd.ID, func(p *domain.Product) {
		if cmd.Name != "" {
			p.Name = cmd.Name
		}
		if cmd.Description != "" {
			p.Description = cmd.Description
		}
		if cmd.Price > 0 {
			p.Price = cmd.Price
		}
	})
	if err != nil {
		return nil, apperrors.Storage("failed to update product", err)
	}

	return product, nil
}
