package command

import (
	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// RestockInventoryCommand represents the command to restock a product
type RestockInventoryCommand struct {
	ProductID uint
	Quantity  int
}

// RestockInventoryHandler handles inventory restock command
type RestockInventoryHandler struct {
	repo domain.ProductRepository
}

// NewRestockInventoryHandler creates a new restock inventory handler
func NewRestockInventoryHandler(repo domain.ProductRepository) *RestockInventoryHandler {
	return &RestockInventoryHandler{repo: repo}
}

// Handle executes the restock inventory command
func (h *RestockInventoryHandler) Handle(cmd RestockInventoryCommand) (*domain.Inventory, error) {
	if cmd.ProductID == 0 {
		return nil, apperrors.Validation("the product id is required")
	}
	if cmd.Quantity < 1 {
		return nil, apperrors.Validation("the quantity must be at least 1")
	}

	inventory, err := h.repo.Restock(cmd.ProductID, cmd.Quantity)
	if err != nil {
		return nil, apperrors.Storage("failed to update inventory", err)
	}

	return inventory, nil
}
