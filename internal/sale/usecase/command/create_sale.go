package command

import (
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// SaleItemInput is one requested line item of a sale.
type SaleItemInput struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// CreateSaleCommand represents the command to create a sale
type CreateSaleCommand struct {
	ClientID    uint
	EmployeeID  uint
	TotalAmount float64
	Status      string
	Items       []SaleItemInput
}

// CreateSaleHandler handles sale creation command
type CreateSaleHandler struct {
	repo domain.SaleRepository
}

// NewCreateSaleHandler creates a new create sale handler
func NewCreateSaleHandler(repo domain.SaleRepository) *CreateSaleHandler {
	return &CreateSaleHandler{repo: repo}
}

// Handle executes the create sale command. Requests carrying the same
// product on more than one item are rejected before any storage work
// starts.
func (h *CreateSaleHandler) Handle(cmd CreateSaleCommand) (*domain.SaleWithItems, error) {
	if cmd.ClientID == 0 {
		return nil, apperrors.Validation("the client id is required")
	}
	if cmd.EmployeeID == 0 {
		return nil, apperrors.Validation("the employee id is required")
	}
	if cmd.TotalAmount <= 0 {
		return nil, apperrors.Validation("the total amount must be greater than zero")
	}
	if cmd.Status == "" {
		return nil, apperrors.Validation("the status is required")
	}
	if !domain.ValidStatus(cmd.Status) {
		return nil, apperrors.Validation("the status must be Pending, Completed or Canceled")
	}
	if len(cmd.Items) == 0 {
		return nil, apperrors.Validation("the sale must have at least one item")
	}

	seen := make(map[uint]struct{}, len(cmd.Items))
	for _, item := range cmd.Items {
		if item.ProductID == 0 {
			return nil, apperrors.Validation("every item needs a product id")
		}
		if item.Quantity <= 0 {
			return nil, apperrors.Validation("every item quantity must be greater than zero")
		}
		if item.Price <= 0 {
			return nil, apperrors.Validation("every item price must be greater than zero")
		}
		if _, dup := seen[item.ProductID]; dup {
			return nil, apperrors.Validation("cannot create a sale with a repeated product")
		}
		seen[item.ProductID] = struct{}{}
	}

	sale := &domain.Sale{
		ClientID:    cmd.ClientID,
		EmployeeID:  cmd.EmployeeID,
		TotalAmount: cmd.TotalAmount,
		Status:      cmd.Status,
	}

	items := make([]domain.SaleItem, len(cmd.Items))
	for i, item := range cmd.Items {
		items[i] = domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	created, err := h.repo.CreateWithItems(sale, items)
	if err != nil {
		return nil, apperrors.Storage("failed to create sale", err)
	}
	return created, nil
}
