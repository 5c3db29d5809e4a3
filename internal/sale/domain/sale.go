package domain

import (
	"errors"
	"time"

	clientdomain "github.com/tair/retail-management/internal/client/domain"
	employeedomain "github.com/tair/retail-management/internal/employee/domain"
	productdomain "github.com/tair/retail-management/internal/product/domain"
)

// Sale statuses
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCanceled  = "Canceled"
)

// ErrSaleNotFound is returned by repositories when a sale id has no row.
var ErrSaleNotFound = errors.New("sale not found")

// Sale represents the sale header entity. Client and employee rows
// referenced by a sale cannot be deleted while the sale exists.
type Sale struct {
	ID          uint                     `json:"id" gorm:"primaryKey"`
	ClientID    uint                     `json:"client_id" gorm:"not null;index"`
	Client      *clientdomain.Client     `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	EmployeeID  uint                     `json:"employee_id" gorm:"not null;index"`
	Employee    *employeedomain.Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT"`
	TotalAmount float64                  `json:"total_amount" gorm:"not null"`
	Status      string                   `json:"status" gorm:"not null"`
	SaleDate    time.Time                `json:"sale_date" gorm:"autoCreateTime"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents one line item of a sale. Deleting the sale
// cascades to its items; referenced products cannot be deleted while
// items point at them.
type SaleItem struct {
	ID        uint                   `json:"id" gorm:"primaryKey"`
	SaleID    uint                   `json:"sale_id" gorm:"not null;index"`
	Sale      *Sale                  `json:"-" gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	ProductID uint                   `json:"product_id" gorm:"not null;index"`
	Product   *productdomain.Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int                    `json:"quantity" gorm:"not null"`
	Price     float64                `json:"price" gorm:"not null"`
}

// TableName specifies the table name
func (SaleItem) TableName() string {
	return "sale_items"
}

// ItemWithProduct is a sale item together with the product state it
// observed. On creation this is the product snapshot taken right after
// the stock decrement; on reads it is the current product row.
type ItemWithProduct struct {
	SaleItem
	Product productdomain.Product `json:"product"`
}

// SaleWithItems is the sale header merged with its enriched items.
type SaleWithItems struct {
	Sale
	Items []ItemWithProduct `json:"items"`
}

// ValidStatus reports whether status is one of the sale statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// SaleRepository defines the contract for sale data access
type SaleRepository interface {
	// CreateWithItems persists the sale header, every item and the
	// per-item stock decrement as one atomic unit of work. On any
	// failure nothing is persisted.
	CreateWithItems(sale *Sale, items []SaleItem) (*SaleWithItems, error)
	FindByID(id uint) (*Sale, error)
	FindAll() ([]Sale, error)
	// FindItems returns the items of a sale, each with the current
	// product row attached.
	FindItems(saleID uint) ([]ItemWithProduct, error)
	UpdateStatus(id uint, status string) (*Sale, error)
	Delete(id uint) error
}
