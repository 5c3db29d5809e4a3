package domain

import "time"

// Product represents the product entity. Stock is the shared mutable
// resource decremented by sales and incremented by restocks.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// Inventory represents a restock entry for a product. Deleting the
// product cascades to its inventory rows.
type Inventory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Product   *Product  `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Time      time.Time `json:"time" gorm:"autoCreateTime"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindAll() ([]Product, error)
	// Update reads the row, applies the merge and writes it back inside
	// a single transaction.
	Update(id uint, apply func(*Product)) (*Product, error)
	Delete(id uint) error
	// Restock records an inventory entry and increments the product's
	// stock in the same transaction.
	Restock(productID uint, quantity int) (*Inventory, error)
}
