package domain

// Purchase represents the purchase entity
type Purchase struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
}

// TableName specifies the table name
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseRepository defines the contract for purchase data access
type PurchaseRepository interface {
	Create(purchase *Purchase) error
	FindAll() ([]Purchase, error)
	// Update reads the row, applies the merge and writes it back inside
	// a single transaction.
	Update(id uint, apply func(*Purchase)) (*Purchase, error)
	Delete(id uint) error
}
