package domain

import "time"

// Client represents the client entity
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Client) TableName() string {
	return "clients"
}

// ClientRepository defines the contract for client data access
type ClientRepository interface {
	Create(client *Client) error
	FindAll() ([]Client, error)
	// Update reads the row, applies the merge and writes it back inside
	// a single transaction.
	Update(id uint, apply func(*Client)) (*Client, error)
	Delete(id uint) error
}
