package kafka

import "time"

// SaleItemEvent is one sale line item as carried on the wire.
type SaleItemEvent struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// SaleCreatedEvent represents a completed sale creation
type SaleCreatedEvent struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	SaleID      uint            `json:"sale_id"`
	ClientID    uint            `json:"client_id"`
	EmployeeID  uint            `json:"employee_id"`
	TotalAmount float64         `json:"total_amount"`
	Status      string          `json:"status"`
	Items       []SaleItemEvent `json:"items"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleCreated = "sale.created"
)

// Kafka topics
const (
	TopicSaleCreated = "sale-created"
)
