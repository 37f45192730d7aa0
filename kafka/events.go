package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is emitted once a checkout has been recorded
type OrderPlacedEvent struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OrderID       string          `json:"order_id"`
	UserID        uint            `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	ItemCount     int             `json:"item_count"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
