// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus represents the lifecycle state of an order as reported by the
// server. Orders are created server-side at checkout; the client only reads
// them and, while still pending, may request cancellation.
type OrderStatus string

const (
	// OrderPending indicates an order awaiting processing.
	OrderPending OrderStatus = "pending"
	// OrderProcessing indicates an order being prepared or shipped.
	OrderProcessing OrderStatus = "processing"
	// OrderCompleted indicates a delivered order.
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled indicates a cancelled order.
	OrderCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanCancel reports whether an order in this status may still be cancelled.
func (s OrderStatus) CanCancel() bool {
	return s == OrderPending
}

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ProductID string  // The identifier of the purchased product.
	Name      string  // Product name captured at checkout, if the server returns it.
	Quantity  int     // Number of units purchased.
	UnitPrice float64 // Unit price captured at checkout.
}

// Order is a read-only snapshot of a placed order.
type Order struct {
	ID              string      // The server-assigned order identifier.
	Status          OrderStatus // Current lifecycle state.
	Items           []OrderItem // The purchased lines.
	ShippingAddress string      // The full shipping address line.
	RecipientName   string      // Who the order is addressed to.
	Phone           string      // Contact phone for the delivery.
	PaymentMethod   string      // "cod" or "online".
	Note            string      // Optional customer note.
	CancelReason    string      // Reason supplied when the order was cancelled.
	Total           float64     // Order total as computed server-side.
	CreatedAt       time.Time   // When the order was placed.
}

// OrderDraft is the checkout payload for placing a new order.
type OrderDraft struct {
	Items           []OrderItem
	ShippingAddress string
	RecipientName   string
	Phone           string
	PaymentMethod   string
	Note            string
}
