// Package entity contains the core business objects of the project.
package entity

// PaymentLink is the redirect target for an online checkout, created by the
// payment endpoint after an order has been placed.
type PaymentLink struct {
	OrderID     string // The order the link pays for.
	CheckoutURL string // Where the shell should send the customer.
}
