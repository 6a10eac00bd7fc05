// Package entity contains the core business objects of the project.
package entity

// CartLine is one line of the customer's cart. The authoritative cart lives
// server-side; the client only ever holds a mirror rebuilt from the latest
// fetch, never a locally computed variant.
type CartLine struct {
	LineID    string  // The server-assigned identifier of the cart line.
	ProductID string  // The identifier of the referenced product.
	Name      string  // Product name at the time of the fetch.
	Price     float64 // Unit price at the time of the fetch.
	Image     string  // Product image URL, empty when none.
	Quantity  int     // Number of units, always >= 1 in a mapped line.
}

// CartSubtotal sums price times quantity across the given lines.
func CartSubtotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}

	return total
}
