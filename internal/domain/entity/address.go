// Package entity contains the core business objects of the project.
package entity

// Address is a saved delivery address in the customer's address book.
// The address book is server-owned; the client trusts the returned list as-is,
// including which entry carries the default flag.
type Address struct {
	ID          string // The server-assigned identifier for this entry.
	Name        string // The recipient name for deliveries to this address.
	Phone       string // The recipient phone number.
	AddressType string // A customer-chosen label, e.g. "home" or "office".
	IsDefault   bool   // Whether the server marks this entry as the default.
	City        string // Province or city.
	District    string // District within the city.
	Ward        string // Ward within the district.
	Address     string // Street-level address line.
}

// ShippingLine renders the address as the single comma-joined line the order
// endpoints expect.
func (a Address) ShippingLine() string {
	return a.Address + ", " + a.Ward + ", " + a.District + ", " + a.City
}
