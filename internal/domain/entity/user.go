// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the account snapshot the client holds for the signed-in customer.
// It is a value-like copy of what the server returned at login or on the
// last profile fetch; the view layer never mutates it directly.
type User struct {
	ID       string  // The server-assigned identifier for the account.
	Username string  // The login name of the account.
	Role     Role    // The account role, used for the navigation branch.
	Profile  Profile // The customer-facing profile attached to the account.
}

// Profile holds the customer-facing details of an account.
type Profile struct {
	Name        string    // The customer's display name.
	Email       string    // The customer's contact email.
	Phone       string    // The customer's contact phone number.
	Gender      string    // Free-form gender field as stored server-side.
	DateOfBirth string    // Date of birth as the server formats it.
	Addresses   []Address // The customer's saved address book, as last fetched.
}

// NewUser builds a User, normalizing the role and defaulting the profile so
// every field is safe to read even when the source data was partial.
func NewUser(id, username, role string, profile Profile) *User {
	return &User{
		ID:       id,
		Username: username,
		Role:     NormalizeRole(role),
		Profile:  profile,
	}
}

// ProfileUpdate carries the customer-editable profile fields. Server-managed
// fields (record id, account id, timestamps, version) have no counterpart
// here, so an update can never send them back.
type ProfileUpdate struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}
