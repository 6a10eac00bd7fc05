// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer account.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// NormalizeRole maps a raw server role string onto a Role, case-insensitively.
// Unknown roles resolve to RoleUser so a shape change server-side can never
// lock a customer out of the regular experience.
func NormalizeRole(raw string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !role.IsValid() {
		return RoleUser
	}

	return role
}

// Stack names the screen graph the navigation shell should mount.
type Stack string

const (
	// StackAnonymous is the pre-login screen graph.
	StackAnonymous Stack = "anonymous"
	// StackRegular is the customer-facing screen graph.
	StackRegular Stack = "regular"
	// StackAdmin is the administrator screen graph.
	StackAdmin Stack = "admin"
)

// StackFor selects the screen graph for the given user snapshot. A nil user
// means nobody is signed in.
func StackFor(user *User) Stack {
	switch {
	case user == nil:
		return StackAnonymous
	case user.Role == RoleAdmin:
		return StackAdmin
	default:
		return StackRegular
	}
}
