// Package account holds registered users and answers registration and
// authentication requests against them.
package account

import (
	"fmt"
	"strings"
)

// Role decides which menu a logged-in user gets.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

// ParseRole maps user input to a Role, case-insensitively. Both the short and
// the long form of the admin role are accepted.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin", "administrator":
		return RoleAdmin, nil
	case "customer":
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Account represents a registered user. The password is stored and compared
// in plain text; hashing is deliberately out of scope for this tool.
type Account struct {
	ID       string
	Name     string
	Password string
	Role     Role
}
