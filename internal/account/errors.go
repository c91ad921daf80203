package account

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateID        = errors.New("account ID already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
