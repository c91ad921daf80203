package account

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Service implements registration and authentication on top of the store.
type Service struct {
	store    *Store
	validate *validator.Validate
}

// NewService creates a new account service backed by the given store.
func NewService(store *Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// RegisterDto represents the data required to register a new account.
type RegisterDto struct {
	ID       string `validate:"required"`
	Name     string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"required"`
}

// Register validates the request, parses the role and appends the new account.
// Returns ErrDuplicateID if the ID is taken and ErrInvalidRole for an
// unrecognized role; the store is not mutated on any failure.
func (s *Service) Register(dto RegisterDto) (*Account, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("invalid registration data: %w", err)
	}
	role, err := ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	a := Account{
		ID:       dto.ID,
		Name:     dto.Name,
		Password: dto.Password,
		Role:     role,
	}
	if err := s.store.Add(a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Authenticate succeeds only if an account with the given ID exists and its
// stored password equals the supplied one exactly. Unknown IDs and wrong
// passwords both map to ErrInvalidCredentials so the caller cannot tell which
// part was wrong.
func (s *Service) Authenticate(id, password string) (*Account, error) {
	a, err := s.store.FindByID(id)
	if err != nil || a.Password != password {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// FindByID retrieves an account by its ID.
func (s *Service) FindByID(id string) (*Account, error) {
	return s.store.FindByID(id)
}

// List returns all accounts in insertion order, for persistence.
func (s *Service) List() []Account {
	return s.store.List()
}
