package account

// Store is an in-memory, insertion-ordered collection of accounts. A single
// interactive session owns it exclusively; it is loaded once at startup and
// flushed once at shutdown.
type Store struct {
	accounts []Account
}

// NewStore creates an empty account store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith creates a store seeded with previously persisted accounts,
// preserving their order.
func NewStoreWith(accounts []Account) *Store {
	return &Store{accounts: append([]Account(nil), accounts...)}
}

// Add appends a new account. Returns ErrDuplicateID if an account with the
// same ID already exists; the store is left unchanged in that case.
func (s *Store) Add(a Account) error {
	if _, err := s.FindByID(a.ID); err == nil {
		return ErrDuplicateID
	}
	s.accounts = append(s.accounts, a)
	return nil
}

// FindByID retrieves an account by its ID.
// Returns ErrAccountNotFound if no account exists with the given ID.
func (s *Store) FindByID(id string) (*Account, error) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// List returns all accounts in insertion order.
func (s *Store) List() []Account {
	return append([]Account(nil), s.accounts...)
}

// Len reports the number of registered accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}
