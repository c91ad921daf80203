package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Register(t *testing.T) {
	tests := []struct {
		name         string
		seed         []Account
		dto          RegisterDto
		expectedErr  error
		expectedRole Role
	}{
		{
			name:         "success - customer",
			dto:          RegisterDto{ID: "u1", Name: "Alice", Password: "pw1", Role: "Customer"},
			expectedRole: RoleCustomer,
		},
		{
			name:         "success - admin, case-insensitive role",
			dto:          RegisterDto{ID: "a1", Name: "Root", Password: "pw", Role: "admin"},
			expectedRole: RoleAdmin,
		},
		{
			name:         "success - long admin role form",
			dto:          RegisterDto{ID: "a2", Name: "Root", Password: "pw", Role: "Administrator"},
			expectedRole: RoleAdmin,
		},
		{
			name:        "duplicate ID",
			seed:        []Account{{ID: "u1", Name: "Alice", Password: "pw1", Role: RoleCustomer}},
			dto:         RegisterDto{ID: "u1", Name: "Bob", Password: "pw2", Role: "Admin"},
			expectedErr: ErrDuplicateID,
		},
		{
			name:        "invalid role",
			dto:         RegisterDto{ID: "u2", Name: "Carol", Password: "pw", Role: "Manager"},
			expectedErr: ErrInvalidRole,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// given
			store := NewStoreWith(tc.seed)
			svc := NewService(store)
			before := store.Len()

			// when
			created, err := svc.Register(tc.dto)

			// then
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, created)
				assert.Equal(t, before, store.Len(), "store must not change on failure")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tc.dto.ID, created.ID)
			assert.Equal(t, tc.expectedRole, created.Role)

			found, err := store.FindByID(tc.dto.ID)
			require.NoError(t, err)
			assert.Equal(t, *created, *found)
		})
	}
}

// Registering a taken ID must fail and leave the first registration intact.
func TestService_Register_DuplicateKeepsOriginal(t *testing.T) {
	// given
	svc := NewService(NewStore())
	_, err := svc.Register(RegisterDto{ID: "u1", Name: "Alice", Password: "pw1", Role: "Customer"})
	require.NoError(t, err)

	// when
	_, err = svc.Register(RegisterDto{ID: "u1", Name: "Bob", Password: "pw2", Role: "Admin"})

	// then
	assert.ErrorIs(t, err, ErrDuplicateID)
	found, err := svc.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, RoleCustomer, found.Role)
	assert.Len(t, svc.List(), 1)
}

func TestService_Register_ValidatesRequiredFields(t *testing.T) {
	// given
	svc := NewService(NewStore())

	// when
	created, err := svc.Register(RegisterDto{ID: "", Name: "Alice", Password: "pw", Role: "Customer"})

	// then
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Empty(t, svc.List())
}

func TestService_Authenticate(t *testing.T) {
	seed := []Account{{ID: "u1", Name: "Alice", Password: "pw1", Role: RoleCustomer}}

	tests := []struct {
		name        string
		id          string
		password    string
		expectedErr error
	}{
		{name: "success", id: "u1", password: "pw1"},
		{name: "wrong password", id: "u1", password: "pw2", expectedErr: ErrInvalidCredentials},
		{name: "password compare is case-sensitive", id: "u1", password: "PW1", expectedErr: ErrInvalidCredentials},
		{name: "unknown ID", id: "u9", password: "pw1", expectedErr: ErrInvalidCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := NewService(NewStoreWith(seed))

			// when
			found, err := svc.Authenticate(tc.id, tc.password)

			// then
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alice", found.Name)
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input       string
		expected    Role
		expectedErr error
	}{
		{input: "Admin", expected: RoleAdmin},
		{input: "ADMIN", expected: RoleAdmin},
		{input: "administrator", expected: RoleAdmin},
		{input: "Customer", expected: RoleCustomer},
		{input: " customer ", expected: RoleCustomer},
		{input: "guest", expectedErr: ErrInvalidRole},
		{input: "", expectedErr: ErrInvalidRole},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}
}
