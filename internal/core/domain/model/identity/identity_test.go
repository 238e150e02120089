package identity_test

import (
	"testing"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected identity.Role
	}{
		{"customer", identity.Customer},
		{"restaurant", identity.Restaurant},
		{"provider", identity.Restaurant},
		{"caterer", identity.Caterer},
		{"organizer", identity.Organizer},
		{"admin", identity.Admin},
		{"  Admin ", identity.Admin},
		{"PROVIDER", identity.Restaurant},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := identity.ParseRole(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		role, err := identity.ParseRole("courier")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, identity.UnknownRole, role)
	})
}

func TestRole_Predicates(t *testing.T) {
	assert.True(t, identity.Restaurant.IsProvider())
	assert.True(t, identity.Caterer.IsProvider())
	assert.False(t, identity.Customer.IsProvider())
	assert.False(t, identity.Admin.IsProvider())

	assert.True(t, identity.Customer.PlansEvents())
	assert.True(t, identity.Organizer.PlansEvents())
	assert.False(t, identity.Caterer.PlansEvents())

	assert.Equal(t, "restaurant", identity.Restaurant.String())
	assert.Equal(t, "unknown", identity.Role(42).String())
	require.Error(t, identity.UnknownRole.Validate())
	require.Error(t, identity.Role(42).Validate())
}

func TestSession(t *testing.T) {
	t.Run("authenticated session", func(t *testing.T) {
		userID := kernel.NewUUID()

		s, err := identity.NewSession(userID, identity.Customer)

		require.NoError(t, err)
		assert.True(t, s.IsAuthenticated())
		assert.True(t, s.UserID().IsEqual(userID))
		assert.Equal(t, identity.Customer, s.Role())
		require.NoError(t, s.Require("get cart"))
		assert.False(t, s.IsAdmin())
	})

	t.Run("anonymous session fails Require", func(t *testing.T) {
		s := identity.Anonymous()

		err := s.Require("create order")

		require.ErrorIs(t, err, errs.ErrNotAuthenticated)
		assert.Contains(t, err.Error(), "create order")
		assert.False(t, s.IsAdmin())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := identity.NewSession(kernel.UUID{}, identity.Admin)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = identity.NewSession(kernel.NewUUID(), identity.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
