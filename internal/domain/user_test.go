package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("alice", "pw123456")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "pw123456", user.Password)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("username is trimmed", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("  alice  ", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	tests := []struct {
		name     string
		username string
		password string
		fields   []string
	}{
		{
			name:     "empty username",
			username: "",
			password: "pw123456",
			fields:   []string{"username"},
		},
		{
			name:     "whitespace-only username",
			username: "   ",
			password: "pw123456",
			fields:   []string{"username"},
		},
		{
			name:     "username too short",
			username: "ab",
			password: "pw123456",
			fields:   []string{"username"},
		},
		{
			name:     "password too short",
			username: "alice",
			password: "short",
			fields:   []string{"password"},
		},
		{
			name:     "empty password",
			username: "alice",
			password: "",
			fields:   []string{"password"},
		},
		{
			name:     "all fields invalid at once",
			username: "",
			password: "pw",
			fields:   []string{"username", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewUser(tt.username, tt.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Len(t, vErr.Fields, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, vErr.Fields, field)
			}
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password; the
	// hashed password stands in for it.
	user := User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "$2a$10$notarealhashbutlongenough",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	err := user.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
