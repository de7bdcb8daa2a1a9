package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Username and password constraints enforced at signup.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt's practical limit
)

// User represents a registered account. The plaintext Password is only
// populated transiently during signup and must be hashed before the
// user is stored.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // plaintext, never persisted
	HashedPassword string    `json:"-"` // never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from signup input. The username is trimmed
// before validation. Returns a ValidationError listing every violated
// field if the input is invalid.
//
// NOTE: the caller is responsible for hashing the password before
// storing the user.
func NewUser(username, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(username),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. During signup the plaintext
// password is validated; for users loaded from the store only the
// hashed password must be present.
func (u *User) Validate() error {
	var v Violations

	if u.ID == uuid.Nil {
		v.Add("id", "cannot be empty")
	}

	switch {
	case u.Username == "":
		v.Add("username", "cannot be empty")
	case len(u.Username) < MinUsernameLength:
		v.Add("username", "must be at least 3 characters")
	case len(u.Username) > MaxUsernameLength:
		v.Add("username", "must be at most 50 characters")
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			v.Add("password", "must be at least 8 characters")
		} else if len(u.Password) > MaxPasswordLength {
			v.Add("password", "must be at most 72 characters")
		}
	} else if u.HashedPassword == "" {
		v.Add("password", "cannot be empty")
	}

	return v.Err()
}
