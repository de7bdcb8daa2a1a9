package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-for-jwt-service-tests",
		TokenLifetimeMinutes: 60,
	}
}

func newTestJWTService(t *testing.T, cfg config.AuthConfig) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(testAuthConfig())
		assert.NoError(t, err)
	})

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		cfg := testAuthConfig()
		cfg.JWTSecret = ""
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("non-positive lifetime", func(t *testing.T) {
		t.Parallel()
		cfg := testAuthConfig()
		cfg.TokenLifetimeMinutes = 0
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, testAuthConfig())
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTService_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	issuedAt := time.Now()

	tests := []struct {
		name      string
		verifyAt  time.Time
		expectErr error
	}{
		{
			name:     "just before expiry",
			verifyAt: issuedAt.Add(time.Hour - time.Second),
		},
		{
			name:      "exactly at expiry",
			verifyAt:  issuedAt.Add(time.Hour),
			expectErr: ErrExpiredToken,
		},
		{
			name:      "past expiry",
			verifyAt:  issuedAt.Add(2 * time.Hour),
			expectErr: ErrExpiredToken,
		},
		{
			name:      "slightly past expiry with no leeway",
			verifyAt:  issuedAt.Add(time.Hour + time.Second),
			expectErr: ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestJWTService(t, testAuthConfig())
			svc.timeFunc = func() time.Time { return issuedAt }

			token, err := svc.GenerateToken(ctx, userID)
			require.NoError(t, err)

			svc.timeFunc = func() time.Time { return tt.verifyAt }
			claims, err := svc.ValidateToken(ctx, token)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestJWTService_InvalidTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestJWTService(t, testAuthConfig())

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()

		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "a-completely-different-signing-secret"
		other := newTestJWTService(t, otherCfg)

		token, err := other.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()

		token, err := svc.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"
		_, err = svc.ValidateToken(ctx, tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
