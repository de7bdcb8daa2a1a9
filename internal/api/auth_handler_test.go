package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck-api/internal/api"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
)

func newAuthRouter(userStore *mocks.MockUserStore, verifierOK bool) http.Handler {
	handler := api.NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: verifierOK},
	)

	r := chi.NewRouter()
	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Parallel()

	t.Run("creates a user and returns a token", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router := newAuthRouter(userStore, true)

		rec := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": "alice", "password": "password123"})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body api.SignupResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "User created successfully", body.Message)
		assert.Equal(t, "test-token", body.Token)
		assert.Equal(t, "alice", body.User.Username)
		assert.NotContains(t, rec.Body.String(), "password")

		stored, ok := userStore.Users["alice"]
		require.True(t, ok)
		assert.Empty(t, stored.Password)
		assert.NotEmpty(t, stored.HashedPassword)
	})

	t.Run("trims surrounding whitespace from the username", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router := newAuthRouter(userStore, true)

		rec := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": "  bob  ", "password": "password123"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		_, ok := userStore.Users["bob"]
		assert.True(t, ok)
	})

	t.Run("duplicate username is a 400", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router := newAuthRouter(userStore, true)

		first := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": "alice", "password": "password123"})
		require.Equal(t, http.StatusCreated, first.Code)

		second := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": "alice", "password": "different456"})

		assert.Equal(t, http.StatusBadRequest, second.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
		assert.Equal(t, "Username already exists", body.Error)
	})

	t.Run("validation failures report every violated field", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router := newAuthRouter(userStore, true)

		rec := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": "ab", "password": "short"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Fields, "username")
		assert.Contains(t, body.Fields, "password")
		assert.Empty(t, userStore.Users)
	})

	t.Run("password longer than the bcrypt limit is rejected", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router := newAuthRouter(userStore, true)

		rec := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": "alice", "password": strings.Repeat("x", 73)})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Fields, "password")
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(mocks.NewMockUserStore(), true)

		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	signUp := func(t *testing.T, router http.Handler, username, password string) {
		t.Helper()
		rec := doJSON(t, router, http.MethodPost, "/signup",
			map[string]any{"username": username, "password": password})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(mocks.NewMockUserStore(), true)
		signUp(t, router, "alice", "password123")

		rec := doJSON(t, router, http.MethodPost, "/login",
			map[string]any{"username": "alice", "password": "password123"})

		assert.Equal(t, http.StatusOK, rec.Code)

		var body api.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "test-token", body.Token)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(mocks.NewMockUserStore(), false)
		signUp(t, router, "alice", "password123")

		unknownUser := doJSON(t, router, http.MethodPost, "/login",
			map[string]any{"username": "nobody", "password": "password123"})
		wrongPassword := doJSON(t, router, http.MethodPost, "/login",
			map[string]any{"username": "alice", "password": "wrongpass99"})

		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.JSONEq(t, unknownUser.Body.String(), wrongPassword.Body.String())

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(unknownUser.Body.Bytes(), &body))
		assert.Equal(t, "Invalid credentials", body.Error)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(mocks.NewMockUserStore(), true)

		rec := doJSON(t, router, http.MethodPost, "/login",
			map[string]any{"username": "alice"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
