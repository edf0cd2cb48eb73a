package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mp28jam28/board-auth/internal/common"
)

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	var got RegisterParams
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Register(context.Background(), RegisterParams{
		Username: "alice", Email: "a@x.com", Name: "Alice", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Register(context.Background(), RegisterParams{Username: "alice"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_ReturnsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	token, err := NewClient(srv.URL).Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestVerify_ReturnsClaims(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/verify", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Token is valid",
			"user": map[string]any{
				"username": "alice",
				"email":    "a@x.com",
				"exp":      1700000000,
			},
		})
	}))
	defer srv.Close()

	claims, err := NewClient(srv.URL).Verify(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.EqualValues(t, 1700000000, claims.ExpiresAt)
}

func TestVerify_Invalid(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).Health(context.Background()))
}

func TestHealth_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.ErrorIs(t, NewClient(srv.URL).Health(context.Background()), common.ErrorInternal)
}
