package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticValidator struct {
	id  uuid.UUID
	err error
}

type staticClaims struct{ id uuid.UUID }

func (c staticClaims) GetClientID() uuid.UUID { return c.id }

func (v staticValidator) ValidateToken(string) (ClientIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return staticClaims{id: v.id}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	var gotID uuid.UUID
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetClientID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotID
}

func TestAuth_ValidToken(t *testing.T) {
	id := uuid.New()

	rec, gotID := runAuth(t, staticValidator{id: id}, "Bearer sometoken")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, gotID)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	rec, _ := runAuth(t, staticValidator{id: uuid.New()}, "bearer sometoken")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := runAuth(t, staticValidator{id: uuid.New()}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	rec, _ := runAuth(t, staticValidator{id: uuid.New()}, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	rec, _ := runAuth(t, staticValidator{err: errors.New("expired")}, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetClientID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetClientID(req)
	assert.Error(t, err)
}
