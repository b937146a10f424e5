package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupEstablishesSession(t *testing.T) {
	r := newTestRouter(t)
	cookies := signUp(t, r, "seeker@example.com")
	require.NotEmpty(t, cookies)

	w := doJSON(r, http.MethodGet, "/api/applications", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	signUp(t, r, "seeker@example.com")

	w := doJSON(r, http.MethodPost, "/auth/signup",
		`{"email":"seeker@example.com","password":"password123"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)
	signUp(t, r, "seeker@example.com")

	w := doJSON(r, http.MethodPost, "/auth/login",
		`{"email":"seeker@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	w = doJSON(r, http.MethodGet, "/api/applications", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	signUp(t, r, "seeker@example.com")

	w := doJSON(r, http.MethodPost, "/auth/login",
		`{"email":"seeker@example.com","password":"not-the-password"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestRouter(t)
	cookies := signUp(t, r, "seeker@example.com")

	w := doJSON(r, http.MethodPost, "/auth/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// the logout response carries the expired cookie
	cleared := w.Result().Cookies()
	w = doJSON(r, http.MethodGet, "/api/applications", "", cleared)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{"email":"not-an-email","password":"password123"}`,
		`{"email":"seeker@example.com","password":"short"}`,
		`{}`,
	} {
		w := doJSON(r, http.MethodPost, "/auth/signup", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprintf("body %s", body))
	}
}
