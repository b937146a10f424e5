// Package identity resolves the caller from the transport-level session
// cookie and manages sign-in/sign-out. Register the sessions middleware
// (see SessionName) before using any of these helpers.
package identity

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/applytrack/applytrack/internal/models"
)

// SessionName is the cookie the session rides in.
const SessionName = "applytrack_session"

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// Session cookies live a week and are refreshed on every authenticated
// request, so an active user is never signed out mid-visit.
const sessionMaxAge = 7 * 24 * 60 * 60

// User is the resolved caller identity.
type User struct {
	ID    string
	Email string
}

func cookieOptions(maxAge int) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Current returns the caller from the request's session, if signed in.
func Current(c *gin.Context) (*User, bool) {
	sess := sessions.Default(c)
	id, _ := sess.Get(userIDKey).(string)
	if id == "" {
		return nil, false
	}
	email, _ := sess.Get(userEmailKey).(string)
	return &User{ID: id, Email: email}, true
}

// SignIn binds the session to the user and issues the cookie.
func SignIn(c *gin.Context, user *models.User) error {
	sess := sessions.Default(c)
	sess.Set(userIDKey, user.ID)
	sess.Set(userEmailKey, user.Email)
	sess.Options(cookieOptions(sessionMaxAge))
	return sess.Save()
}

// Refresh rewrites the session cookie, extending its lifetime.
func Refresh(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Options(cookieOptions(sessionMaxAge))
	return sess.Save()
}

// SignOut invalidates the session.
func SignOut(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(cookieOptions(-1))
	return sess.Save()
}
