package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/applytrack/internal/identity"
)

func isAuthPage(path string) bool {
	return path == "/login" || path == "/signup"
}

func isAPIRoute(path string) bool {
	return strings.HasPrefix(path, "/api")
}

func isAuthCallback(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}

// Static assets must stay reachable or the login page cannot load.
func isStaticAsset(path string) bool {
	return strings.HasPrefix(path, "/static/")
}

// SessionGuard classifies every inbound request. Anonymous page requests
// are redirected to the login page; signed-in visitors are bounced off
// the auth pages; everything else passes through. API routes are never
// redirected, they answer 401 themselves so programmatic callers get a
// usable signal. Authenticated requests get their session cookie
// refreshed, including on the redirect responses.
func SessionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		_, signedIn := identity.Current(c)
		if signedIn {
			_ = identity.Refresh(c)
		}

		switch {
		case !signedIn && !isAuthPage(path) && !isAPIRoute(path) && !isAuthCallback(path) && !isStaticAsset(path):
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case signedIn && isAuthPage(path):
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			c.Next()
		}
	}
}
