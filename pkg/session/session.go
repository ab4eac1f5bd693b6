package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

const credentialsKey = "credentials"

// FromRequest reads the backend session and CSRF cookies off the incoming
// request. Either may be empty for anonymous visitors.
func FromRequest(r *http.Request) scoresheet.Credentials {
	creds := scoresheet.Credentials{}
	if cookie, err := r.Cookie("sessionid"); err == nil {
		creds.SessionID = cookie.Value
	}
	if cookie, err := r.Cookie("csrftoken"); err == nil {
		creds.CSRFToken = cookie.Value
	}
	return creds
}

// LoginRequired redirects visitors without a backend session to the login
// page and attaches the extracted credentials to the context for handlers.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := FromRequest(c.Request)
		if creds.SessionID == "" {
			c.Redirect(http.StatusSeeOther, "/login/")
			c.Abort()
			return
		}

		c.Set(credentialsKey, creds)
		c.Next()
	}
}

// Credentials returns what LoginRequired attached, falling back to reading
// the request directly on routes that skip the middleware.
func Credentials(c *gin.Context) scoresheet.Credentials {
	if value, ok := c.Get(credentialsKey); ok {
		if creds, ok := value.(scoresheet.Credentials); ok {
			return creds
		}
	}
	return FromRequest(c.Request)
}
