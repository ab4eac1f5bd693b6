package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ginrummy/scoresheet-web/pkg/session"
	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Auth is the interface for the login service.
type Auth interface {
	Login(ctx context.Context, username, password string) ([]*http.Cookie, error)
	LoggedInPlayer(ctx context.Context, creds scoresheet.Credentials) (*scoresheet.Player, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Auth

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/", h.homeHandler)
	r.GET("/login/", h.loginPageHandler)
	r.POST("/login/", h.loginHandler)
	r.POST("/logout/", h.logoutHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) homeHandler(c *gin.Context) {
	creds := session.FromRequest(c.Request)
	if creds.SessionID == "" {
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches/")
}

func (h *httpHandler) loginPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{})
}

// loginHandler forwards the form to the backend. Rejected credentials
// re-render the empty form with a single warning; a fresh render each time
// keeps the warning from ever duplicating.
func (h *httpHandler) loginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	cookies, err := h.Service.Login(c.Request.Context(), username, password)
	if err != nil {
		var statusErr *scoresheet.StatusError
		if errors.As(err, &statusErr) && statusErr.Code >= 400 && statusErr.Code < 500 {
			c.HTML(http.StatusUnauthorized, "login", gin.H{"InvalidCredentials": true})
			return
		}
		log.Printf("login failed: %v", err)
		c.HTML(http.StatusBadGateway, "error", gin.H{"Message": "something went wrong"})
		return
	}

	// Pass the backend's session straight through to the browser.
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, cookie.Value, cookie.MaxAge, "/", "", false, cookie.HttpOnly)
	}
	c.Redirect(http.StatusSeeOther, "/matches/")
}

func (h *httpHandler) logoutHandler(c *gin.Context) {
	c.SetCookie("sessionid", "", -1, "/", "", false, true)
	c.SetCookie("csrftoken", "", -1, "/", "", false, false)
	c.Redirect(http.StatusSeeOther, "/login/")
}
