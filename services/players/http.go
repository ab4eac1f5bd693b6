package players

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

// Players is the interface for the player pages' service.
type Players interface {
	ListPlayers(ctx context.Context, creds scoresheet.Credentials) ([]PlayerStats, error)
	GetPlayer(ctx context.Context, creds scoresheet.Credentials, username string) (*scoresheet.Player, error)
	UpdatePlayer(ctx context.Context, creds scoresheet.Credentials, username string, update scoresheet.UpdatePlayerRequest) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Players

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/", h.playerListHandler)
	r.GET("/:username/", h.playerDetailHandler)
	r.GET("/:username/edit/", h.playerEditHandler)
	r.POST("/:username/edit/", h.updatePlayerHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) playerListHandler(c *gin.Context) {
	creds := session.Credentials(c)

	stats, err := h.Service.ListPlayers(c.Request.Context(), creds)
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "players", NewPlayerListView(stats))
}

func (h *httpHandler) playerDetailHandler(c *gin.Context) {
	creds := session.Credentials(c)

	player, err := h.Service.GetPlayer(c.Request.Context(), creds, c.Param("username"))
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "player_detail", NewProfileView(player))
}

func (h *httpHandler) playerEditHandler(c *gin.Context) {
	creds := session.Credentials(c)

	player, err := h.Service.GetPlayer(c.Request.Context(), creds, c.Param("username"))
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "player_edit", NewProfileEditView(player))
}

func (h *httpHandler) updatePlayerHandler(c *gin.Context) {
	creds := session.Credentials(c)
	username := c.Param("username")

	update := scoresheet.UpdatePlayerRequest{
		Username:  c.PostForm("username"),
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Email:     c.PostForm("email"),
	}
	if update.Username == "" {
		c.HTML(http.StatusBadRequest, "error", gin.H{"Message": "username must not be empty"})
		return
	}

	if err := h.Service.UpdatePlayer(c.Request.Context(), creds, username, update); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/players/"+update.Username+"/")
}

func (h *httpHandler) renderFailure(c *gin.Context, err error) {
	log.Printf("player page failed: %v", err)

	var statusErr *scoresheet.StatusError
	switch {
	case errors.As(err, &statusErr) && statusErr.NotFound():
		c.HTML(http.StatusNotFound, "error", gin.H{"Message": "no such player"})
	case errors.As(err, &statusErr):
		c.HTML(http.StatusBadGateway, "error", gin.H{"Message": "the scoresheet backend rejected the request"})
	default:
		c.HTML(http.StatusBadGateway, "error", gin.H{"Message": "something went wrong"})
	}
	c.Abort()
}
