package matches

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"

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

// Scoresheet is the interface for the match pages' service.
type Scoresheet interface {
	ResolveMatch(ctx context.Context, creds scoresheet.Credentials, matchPK string) (*ResolvedMatch, error)
	LoggedInPlayer(ctx context.Context, creds scoresheet.Credentials) (*scoresheet.Player, error)
	ListOpponents(ctx context.Context, creds scoresheet.Credentials, self *scoresheet.Player) ([]scoresheet.Player, error)
	SummarizeMatches(ctx context.Context, creds scoresheet.Credentials, self *scoresheet.Player) (current, past []MatchSummary, err error)
	CreateMatch(ctx context.Context, creds scoresheet.Credentials, playerURLs []string, targetScore int) (string, error)
	DeleteMatch(ctx context.Context, creds scoresheet.Credentials, matchPK string) error
	CreateGame(ctx context.Context, creds scoresheet.Credentials, matchPK string, game scoresheet.GameRequest) error
	GetGame(ctx context.Context, creds scoresheet.Credentials, matchPK, gamePK string) (*scoresheet.Game, error)
	UpdateGame(ctx context.Context, creds scoresheet.Credentials, matchPK, gamePK string, game scoresheet.GameRequest) error
	DeleteGame(ctx context.Context, creds scoresheet.Credentials, matchPK, gamePK string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Scoresheet

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/", h.matchListHandler)
	r.POST("/create/", h.createMatchHandler)
	r.GET("/:match_pk/", h.matchDetailHandler)
	r.POST("/:match_pk/delete/", h.deleteMatchHandler)
	r.POST("/:match_pk/games/", h.createGameHandler)
	r.GET("/:match_pk/games/:game_pk/edit/", h.gameEditHandler)
	r.POST("/:match_pk/games/:game_pk/edit/", h.updateGameHandler)
	r.POST("/:match_pk/games/:game_pk/delete/", h.deleteGameHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) matchListHandler(c *gin.Context) {
	creds := session.Credentials(c)

	self, err := h.Service.LoggedInPlayer(c.Request.Context(), creds)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	current, past, err := h.Service.SummarizeMatches(c.Request.Context(), creds, self)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	opponents, err := h.Service.ListOpponents(c.Request.Context(), creds, self)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	view := MatchListView{
		Username:    self.Username,
		Opponents:   opponents,
		TargetScore: DefaultTargetScore,
	}
	for _, summary := range current {
		view.Current = append(view.Current, NewMatchRow(summary))
	}
	for _, summary := range past {
		view.Past = append(view.Past, NewMatchRow(summary))
	}

	c.HTML(http.StatusOK, "matches", view)
}

func (h *httpHandler) matchDetailHandler(c *gin.Context) {
	creds := session.Credentials(c)
	matchPK := c.Param("match_pk")

	rm, err := h.Service.ResolveMatch(c.Request.Context(), creds, matchPK)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	sb, err := BuildScoreboard(rm)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	c.HTML(http.StatusOK, "match_detail", NewMatchDetailView(rm, sb))
}

func (h *httpHandler) createMatchHandler(c *gin.Context) {
	creds := session.Credentials(c)

	opponentURL := c.PostForm("opponent")
	targetScore, err := strconv.Atoi(c.PostForm("target_score"))
	if err != nil || opponentURL == "" {
		c.HTML(http.StatusBadRequest, "error", gin.H{"Message": "invalid new match form"})
		return
	}

	self, err := h.Service.LoggedInPlayer(c.Request.Context(), creds)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	matchPK, err := h.Service.CreateMatch(c.Request.Context(), creds, []string{self.URL, opponentURL}, targetScore)
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches/"+matchPK+"/")
}

func (h *httpHandler) deleteMatchHandler(c *gin.Context) {
	creds := session.Credentials(c)

	if err := h.Service.DeleteMatch(c.Request.Context(), creds, c.Param("match_pk")); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches/")
}

// createGameHandler records a game, then redirects back to the detail page
// so the whole graph is re-resolved and re-aggregated. No incremental
// patching: the dataset is tiny and correctness wins.
func (h *httpHandler) createGameHandler(c *gin.Context) {
	creds := session.Credentials(c)
	matchPK := c.Param("match_pk")

	game, ok := h.gameFromForm(c, matchPK)
	if !ok {
		return
	}

	if err := h.Service.CreateGame(c.Request.Context(), creds, matchPK, game); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches/"+matchPK+"/")
}

func (h *httpHandler) gameEditHandler(c *gin.Context) {
	creds := session.Credentials(c)
	matchPK := c.Param("match_pk")
	gamePK := c.Param("game_pk")

	rm, err := h.Service.ResolveMatch(c.Request.Context(), creds, matchPK)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	game, err := h.Service.GetGame(c.Request.Context(), creds, matchPK, gamePK)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	view := GameEditView{
		MatchPK:  matchPK,
		GamePK:   gamePK,
		Winner:   scoresheet.ValueFromURL(game.Winner, "players"),
		Points:   game.Points,
		Gin:      game.Gin,
		Undercut: game.Undercut,
	}
	for _, player := range rm.Players {
		view.PlayerOptions = append(view.PlayerOptions, player.Username)
	}

	c.HTML(http.StatusOK, "game_edit", view)
}

func (h *httpHandler) updateGameHandler(c *gin.Context) {
	creds := session.Credentials(c)
	matchPK := c.Param("match_pk")
	gamePK := c.Param("game_pk")

	game, ok := h.gameFromForm(c, matchPK)
	if !ok {
		return
	}

	if err := h.Service.UpdateGame(c.Request.Context(), creds, matchPK, gamePK, game); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches/"+matchPK+"/")
}

func (h *httpHandler) deleteGameHandler(c *gin.Context) {
	creds := session.Credentials(c)
	matchPK := c.Param("match_pk")

	if err := h.Service.DeleteGame(c.Request.Context(), creds, matchPK, c.Param("game_pk")); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches/"+matchPK+"/")
}

// gameFromForm turns the submitted winner username into the winner/loser
// reference pair the API expects. The loser is always the other match
// player.
func (h *httpHandler) gameFromForm(c *gin.Context, matchPK string) (scoresheet.GameRequest, bool) {
	creds := session.Credentials(c)

	points, err := strconv.Atoi(c.PostForm("points"))
	if err != nil || points < 0 {
		c.HTML(http.StatusBadRequest, "error", gin.H{"Message": "invalid points value"})
		return scoresheet.GameRequest{}, false
	}

	rm, err := h.Service.ResolveMatch(c.Request.Context(), creds, matchPK)
	if err != nil {
		h.renderFailure(c, err)
		return scoresheet.GameRequest{}, false
	}

	winner, ok := rm.PlayerByUsername(c.PostForm("winner"))
	if !ok {
		c.HTML(http.StatusBadRequest, "error", gin.H{"Message": "winner is not a player in this match"})
		return scoresheet.GameRequest{}, false
	}
	loser, ok := rm.OpponentOf(winner.URL)
	if !ok {
		c.HTML(http.StatusBadRequest, "error", gin.H{"Message": "winner is not a player in this match"})
		return scoresheet.GameRequest{}, false
	}

	return scoresheet.GameRequest{
		Match:    rm.Match.URL,
		Winner:   winner.URL,
		Loser:    loser.URL,
		Points:   points,
		Gin:      c.PostForm("gin") != "",
		Undercut: c.PostForm("undercut") != "",
	}, true
}

// renderFailure maps service errors onto error pages. No retries: every
// failure is terminal for the current render and the user retries by
// reloading or re-submitting.
func (h *httpHandler) renderFailure(c *gin.Context, err error) {
	log.Printf("match page failed: %v", err)

	var statusErr *scoresheet.StatusError
	switch {
	case xerrors.Is(err, ErrIntegrity):
		c.HTML(http.StatusInternalServerError, "error", gin.H{"Message": "match data is inconsistent"})
	case errors.As(err, &statusErr) && statusErr.NotFound():
		c.HTML(http.StatusNotFound, "error", gin.H{"Message": "not found"})
	case errors.As(err, &statusErr):
		c.HTML(http.StatusBadGateway, "error", gin.H{"Message": "the scoresheet backend rejected the request"})
	default:
		c.HTML(http.StatusBadGateway, "error", gin.H{"Message": "something went wrong"})
	}
	c.Abort()
}
