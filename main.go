package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"

	requestid "github.com/ginrummy/scoresheet-web/pkg/requestid"
	session "github.com/ginrummy/scoresheet-web/pkg/session"

	auth "github.com/ginrummy/scoresheet-web/services/auth"
	matches "github.com/ginrummy/scoresheet-web/services/matches"
	players "github.com/ginrummy/scoresheet-web/services/players"

	templates "github.com/ginrummy/scoresheet-web/templates"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	apiBaseURL := os.Getenv("SCORESHEET_API_URL")
	port := os.Getenv("PORT")
	allowOrigins := os.Getenv("CORS_HOSTS")

	if apiBaseURL == "" {
		log.Fatal("SCORESHEET_API_URL environment variable not set")
	}
	if port == "" {
		port = "8080"
	}

	client := scoresheet.NewClient(strings.TrimSuffix(apiBaseURL, "/"))

	authService := auth.NewAuthService(client)
	matchesService := matches.NewMatchesService(client)
	playersService := players.NewPlayersService(client)

	router := gin.Default()
	router.SetHTMLTemplate(templates.Load())
	router.Use(requestid.Middleware())

	if allowOrigins != "" {
		config := cors.DefaultConfig()
		config.AllowOrigins = strings.Split(allowOrigins, ",")
		config.AllowCredentials = true
		config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"}
		router.Use(cors.New(config))
	}

	matchesRouter := router.Group("/matches")
	matchesRouter.Use(session.LoginRequired())

	playersRouter := router.Group("/players")
	playersRouter.Use(session.LoginRequired())

	auth.NewHTTPHandler(auth.HTTPOptions{
		Service: authService,
		Router:  &router.RouterGroup,
	})

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service: matchesService,
		Router:  matchesRouter,
	})

	players.NewHTTPHandler(players.HTTPOptions{
		Service: playersService,
		Router:  playersRouter,
	})

	log.Fatal(router.Run(":" + port))
}
