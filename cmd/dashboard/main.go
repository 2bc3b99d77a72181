package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tweetlens/config"
	"tweetlens/internal/askdata"
	"tweetlens/internal/batching"
	"tweetlens/internal/clients"
	"tweetlens/internal/db"
	"tweetlens/internal/handler"
	"tweetlens/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	repo := db.NewTweetRepository(clients.GetMongoClient())

	// The answer cache is optional; without Valkey every ask hits the
	// completion endpoint.
	var cache askdata.Cache
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		cache = clients.InitValkey()
		defer clients.CloseValkey()
	}

	var ask handler.AskService
	if clients.HasOpenAIKey() {
		ask = askdata.NewService(clients.GetOpenAIClient(), cache)
	} else {
		slog.Warn("[Dashboard] OPENAI_API_KEY not set, ask-the-data disabled")
	}

	h := handler.NewDashboardHandler(repo, batching.DefaultBatchSize, ask)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", h.GetHealth)
	r.GET("/api/batches", h.GetBatches)
	r.GET("/api/tweets", h.GetTweets)
	r.POST("/api/ask", h.AskData)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("[Dashboard] Starting server",
		slog.String("port", port),
		slog.String("env", env))
	if err := r.Run(":" + port); err != nil {
		slog.Error("[Dashboard] Server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
