package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tariebi/naijatalk/adapters/llm"
	"github.com/tariebi/naijatalk/adapters/speech"
	"github.com/tariebi/naijatalk/internal/api"
	"github.com/tariebi/naijatalk/internal/websocket"
	"github.com/tariebi/naijatalk/repository"
	"github.com/tariebi/naijatalk/usecase"
)

func main() {
	// Load .env if present; real deployments set env directly
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx := context.Background()

	// Initialize adapters; missing credentials are fatal
	generator, err := llm.NewGeminiGenerator(ctx, llm.NewGeminiConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("failed to initialize text generation client", zap.Error(err))
	}

	spitch, err := speech.NewSpitchClient(speech.NewSpitchConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("failed to initialize speech client", zap.Error(err))
	}

	var speechToText repository.SpeechToText = spitch
	if os.Getenv("SPEECH_PROVIDER") == "google" {
		speechToText = speech.NewGoogleSpeechToText(logger)
		logger.Info("Using Google Cloud Speech for transcription")
	}

	// Initialize usecase services
	conversationService := usecase.NewConversationService(generator, speechToText, spitch, logger)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  allowedOrigins(),
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{api.ReplyTextHeader},
	}))

	// Initialize API routes
	api.InitRoutes(e, conversationService, logger)

	// Streaming conversation endpoint
	streamer := websocket.NewStreamer(conversationService, logger)
	e.GET("/ws", streamer.HandleConversation)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// allowedOrigins returns the browser origin allow-list: configured
// front-end URLs, with local dev defaults.
func allowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) > 0 {
			return origins
		}
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://naijatalk.vercel.app",
	}
}
