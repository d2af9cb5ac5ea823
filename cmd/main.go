package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafreid/palefo-mock-api/internal/config"
	"github.com/rafreid/palefo-mock-api/internal/database"
	"github.com/rafreid/palefo-mock-api/internal/handlers"
	"github.com/rafreid/palefo-mock-api/internal/seed"
	"github.com/rafreid/palefo-mock-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load seed tables
	data, err := seed.Load(cfg.App.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("Loaded %d sentences, %d contributors, %d AI phrases",
		len(data.Sentences), len(data.Contributors), len(data.AIPhrases))

	// Open contribution store
	contributionRepo, closeStore, err := database.OpenContributionStore(
		context.Background(),
		cfg,
		seed.Contributions(data.Sentences),
	)
	if err != nil {
		log.Fatalf("Failed to open contribution store: %v", err)
	}
	defer closeStore()
	log.Printf("Contribution store: %s", cfg.Store.Driver)

	// Initialize services
	sentenceService := services.NewSentenceService(data.Sentences)
	statisticsService := services.NewStatisticsService(data.Contributors)
	contributorService := services.NewContributorService(data.Contributors)
	contributionService := services.NewContributionService(contributionRepo, cfg.App.AudioBaseURL)
	phraseService := services.NewPhraseService(data.AIPhrases)
	proxyService := services.NewAudioProxyService()

	// Initialize handlers
	router := handlers.NewRouter(&handlers.Handlers{
		Root:          handlers.NewRootHandler(),
		Sentences:     handlers.NewSentenceHandler(sentenceService),
		Statistics:    handlers.NewStatisticsHandler(statisticsService, contributorService),
		Contributions: handlers.NewContributionHandler(contributionService),
		AI:            handlers.NewAIHandler(phraseService),
		Proxy:         handlers.NewProxyHandler(proxyService),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("API info: http://localhost:%s/", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
