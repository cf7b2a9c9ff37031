package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	LoadEnv()
	cfg := LoadConfig()

	vocab, err := NewVocabStore(cfg.VocabFile)
	if err != nil {
		log.Fatalf("Failed to initialize vocabulary store: %v", err)
	}
	defer vocab.Close()

	// Hot-reload vocabulary overrides in background
	go vocab.WatchFile()

	client := NewFniClient(cfg.BaseURL, cfg.FniEndpoint)
	bot := NewBot(client, vocab, cfg.MatchPolicy)

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	e.GET("/", bot.handleRoot)
	e.GET("/health", bot.handleHealth)
	e.GET("/welcome", bot.handleWelcome)
	e.POST("/chat", bot.handleChat)

	// Admin endpoints for vocabulary management
	e.POST("/admin/reload-vocab", bot.handleReloadVocab)
	e.GET("/admin/vocab-info", bot.handleVocabInfo)

	log.Printf("LUAN FNI bot started on port %s", cfg.Port)
	log.Printf("Upstream FNI endpoint: %s%s", cfg.BaseURL, cfg.FniEndpoint)
	log.Printf("Match policy: %s", cfg.MatchPolicy)
	if cfg.VocabFile != "" {
		log.Printf("Vocabulary overrides: %s (auto-reload enabled)", cfg.VocabFile)
	}

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
