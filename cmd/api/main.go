package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alfredoptarigan/resume-vibes/internal/config"
	"alfredoptarigan/resume-vibes/internal/handlers"
	"alfredoptarigan/resume-vibes/internal/repositories"
	"alfredoptarigan/resume-vibes/internal/server"
	"alfredoptarigan/resume-vibes/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if !cfg.Gemini.HasAPIKey() {
		log.Println("⚠️  GEMINI_API_KEY is not set, analyses will fail until it is configured")
	}

	// Optional analysis log
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	var logRepo repositories.AnalysisLogRepository
	if db != nil {
		logRepo = repositories.NewAnalysisLogRepository(db)
		log.Println("✅ Analysis log repository initialized")
	}

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	pdfParser := services.NewPDFParserService(cfg.Analysis.MinResumeChars)
	geminiService := services.NewGeminiService(&http.Client{})
	analyzerService := services.NewAnalyzerService(geminiService, logRepo, cfg.Gemini)
	log.Printf("✅ Services initialized (model: %s)", cfg.Gemini.Model)

	// Initialize handlers
	settings := handlers.PageSettings{
		APIKeyConfigured: cfg.Gemini.HasAPIKey(),
		Model:            cfg.Gemini.Model,
		MaxFileSize:      cfg.Storage.MaxFileSize,
	}

	app := server.New(server.Handlers{
		Page:    handlers.NewPageHandler(settings),
		Analyze: handlers.NewAnalyzeHandler(uploadService, pdfParser, analyzerService, settings),
		Models:  handlers.NewModelsHandler(geminiService, cfg.Gemini),
		History: handlers.NewHistoryHandler(logRepo),
	}, server.Options{
		MaxFileSize:  cfg.Storage.MaxFileSize,
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		AccessLog:    true,
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
