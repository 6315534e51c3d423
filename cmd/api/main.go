package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/resume-copilot/internal/config"
	"alfredoptarigan/resume-copilot/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	analyzer, err := server.NewAnalyzer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer: %v", err)
	}
	if !analyzer.Configured() {
		log.Println("⚠️  Completion provider is not configured, /analyze_resume/ will answer 500 until credentials are set")
	}
	log.Println("✅ Services initialized successfully")

	app := server.New(cfg, analyzer)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
