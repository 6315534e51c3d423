package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/resume-copilot/internal/config"
	"alfredoptarigan/resume-copilot/internal/handlers"
	"alfredoptarigan/resume-copilot/internal/services"
)

// New builds the Fiber app shared by the long-running server and the
// serverless entrypoint.
func New(cfg *config.Config, analyzer services.ResumeAnalyzer) *fiber.App {
	// Leave room for multipart framing and the job description.
	bodyLimit := int(cfg.Extraction.MaxFileSize) + 1<<20

	app := fiber.New(fiber.Config{
		AppName:      "Resume Copilot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowHeaders: "*",
	}))

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cfg.Extraction.MaxFileSize)
	healthHandler := handlers.NewHealthHandler(analyzer, cfg.LLM.Provider, cfg.LLM.Model, cfg.OCR.Engine)

	// Health check
	app.Get("/", healthHandler.HandleHealth)
	app.Get("/api/v1/health", healthHandler.HandleHealth)

	// StrictRouting is off, so this also matches without the trailing slash.
	app.Post("/analyze_resume/", analyzeHandler.HandleAnalyze)
	app.Post("/api/analyze", analyzeHandler.HandleAnalyze)

	return app
}
