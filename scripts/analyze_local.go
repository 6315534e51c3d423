// Command analyze_local runs the résumé pipeline against files on disk,
// bypassing HTTP. Usage:
//
//	go run ./scripts/analyze_local.go resume.pdf job_description.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"alfredoptarigan/resume-copilot/internal/config"
	"alfredoptarigan/resume-copilot/internal/models"
	"alfredoptarigan/resume-copilot/internal/server"
	"alfredoptarigan/resume-copilot/internal/services"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <resume-file> <job-description-file>", filepath.Base(os.Args[0]))
	}

	log.Println("🚀 Starting local analysis...")

	// Load configuration
	cfg := config.Load()

	analyzer, err := server.NewAnalyzer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer: %v", err)
	}

	resumePath, jobPath := os.Args[1], os.Args[2]

	data, err := os.ReadFile(resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	jobDescription, err := os.ReadFile(jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}

	doc := models.UploadedDocument{
		Data:     data,
		Filename: filepath.Base(resumePath),
	}

	ctx := services.WithRequestID(context.Background(), "local")
	result, err := analyzer.Review(ctx, doc, string(jobDescription))
	if err != nil {
		var ae *services.AnalysisError
		if errors.As(err, &ae) {
			log.Fatalf("❌ %s error: %v", ae.Kind, err)
		}
		log.Fatalf("❌ Analysis failed: %v", err)
	}

	log.Println("✅ Analysis completed")
	fmt.Println(result)
}
