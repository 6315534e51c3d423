package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"alfredoptarigan/resume-copilot/internal/config"
	"alfredoptarigan/resume-copilot/internal/ocr"
	"alfredoptarigan/resume-copilot/internal/services"
)

// NewAnalyzer wires the extraction and analysis services from cfg.
//
// Missing or unusable provider credentials do not fail startup: the analyzer
// is returned unconfigured so the health check can report it and analysis
// requests answer with a configuration error. Only an unreadable prompt
// template is fatal.
func NewAnalyzer(ctx context.Context, cfg *config.Config) (services.ResumeAnalyzer, error) {
	promptBuilder := services.NewPromptBuilder()
	if cfg.LLM.PromptTemplatePath != "" {
		pb, err := services.NewPromptBuilderFromFile(cfg.LLM.PromptTemplatePath)
		if err != nil {
			return nil, err
		}
		promptBuilder = pb
		log.Printf("✅ Prompt template loaded from %s", cfg.LLM.PromptTemplatePath)
	}

	var gemini services.GeminiService
	if cfg.Gemini.APIKey != "" && (cfg.LLM.Provider == config.ProviderGemini || cfg.OCR.Engine == config.OCREngineGemini) {
		g, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, geminiModel(cfg))
		if err != nil {
			log.Printf("❌ Failed to initialize Gemini AI: %v", err)
		} else {
			gemini = g
			log.Println("✅ Gemini AI initialized successfully")
		}
	}

	llmClient, err := newLLMClient(cfg, gemini)
	if err != nil {
		log.Printf("❌ Completion provider unavailable: %v", err)
	} else {
		log.Printf("✅ Completion provider %s ready (model %s)", cfg.LLM.Provider, cfg.LLM.Model)
	}

	extractor := services.NewTextExtractor(
		services.NewPDFParserService(),
		services.NewDocxParserService(),
		services.NewImageOCRService(newOCREngine(cfg, gemini), cfg.OCR.MaxPixels),
	)

	return services.NewResumeAnalyzer(extractor, llmClient, promptBuilder, services.AnalyzerOptions{
		Temperature:   cfg.LLM.Temperature,
		Timeout:       cfg.LLM.Timeout,
		MinTextLength: cfg.Extraction.MinTextLength,
	}), nil
}

func newLLMClient(cfg *config.Config, gemini services.GeminiService) (services.LLMClient, error) {
	if cfg.ProviderAPIKey() == "" {
		return nil, fmt.Errorf("no API key set for LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return services.NewOpenAIService(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.LLM.Model, &http.Client{})
	case config.ProviderGemini:
		if gemini == nil {
			return nil, fmt.Errorf("gemini client could not be created")
		}
		return gemini, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLM.Provider)
	}
}

// newOCREngine returns nil when OCR is disabled or unavailable; image
// uploads then fail closed.
func newOCREngine(cfg *config.Config, gemini services.GeminiService) services.OCREngine {
	switch cfg.OCR.Engine {
	case config.OCREngineTesseract:
		log.Printf("✅ OCR engine: tesseract %s (%v)", ocr.Version(), cfg.OCR.Languages)
		return ocr.NewTesseractEngine(cfg.OCR.Languages)
	case config.OCREngineGemini:
		if gemini == nil {
			log.Println("⚠️  OCR_ENGINE=gemini but Gemini is unavailable, image uploads disabled")
			return nil
		}
		log.Println("✅ OCR engine: gemini")
		return gemini
	case config.OCREngineNone:
		log.Println("⚠️  OCR disabled, image uploads will be rejected")
		return nil
	default:
		log.Printf("⚠️  Unknown OCR_ENGINE %q, image uploads disabled", cfg.OCR.Engine)
		return nil
	}
}

func geminiModel(cfg *config.Config) string {
	if cfg.LLM.Provider == config.ProviderGemini {
		return cfg.LLM.Model
	}
	return "gemini-2.5-flash"
}
