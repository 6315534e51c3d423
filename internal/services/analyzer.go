package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/resume-copilot/internal/models"
)

// ResumeAnalyzer runs the upload → extract → analyze pipeline.
type ResumeAnalyzer interface {
	Review(ctx context.Context, doc models.UploadedDocument, jobDescription string) (string, error)
	Analyze(ctx context.Context, resumeText, jobDescription string) (string, error)
	Configured() bool
}

type AnalyzerOptions struct {
	Temperature   float32
	Timeout       time.Duration
	MinTextLength int
}

type resumeAnalyzer struct {
	extractor     TextExtractor
	llmClient     LLMClient
	promptBuilder *PromptBuilder
	opts          AnalyzerOptions
}

// NewResumeAnalyzer builds the pipeline. A nil llmClient means the provider
// credentials were missing at startup; every analysis then fails with
// ErrProviderNotConfigured.
func NewResumeAnalyzer(
	extractor TextExtractor,
	llmClient LLMClient,
	promptBuilder *PromptBuilder,
	opts AnalyzerOptions,
) ResumeAnalyzer {
	if promptBuilder == nil {
		promptBuilder = NewPromptBuilder()
	}

	return &resumeAnalyzer{
		extractor:     extractor,
		llmClient:     llmClient,
		promptBuilder: promptBuilder,
		opts:          opts,
	}
}

// Configured implements ResumeAnalyzer.
func (a *resumeAnalyzer) Configured() bool {
	return a.llmClient != nil
}

// Review implements ResumeAnalyzer. Input and extraction problems are
// reported before a missing provider, which Analyze checks last.
func (a *resumeAnalyzer) Review(ctx context.Context, doc models.UploadedDocument, jobDescription string) (string, error) {
	if doc.Filename == "" || strings.TrimSpace(jobDescription) == "" {
		return "", NewValidationError("", ErrMissingInput)
	}

	if doc.Size() == 0 {
		return "", NewValidationError("", ErrEmptyFile)
	}

	reqID := RequestIDFromContext(ctx)

	log.Printf("📄 [%s] Extracting text from %q (%d bytes)", reqID, doc.Filename, doc.Size())
	text, err := a.extractor.Extract(ctx, doc)
	if err != nil {
		log.Printf("❌ [%s] Extraction failed: %v", reqID, err)
		return "", err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < a.opts.MinTextLength {
		log.Printf("⚠️  [%s] Extracted text below %d characters", reqID, a.opts.MinTextLength)
		return "", NewValidationError("", ErrInsufficientText)
	}

	return a.Analyze(ctx, text, jobDescription)
}

// Analyze implements ResumeAnalyzer. The provider is called exactly once.
func (a *resumeAnalyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if !a.Configured() {
		return "", NewConfigurationError("", ErrProviderNotConfigured)
	}

	prompt, err := a.promptBuilder.BuildAnalysisPrompt(resumeText, jobDescription)
	if err != nil {
		return "", NewConfigurationError("failed to build prompt", err)
	}

	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	reqID := RequestIDFromContext(ctx)
	log.Printf("🤖 [%s] Requesting analysis (prompt length: %d characters)", reqID, len(prompt))

	result, err := a.llmClient.GenerateText(ctx, prompt, a.opts.Temperature)
	if err != nil {
		log.Printf("❌ [%s] Analysis failed: %v", reqID, err)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", NewProviderError("", fmt.Errorf("%w after %s: %v", ErrProviderTimeout, a.opts.Timeout, err))
		}
		return "", NewProviderError("analysis failed", err)
	}

	log.Printf("✅ [%s] Analysis received: %d characters", reqID, len(result))
	return result, nil
}

type requestIDKey struct{}

// WithRequestID tags ctx so pipeline log lines can be correlated with the
// access log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return "-"
}
