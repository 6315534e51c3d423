package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-copilot/internal/models"
	"alfredoptarigan/resume-copilot/internal/services"
)

type HealthHandler struct {
	analyzer  services.ResumeAnalyzer
	provider  string
	model     string
	ocrEngine string
}

func NewHealthHandler(analyzer services.ResumeAnalyzer, provider, model, ocrEngine string) *HealthHandler {
	return &HealthHandler{
		analyzer:  analyzer,
		provider:  provider,
		model:     model,
		ocrEngine: ocrEngine,
	}
}

// HandleHealth always answers 200 so wake-up probes succeed; the status
// field says whether analysis can actually run.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	configured := h.analyzer.Configured()

	status := models.HealthStatusOK
	if !configured {
		status = models.HealthStatusDegraded
	}

	return c.JSON(models.HealthResponse{
		Message:            "Resume Copilot API is running!",
		Status:             status,
		Provider:           h.provider,
		Model:              h.model,
		ProviderConfigured: configured,
		OCREngine:          h.ocrEngine,
	})
}
