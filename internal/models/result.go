package models

type AnalyzeResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Message            string `json:"message"`
	Status             string `json:"status"`
	Provider           string `json:"provider"`
	Model              string `json:"model"`
	ProviderConfigured bool   `json:"provider_configured"`
	OCREngine          string `json:"ocr_engine"`
}

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)
