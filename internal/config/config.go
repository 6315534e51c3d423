package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	OCREngineTesseract = "tesseract"
	OCREngineGemini    = "gemini"
	OCREngineNone      = "none"

	MinTemperature = 0.2
	MaxTemperature = 0.3
)

type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OCR        OCRConfig
	Extraction ExtractionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider           string
	Model              string
	Temperature        float32
	Timeout            time.Duration
	PromptTemplatePath string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
}

type OCRConfig struct {
	Engine    string
	Languages []string
	MaxPixels int
}

type ExtractionConfig struct {
	MinTextLength int
	MaxFileSize   int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider:           provider,
			Model:              getEnv("LLM_MODEL", defaultModel(provider)),
			Temperature:        ClampTemperature(getEnvAsFloat32("LLM_TEMPERATURE", MaxTemperature)),
			Timeout:            getEnvAsDuration("LLM_TIMEOUT", "60s"),
			PromptTemplatePath: getEnv("PROMPT_TEMPLATE_PATH", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		OCR: OCRConfig{
			Engine:    strings.ToLower(getEnv("OCR_ENGINE", OCREngineTesseract)),
			Languages: getEnvAsList("OCR_LANGUAGES", "eng"),
			MaxPixels: getEnvAsInt("OCR_MAX_PIXELS", 40_000_000),
		},
		Extraction: ExtractionConfig{
			MinTextLength: getEnvAsInt("MIN_TEXT_LENGTH", 10),
			MaxFileSize:   getEnvAsInt64("MAX_FILE_SIZE", 5<<20),
		},
	}
}

// ProviderAPIKey returns the credential of the selected completion provider,
// or "" when it is missing or the provider is unknown.
func (c *Config) ProviderAPIKey() string {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	case ProviderGemini:
		return c.Gemini.APIKey
	default:
		return ""
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// ClampTemperature keeps sampling in the low, repeatable range.
func ClampTemperature(t float32) float32 {
	if t < MinTemperature {
		return MinTemperature
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "gpt-3.5-turbo"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key string, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
