// Package handler is the serverless entrypoint. It serves the same Fiber app
// as cmd/api through a net/http adapter.
package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"alfredoptarigan/resume-copilot/internal/config"
	"alfredoptarigan/resume-copilot/internal/models"
	"alfredoptarigan/resume-copilot/internal/server"
)

var (
	initOnce sync.Once
	app      http.HandlerFunc
	initErr  error
)

// Handler is invoked once per request by the serverless runtime. The app is
// built on the first call and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg := config.Load()
		analyzer, err := server.NewAnalyzer(context.Background(), cfg)
		if err != nil {
			initErr = err
			log.Printf("❌ Failed to initialize analyzer: %v", err)
			return
		}
		app = adaptor.FiberApp(server.New(cfg, analyzer))
	})

	if initErr != nil {
		writeJSONError(w, http.StatusInternalServerError, "service is misconfigured: "+initErr.Error())
		return
	}

	app(w, r)
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
