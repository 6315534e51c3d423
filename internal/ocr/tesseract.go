// Package ocr holds the tesseract-backed OCR engine. It links libtesseract
// through cgo, so it is kept apart from the rest of the services.
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

type TesseractEngine struct {
	languages []string
}

func NewTesseractEngine(languages []string) *TesseractEngine {
	return &TesseractEngine{languages: languages}
}

// Version reports the linked tesseract version, used as a startup probe.
func Version() string {
	return gosseract.Version()
}

// Recognize implements services.OCREngine. A client is created per call
// because gosseract clients must not be shared between goroutines.
func (t *TesseractEngine) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(t.languages) > 0 {
		if err := client.SetLanguage(t.languages...); err != nil {
			return "", fmt.Errorf("failed to set OCR languages: %w", err)
		}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to load %s into tesseract: %w", mimeType, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	return text, nil
}
