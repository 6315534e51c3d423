package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// OCREngine turns an encoded raster image into text.
type OCREngine interface {
	Recognize(ctx context.Context, data []byte, mimeType string) (string, error)
}

type ImageOCRService interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// DefaultMaxImagePixels bounds width*height of an image handed to OCR.
const DefaultMaxImagePixels = 40_000_000

type imageOCRService struct {
	engine    OCREngine
	maxPixels int
}

// NewImageOCRService wraps engine. A nil engine makes every image fail with
// ErrOCRUnavailable. maxPixels <= 0 selects DefaultMaxImagePixels.
func NewImageOCRService(engine OCREngine, maxPixels int) ImageOCRService {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxImagePixels
	}
	return &imageOCRService{engine: engine, maxPixels: maxPixels}
}

func (s *imageOCRService) ExtractText(ctx context.Context, data []byte) (string, error) {
	if s.engine == nil {
		return "", ErrOCRUnavailable
	}

	// Only the header is read; pixel buffers are sized by the declared
	// dimensions, not by the upload.
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if int64(cfg.Width)*int64(cfg.Height) > int64(s.maxPixels) {
		return "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, s.maxPixels)
	}

	text, err := s.engine.Recognize(ctx, data, "image/"+format)
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}
