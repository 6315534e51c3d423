package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindExtraction    ErrorKind = "extraction"
	KindConfiguration ErrorKind = "configuration"
	KindProvider      ErrorKind = "provider"
)

var (
	ErrMissingInput          = errors.New("Missing file or job description")
	ErrEmptyFile             = errors.New("uploaded file is empty")
	ErrFileTooLarge          = errors.New("uploaded file is too large")
	ErrUnsupportedFormat     = errors.New("unsupported file type")
	ErrInsufficientText      = errors.New("could not extract meaningful text from the uploaded file")
	ErrOCRUnavailable        = errors.New("OCR engine unavailable")
	ErrImageTooLarge         = errors.New("image dimensions too large")
	ErrProviderNotConfigured = errors.New("completion provider is not configured")
	ErrProviderTimeout       = errors.New("analysis timed out")
)

// AnalysisError classifies a failure so callers can pick a response without
// matching on message text.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, err error) *AnalysisError {
	return &AnalysisError{Kind: KindValidation, Message: message, Err: err}
}

func NewExtractionError(message string, err error) *AnalysisError {
	return &AnalysisError{Kind: KindExtraction, Message: message, Err: err}
}

func NewConfigurationError(message string, err error) *AnalysisError {
	return &AnalysisError{Kind: KindConfiguration, Message: message, Err: err}
}

func NewProviderError(message string, err error) *AnalysisError {
	return &AnalysisError{Kind: KindProvider, Message: message, Err: err}
}

// KindOf returns the classification of err, or "" for unclassified errors.
func KindOf(err error) ErrorKind {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
