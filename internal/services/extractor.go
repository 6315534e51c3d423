package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-copilot/internal/models"
)

var supportedExtensions = []string{".txt", ".pdf", ".docx", ".doc", ".jpg", ".jpeg", ".png"}

// TextExtractor turns an uploaded résumé into plain text, choosing a decoder
// by file extension.
type TextExtractor interface {
	Extract(ctx context.Context, doc models.UploadedDocument) (string, error)
	SupportedExtensions() []string
}

type textExtractor struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
	imageOCR   ImageOCRService
}

func NewTextExtractor(
	pdfParser PDFParserService,
	docxParser DocxParserService,
	imageOCR ImageOCRService,
) TextExtractor {
	return &textExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
		imageOCR:   imageOCR,
	}
}

// SupportedExtensions implements TextExtractor.
func (e *textExtractor) SupportedExtensions() []string {
	return append([]string(nil), supportedExtensions...)
}

// Extract implements TextExtractor. Validation failures come back as
// KindValidation, decoder failures as KindExtraction.
func (e *textExtractor) Extract(ctx context.Context, doc models.UploadedDocument) (string, error) {
	if len(doc.Data) == 0 {
		return "", NewValidationError("", ErrEmptyFile)
	}

	ext := strings.ToLower(filepath.Ext(doc.Filename))

	var (
		text string
		err  error
	)

	switch ext {
	case ".txt":
		return strings.ToValidUTF8(string(doc.Data), ""), nil
	case ".pdf":
		var content *PDFContent
		content, err = e.pdfParser.ExtractTextWithMetaData(doc.Data)
		if err == nil {
			log.Printf("📄 [%s] PDF parsed: %d pages", RequestIDFromContext(ctx), content.PageCount)
			text = content.Text
		}
	case ".docx", ".doc":
		text, err = e.docxParser.ExtractText(doc.Data)
	case ".jpg", ".jpeg", ".png":
		text, err = e.imageOCR.ExtractText(ctx, doc.Data)
	default:
		return "", NewValidationError("", unsupportedFormat(ext))
	}

	if err != nil {
		return "", NewExtractionError(
			fmt.Sprintf("your file could not be processed (%s)", strings.TrimPrefix(ext, ".")),
			err,
		)
	}

	return text, nil
}

func unsupportedFormat(ext string) error {
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Errorf("%w %q. Please upload a %s, or %s file",
		ErrUnsupportedFormat,
		ext,
		strings.Join(supportedExtensions[:len(supportedExtensions)-1], ", "),
		supportedExtensions[len(supportedExtensions)-1],
	)
}
