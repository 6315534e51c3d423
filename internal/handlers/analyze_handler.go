package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-copilot/internal/models"
	"alfredoptarigan/resume-copilot/internal/services"
)

var errNotMultipart = fiber.NewError(fiber.StatusBadRequest, "Content-Type must be multipart/form-data")

type AnalyzeHandler struct {
	analyzer    services.ResumeAnalyzer
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.ResumeAnalyzer, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze_resume/
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return errNotMultipart
	}

	jobDescription := c.FormValue("job_description")
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Filename == "" || strings.TrimSpace(jobDescription) == "" {
		return services.NewValidationError("", services.ErrMissingInput)
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		return services.NewValidationError("",
			fmt.Errorf("%w. Max size: %d bytes", services.ErrFileTooLarge, h.maxFileSize))
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		return services.NewValidationError("failed to read uploaded file", err)
	}

	doc := models.UploadedDocument{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
	}

	ctx := services.WithRequestID(c.UserContext(), requestID(c))

	result, err := h.analyzer.Review(ctx, doc, jobDescription)
	if err != nil {
		return err
	}

	return c.JSON(models.AnalyzeResponse{Result: result})
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, nil
}
