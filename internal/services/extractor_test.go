package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-copilot/internal/models"
	"alfredoptarigan/resume-copilot/mocks"
)

const knownText = "Jane Doe Senior Go Engineer"

func newTestExtractor(engine OCREngine) TextExtractor {
	return NewTextExtractor(
		NewPDFParserService(),
		NewDocxParserService(),
		NewImageOCRService(engine, 0),
	)
}

func TestExtract_PlainTextRoundTrip(t *testing.T) {
	extractor := newTestExtractor(nil)
	body := "Skills: Python. Experience: none.\nÉducation: BSc"

	text, err := extractor.Extract(context.Background(), models.UploadedDocument{
		Data:     []byte(body),
		Filename: "resume.TXT",
	})

	require.NoError(t, err)
	assert.Equal(t, body, text)
}

func TestExtract_PlainTextDropsInvalidBytes(t *testing.T) {
	extractor := newTestExtractor(nil)

	text, err := extractor.Extract(context.Background(), models.UploadedDocument{
		Data:     []byte("Go\xff\xfe developer"),
		Filename: "resume.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, "Go developer", text)
}

func TestExtract_PDF(t *testing.T) {
	extractor := newTestExtractor(nil)

	text, err := extractor.Extract(context.Background(), models.UploadedDocument{
		Data:     buildPDF(t, knownText),
		Filename: "resume.pdf",
	})

	require.NoError(t, err)
	assert.Contains(t, text, knownText)
}

func TestExtract_DOCX(t *testing.T) {
	extractor := newTestExtractor(nil)

	for _, name := range []string{"resume.docx", "resume.doc"} {
		text, err := extractor.Extract(context.Background(), models.UploadedDocument{
			Data:     buildDOCX(t, "Jane Doe", "Senior Go Engineer", "Skills: Go & SQL"),
			Filename: name,
		})

		require.NoError(t, err, name)
		assert.Equal(t, "Jane Doe\nSenior Go Engineer\nSkills: Go & SQL\n", text, name)
	}
}

func TestExtract_ImageRunsOCR(t *testing.T) {
	tests := []struct {
		filename string
		data     []byte
		mimeType string
	}{
		{"scan.png", buildPNG(t), "image/png"},
		{"scan.jpg", buildJPEG(t), "image/jpeg"},
		{"scan.JPEG", buildJPEG(t), "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			engine := new(mocks.MockOCREngine)
			engine.On("Recognize", mock.Anything, tt.data, tt.mimeType).Return(knownText+"\n", nil).Once()

			text, err := newTestExtractor(engine).Extract(context.Background(), models.UploadedDocument{
				Data:     tt.data,
				Filename: tt.filename,
			})

			require.NoError(t, err)
			assert.Contains(t, text, knownText)
			engine.AssertExpectations(t)
		})
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	engine := new(mocks.MockOCREngine)
	extractor := newTestExtractor(engine)

	for _, name := range []string{"resume.rtf", "resume.exe", "resume"} {
		_, err := extractor.Extract(context.Background(), models.UploadedDocument{
			Data:     buildPNG(t),
			Filename: name,
		})

		require.Error(t, err, name)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), ".pdf")
	}

	_, err := extractor.Extract(context.Background(), models.UploadedDocument{
		Data:     []byte("data"),
		Filename: "resume.odt",
	})
	assert.Contains(t, err.Error(), `".odt"`)

	engine.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtract_EmptyPayload(t *testing.T) {
	engine := new(mocks.MockOCREngine)

	_, err := newTestExtractor(engine).Extract(context.Background(), models.UploadedDocument{
		Filename: "scan.png",
	})

	assert.Equal(t, KindValidation, KindOf(err))
	assert.ErrorIs(t, err, ErrEmptyFile)
	engine.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtract_CorruptDocuments(t *testing.T) {
	extractor := newTestExtractor(nil)

	for _, name := range []string{"resume.pdf", "resume.docx"} {
		_, err := extractor.Extract(context.Background(), models.UploadedDocument{
			Data:     []byte("definitely not a document"),
			Filename: name,
		})

		require.Error(t, err, name)
		assert.Equal(t, KindExtraction, KindOf(err), name)
	}
}

func TestExtract_ImageWithoutOCREngine(t *testing.T) {
	_, err := newTestExtractor(nil).Extract(context.Background(), models.UploadedDocument{
		Data:     buildPNG(t),
		Filename: "scan.png",
	})

	assert.Equal(t, KindExtraction, KindOf(err))
	assert.ErrorIs(t, err, ErrOCRUnavailable)
}

func TestExtract_UndecodableImageSkipsOCR(t *testing.T) {
	engine := new(mocks.MockOCREngine)

	_, err := newTestExtractor(engine).Extract(context.Background(), models.UploadedDocument{
		Data:     []byte("\x89PNG truncated"),
		Filename: "scan.png",
	})

	assert.Equal(t, KindExtraction, KindOf(err))
	engine.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtract_OversizedImageSkipsOCR(t *testing.T) {
	engine := new(mocks.MockOCREngine)
	data := buildPNGHeader(t, 20000, 20000)

	_, err := newTestExtractor(engine).Extract(context.Background(), models.UploadedDocument{
		Data:     data,
		Filename: "scan.png",
	})

	assert.Less(t, len(data), 64)
	assert.Equal(t, KindExtraction, KindOf(err))
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Contains(t, err.Error(), "20000x20000")
	engine.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, mock.Anything)
}

func TestImageOCR_PixelLimit(t *testing.T) {
	engine := new(mocks.MockOCREngine)
	data := buildPNG(t)
	engine.On("Recognize", mock.Anything, data, "image/png").Return(knownText, nil).Once()

	_, err := NewImageOCRService(engine, 63).ExtractText(context.Background(), data)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	text, err := NewImageOCRService(engine, 64).ExtractText(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, knownText, text)
	engine.AssertExpectations(t)
}

func TestExtract_OCRFailure(t *testing.T) {
	engine := new(mocks.MockOCREngine)
	engine.On("Recognize", mock.Anything, mock.Anything, "image/png").Return("", errors.New("tesseract: no languages")).Once()

	_, err := newTestExtractor(engine).Extract(context.Background(), models.UploadedDocument{
		Data:     buildPNG(t),
		Filename: "scan.png",
	})

	assert.Equal(t, KindExtraction, KindOf(err))
	assert.Contains(t, err.Error(), "tesseract: no languages")
	engine.AssertNumberOfCalls(t, "Recognize", 1)
}

func TestSupportedExtensions(t *testing.T) {
	extractor := newTestExtractor(nil)

	exts := extractor.SupportedExtensions()
	assert.ElementsMatch(t, []string{".txt", ".pdf", ".docx", ".doc", ".jpg", ".jpeg", ".png"}, exts)

	exts[0] = ".mutated"
	assert.Contains(t, extractor.SupportedExtensions(), ".txt")
}

func TestParagraphText_TabsAndBreaks(t *testing.T) {
	xmlDoc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>5 years</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>` +
		`<w:p/>` +
		`</w:body></w:document>`

	text, err := paragraphText(xmlDoc)

	require.NoError(t, err)
	assert.Equal(t, "Go\t5 years\nLine one\nLine two\n\n", text)
}
