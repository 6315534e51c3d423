package services

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed prompts/resume_analysis.tmpl
var resumeAnalysisPromptRaw string

// ResumeAnalysisTemplate is the default prompt. Its output-format section is
// relied upon by clients that parse "Match Score:" and "Suggestions:".
var ResumeAnalysisTemplate = template.Must(template.New("resume_analysis").Parse(resumeAnalysisPromptRaw))

type PromptBuilder struct {
	tmpl *template.Template
}

type promptData struct {
	ResumeText     string
	JobDescription string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{tmpl: ResumeAnalysisTemplate}
}

// NewPromptBuilderFromFile parses a replacement template exposing
// {{.ResumeText}} and {{.JobDescription}}.
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template: %w", err)
	}

	tmpl, err := template.New("resume_analysis").Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// BuildAnalysisPrompt renders the résumé and job description into the template.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) (string, error) {
	var buf bytes.Buffer
	if err := pb.tmpl.Execute(&buf, promptData{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	}); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
