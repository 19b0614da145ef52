package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const weeklyReportTemplateName = "weekly-report.md.go.tmpl"

//go:embed templates/weekly-report.md.go.tmpl
var fallbackWeeklyReportTemplate string

// ParseWeeklyReportTemplate parses the template at templatePath, or the embedded
// one when the path is empty or cannot be parsed.
func ParseWeeklyReportTemplate(templatePath string, funcs template.FuncMap) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, weeklyReportTemplateName, fallbackWeeklyReportTemplate, funcs)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string, funcs template.FuncMap) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}
	for name, fn := range funcs {
		funcMap[name] = fn
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
