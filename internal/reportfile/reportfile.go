// Package reportfile persists validation results as JSON report files so a
// run's findings survive past the process for later inspection or CI
// artifact collection.
package reportfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/seolint/seolint/internal/report"
	"github.com/seolint/seolint/pkg/seolint"
)

// Document is the persisted shape of one validation run.
type Document struct {
	GeneratedAt time.Time       `json:"generated_at"`
	File        string          `json:"file"`
	Results     []report.Result `json:"results"`
	Summary     Summary         `json:"summary"`
}

// Summary aggregates defect counts across all results in the document.
type Summary struct {
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Passed   bool `json:"passed"`
}

// Write persists the results of validating one file into dir and returns the
// report path. File names carry a timestamp plus a short random suffix so
// rapid consecutive runs never clobber each other.
func Write(dir, validatedFile string, results []report.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	doc := Document{
		GeneratedAt: time.Now().UTC(),
		File:        validatedFile,
		Results:     results,
		Summary:     summarize(results),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s.json",
		seolint.ReportFilePrefix,
		doc.GeneratedAt.Format("20060102-150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func summarize(results []report.Result) Summary {
	s := Summary{Passed: true}
	for i := range results {
		s.Errors += len(results[i].Errors)
		s.Warnings += len(results[i].Warnings)
		if !results[i].Success {
			s.Passed = false
		}
	}
	return s
}
