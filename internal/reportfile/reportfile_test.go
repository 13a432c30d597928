package reportfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seolint/seolint/internal/report"
	"github.com/seolint/seolint/pkg/seolint"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	results := []report.Result{
		report.New("src/layout.html", "META", []report.ValidationError{{
			Code: "META001", Severity: report.SeverityError, File: "src/layout.html",
			Element: "<title>", Rule: "r", Expected: "e", Fix: "f",
		}}, nil),
		report.New("src/layout.html", "PERF", nil, []report.ValidationError{{
			Code: "PERF008", Severity: report.SeverityWarning, File: "src/layout.html",
			Element: `<meta name="theme-color">`, Rule: "r", Expected: "e", Fix: "f",
		}}),
	}

	path, err := Write(dir, "src/layout.html", results)
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, seolint.ReportFilePrefix+"-"), name)
	assert.True(t, strings.HasSuffix(name, ".json"), name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "src/layout.html", doc.File)
	assert.False(t, doc.GeneratedAt.IsZero())
	require.Len(t, doc.Results, 2)
	assert.Equal(t, 1, doc.Summary.Errors)
	assert.Equal(t, 1, doc.Summary.Warnings)
	assert.False(t, doc.Summary.Passed)
}

func TestWriteUniqueNames(t *testing.T) {
	dir := t.TempDir()
	results := []report.Result{report.New("a.html", "META", nil, nil)}

	first, err := Write(dir, "a.html", results)
	require.NoError(t, err)
	second, err := Write(dir, "a.html", results)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestWriteCleanRunPasses(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, "a.html", []report.Result{report.New("a.html", "SITEMAP", nil, nil)})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.True(t, doc.Summary.Passed)
	assert.Zero(t, doc.Summary.Errors)
	assert.Zero(t, doc.Summary.Warnings)
}
