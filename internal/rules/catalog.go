// Package rules implements the five rule catalogs (Meta, Structured-Data,
// Sitemap, AI-Crawler, Performance). Each catalog is a pure function
// (content, filePath) -> (errors, warnings): no state survives a call, so
// running a catalog twice on unchanged content yields identical reports.
//
// Every check follows the same pattern: extract via internal/extract
// (optionally excused by a dialect alternate via internal/framework),
// evaluate the value against its constraint, and on violation instantiate a
// ValidationError from the family's declarative rule table. Checks are
// independent; a failing check never aborts the rest, and results keep
// rule-evaluation order so consumers can apply fixes top to bottom.
package rules

import (
	"strings"

	"github.com/seolint/seolint/internal/report"
)

// Catalog is one rule family with its applicability predicate.
type Catalog struct {
	// Name is the validator name as rendered in reports (e.g. "META").
	Name string

	// Applies reports whether the catalog should run for this file.
	// Predicates are independent and overlapping: one file may be
	// validated by several catalogs.
	Applies func(filePath, content string) bool

	// Validate runs every check and returns errors and warnings in
	// rule-evaluation order.
	Validate func(content, filePath string) (errs, warns []report.ValidationError)
}

// Options carries project-level tuning for catalog construction.
type Options struct {
	// ExtraAIBots are appended to the fixed AI crawler list checked by the
	// AI-Crawler catalog.
	ExtraAIBots []string
}

// All returns every catalog in its fixed evaluation order. The order is part
// of the aggregate-report contract and must not change between runs.
func All(opts Options) []Catalog {
	return []Catalog{
		{
			Name:     "META",
			Applies:  func(path, _ string) bool { return IsMetaFile(path) },
			Validate: ValidateMeta,
		},
		{
			Name: "SCHEMA",
			Applies: func(path, content string) bool {
				if !IsSchemaFile(path) && !IsMetaFile(path) {
					return false
				}
				// Content sniff: only files that actually embed structured
				// data are worth a SCHEMA pass.
				return strings.Contains(content, "application/ld+json") ||
					strings.Contains(content, "@context")
			},
			Validate: ValidateSchemas,
		},
		{
			Name:     "SITEMAP",
			Applies:  func(path, _ string) bool { return strings.Contains(strings.ToLower(path), "sitemap") },
			Validate: ValidateSitemap,
		},
		{
			Name:    "AI-SEO",
			Applies: func(path, _ string) bool { return isLLMsFile(path) || isRobotsFile(path) },
			Validate: func(content, path string) ([]report.ValidationError, []report.ValidationError) {
				if isLLMsFile(path) {
					return ValidateLLMsTxt(content, path)
				}
				return ValidateRobotsTxt(content, path, opts.ExtraAIBots)
			},
		},
		{
			Name:     "PERF",
			Applies:  func(path, _ string) bool { return IsPerfFile(path) },
			Validate: ValidatePerf,
		},
	}
}

// ruleSpec is one entry of a family's declarative error-template table:
// the static portion of a ValidationError. Dynamic fields (line, current,
// and any parameterized text) are filled at call time.
type ruleSpec struct {
	code     string
	severity report.Severity
	element  string
	rule     string
	expected string
	fix      string
}

// at instantiates the template at a file location. Line 0 means unknown.
func (s ruleSpec) at(file string, line int) report.ValidationError {
	return report.ValidationError{
		Code:     s.code,
		Severity: s.severity,
		File:     file,
		Line:     line,
		Element:  s.element,
		Rule:     s.rule,
		Expected: s.expected,
		Fix:      s.fix,
	}
}

// File-path heuristics deciding which catalogs are worth running. These are
// indicators, not guarantees: a "layout" file probably carries meta tags.

var metaFileIndicators = []string{
	"layout", "head", "seo", "meta", "base", "_app", "_document",
	"root", "basehead", "defaulthead",
}

var schemaFileIndicators = []string{
	"schema", "jsonld", "json-ld", "structured", "ld+json",
}

var perfFileIndicators = []string{
	"layout", "page", "component", "template", "view",
	"head", "base", "app", "root", "index",
}

var perfFileExtensions = []string{
	".html", ".astro", ".tsx", ".jsx", ".vue", ".svelte",
}

// IsMetaFile reports whether the file likely contains meta tags.
func IsMetaFile(filePath string) bool {
	return containsAny(strings.ToLower(filePath), metaFileIndicators)
}

// IsSchemaFile reports whether the file likely contains structured data.
func IsSchemaFile(filePath string) bool {
	pathLower := strings.ToLower(filePath)
	return containsAny(pathLower, schemaFileIndicators) || strings.HasSuffix(filePath, ".json")
}

// IsPerfFile reports whether the file should get a performance pass:
// layout/component-like names, template extensions, and CSS (font rules).
func IsPerfFile(filePath string) bool {
	pathLower := strings.ToLower(filePath)

	if containsAny(pathLower, perfFileIndicators) {
		return true
	}
	for _, ext := range perfFileExtensions {
		if strings.HasSuffix(pathLower, ext) {
			return true
		}
	}
	return strings.HasSuffix(pathLower, ".css")
}

func isLLMsFile(filePath string) bool {
	return strings.Contains(strings.ToLower(baseName(filePath)), "llms")
}

func isRobotsFile(filePath string) bool {
	return strings.Contains(strings.ToLower(baseName(filePath)), "robots")
}

func baseName(filePath string) string {
	if i := strings.LastIndexAny(filePath, `/\`); i >= 0 {
		return filePath[i+1:]
	}
	return filePath
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// preview truncates an observed value, counted in characters not bytes, for
// embedding in element labels.
func preview(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}
