// Package report defines the validation error taxonomy, the per-catalog
// result aggregate, and the rendering of both into agent-actionable feedback
// and hook protocol envelopes.
//
// The rendered feedback format is an external contract: automated fixers
// parse it by convention (numbered instructions, section separators), so the
// structure produced by Feedback and Instruction must stay byte-stable.
package report

import (
	"fmt"
	"strings"
)

// Severity classifies a validation defect.
type Severity string

const (
	// SeverityError marks a defect that must be fixed; it blocks success.
	SeverityError Severity = "error"
	// SeverityWarning marks a defect that should be fixed; it never blocks success.
	SeverityWarning Severity = "warning"
)

// ValidationError is a single validation defect with complete fix instructions.
//
// Fix must be self-sufficient: an automated agent must be able to apply it
// without consulting the rule engine again.
type ValidationError struct {
	// Code is the stable, family-prefixed identifier (e.g. META004, SCHEMA002).
	Code string `json:"code"`
	// Severity is error (must fix) or warning (should fix).
	Severity Severity `json:"severity"`
	// File is the path of the validated file.
	File string `json:"file"`
	// Line is the 1-based line number of the offending construct.
	// 0 means the location could not be attributed.
	Line int `json:"line,omitempty"`
	// Element is the human label of the offending construct (e.g. "<title>").
	Element string `json:"element"`
	// Rule states the violated constraint in one sentence.
	Rule string `json:"rule"`
	// Current is the observed value, empty when the construct is absent.
	Current string `json:"current,omitempty"`
	// Expected is the target value or shape. Always present.
	Expected string `json:"expected"`
	// Fix is the imperative, directly-actionable instruction.
	Fix string `json:"fix"`
}

// Instruction renders the error as a single agent instruction block:
//
//	[CODE] element at line L in file
//	  Rule: ...
//	  Current: ...
//	  Expected: ...
//	  Fix: ...
//
// The "at line L" segment is omitted when the line is unknown and the
// "Current:" line is omitted when no value was observed.
func (e *ValidationError) Instruction() string {
	parts := []string{fmt.Sprintf("[%s] %s", e.Code, e.Element)}

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("at line %d", e.Line))
	}

	parts = append(parts, fmt.Sprintf("in %s", e.File))

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n  Rule: " + e.Rule)

	if e.Current != "" {
		b.WriteString("\n  Current: " + e.Current)
	}

	b.WriteString("\n  Expected: " + e.Expected)
	b.WriteString("\n  Fix: " + e.Fix)

	return b.String()
}

// Result is the aggregate outcome of one catalog run over one file.
//
// Success reflects "no errors"; warnings never affect it. NeedsFeedback
// reflects "errors or warnings" and drives the renderer branch: a
// warnings-only result is still a success but must surface its feedback.
//
// Errors and Warnings keep rule-evaluation insertion order, not severity
// order. Downstream consumers treat the list as an ordered fix plan.
type Result struct {
	Success   bool              `json:"success"`
	File      string            `json:"file"`
	Validator string            `json:"validator"`
	Errors    []ValidationError `json:"errors"`
	Warnings  []ValidationError `json:"warnings"`
}

// New builds a Result from a catalog's output. Success is derived, never set
// independently: it is true exactly when errs is empty.
func New(file, validator string, errs, warnings []ValidationError) Result {
	if errs == nil {
		errs = []ValidationError{}
	}
	if warnings == nil {
		warnings = []ValidationError{}
	}
	return Result{
		Success:   len(errs) == 0,
		File:      file,
		Validator: validator,
		Errors:    errs,
		Warnings:  warnings,
	}
}

// NeedsFeedback reports whether the result carries anything worth surfacing.
func (r *Result) NeedsFeedback() bool {
	return len(r.Errors) > 0 || len(r.Warnings) > 0
}
