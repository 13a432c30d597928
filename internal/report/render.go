package report

import (
	"fmt"
	"strings"
)

const (
	sectionRule    = "============================================================"
	subsectionRule = "------------------------------------------------------------"

	// reminderLine closes every feedback block. Automated fixers rely on it
	// to know that saving the file re-triggers validation.
	reminderLine = "After fixing, save the file. Validation will re-run automatically."
)

// PassedLine renders the one-line success confirmation for a validator/file pair.
func PassedLine(file, validator string) string {
	return fmt.Sprintf("✓ %s validation passed for %s", strings.ToUpper(validator), file)
}

// Feedback renders the complete, actionable feedback block for a result that
// needs attention: a header with counts, numbered error instructions in rule
// order, a separated numbered warnings section, and the re-validation
// reminder. The layout is parsed by convention downstream; do not reorder.
func (r *Result) Feedback() string {
	lines := []string{
		fmt.Sprintf("✗ %s VALIDATION FAILED", strings.ToUpper(r.Validator)),
		fmt.Sprintf("File: %s", r.File),
		fmt.Sprintf("Errors: %d | Warnings: %d", len(r.Errors), len(r.Warnings)),
		"",
		sectionRule,
		"FIX INSTRUCTIONS (execute in order):",
		sectionRule,
	}

	for i := range r.Errors {
		lines = append(lines, fmt.Sprintf("\n%d. %s", i+1, r.Errors[i].Instruction()))
	}

	if len(r.Warnings) > 0 {
		lines = append(lines,
			"\n"+subsectionRule,
			"WARNINGS (recommended fixes):",
			subsectionRule,
		)
		for i := range r.Warnings {
			lines = append(lines, fmt.Sprintf("\n%d. %s", i+1, r.Warnings[i].Instruction()))
		}
	}

	lines = append(lines, "\n"+sectionRule, reminderLine)

	return strings.Join(lines, "\n")
}
