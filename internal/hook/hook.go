// Package hook implements the agent-hook dispatcher: it decodes a tool-use
// event, decides which rule catalogs apply to the touched file, runs them in
// isolation, and folds their results into a single hook envelope.
//
// The dispatcher never blocks the agent on its own trouble: an unreadable
// file, a directory path, or a non-mutating verb all yield a skip envelope.
// Only rule findings produce blocking feedback.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seolint/seolint/internal/report"
	"github.com/seolint/seolint/internal/rules"
	"github.com/seolint/seolint/pkg/seolint"
)

// mutationVerbs are the tool names that change file content. Anything else
// (reads, searches, shell commands) skips validation outright.
var mutationVerbs = map[string]bool{
	"Edit":      true,
	"Write":     true,
	"MultiEdit": true,
}

// Event is the tool-use notification delivered on stdin by the agent runtime.
// Unknown fields are ignored; absent fields decode to zero values and route
// to a skip.
type Event struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the subset of tool parameters the dispatcher reads.
type ToolInput struct {
	FilePath string `json:"file_path"`
}

// ParseEvent decodes an event from r. A malformed payload is an error; the
// caller maps it to a skip so a garbled event never blocks the agent.
func ParseEvent(r io.Reader) (Event, error) {
	var ev Event
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return Event{}, fmt.Errorf("decode hook event: %w", err)
	}
	return ev, nil
}

// Options configures a Dispatcher.
type Options struct {
	// Rules tunes catalog construction.
	Rules rules.Options
	// Disabled lists validator names (case-insensitive) to leave out.
	Disabled []string
}

// Dispatcher routes files to the rule catalogs that apply to them.
type Dispatcher struct {
	catalogs []rules.Catalog
	log      seolint.Logger
}

// New builds a Dispatcher over every enabled catalog.
func New(opts Options, log seolint.Logger) *Dispatcher {
	disabled := map[string]bool{}
	for _, name := range opts.Disabled {
		disabled[strings.ToUpper(name)] = true
	}

	var catalogs []rules.Catalog
	for _, c := range rules.All(opts.Rules) {
		if !disabled[c.Name] {
			catalogs = append(catalogs, c)
		}
	}

	return &Dispatcher{catalogs: catalogs, log: log}
}

// Catalog returns the enabled catalog with the given name (case-insensitive).
func (d *Dispatcher) Catalog(name string) (rules.Catalog, bool) {
	for _, c := range d.catalogs {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return rules.Catalog{}, false
}

// Names returns the enabled validator names in evaluation order.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.catalogs))
	for _, c := range d.catalogs {
		names = append(names, c.Name)
	}
	return names
}

// Results runs every applicable catalog over the content and returns one
// Result per catalog in evaluation order. Catalogs run in isolation: each
// result reflects only its own catalog's findings.
func (d *Dispatcher) Results(filePath, content string) []report.Result {
	var results []report.Result
	for _, c := range d.catalogs {
		if !c.Applies(filePath, content) {
			continue
		}
		d.log.Verbose("running %s validation for %s", c.Name, filePath)
		errs, warns := c.Validate(content, filePath)
		results = append(results, report.New(filePath, c.Name, errs, warns))
	}
	return results
}

// Handle processes one tool-use event end to end and returns the envelope to
// print. It never returns an error: every failure mode short of a rule
// finding is a skip.
func (d *Dispatcher) Handle(ev Event) report.HookResponse {
	if !mutationVerbs[ev.ToolName] {
		d.log.Verbose("skipping non-mutating tool %q", ev.ToolName)
		return report.Skip()
	}

	filePath := ev.ToolInput.FilePath
	if filePath == "" {
		return report.Skip()
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		d.log.Verbose("skipping %s: not a readable file", filePath)
		return report.Skip()
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		d.log.Verbose("skipping %s: %v", filePath, err)
		return report.Skip()
	}

	results := d.Results(filePath, string(data))
	if len(results) == 0 {
		return report.Skip()
	}

	return Fold(results)
}

// Fold reduces per-catalog results into one envelope. Any result with
// findings makes the fold blocking, with feedback sections joined in catalog
// order; an all-clean fold passes with one line per catalog.
func Fold(results []report.Result) report.HookResponse {
	var feedbacks, passed []string

	for i := range results {
		r := &results[i]
		if r.NeedsFeedback() {
			feedbacks = append(feedbacks, r.Feedback())
		} else {
			passed = append(passed, report.PassedLine(r.File, r.Validator))
		}
	}

	if len(feedbacks) > 0 {
		return report.Blocking(strings.Join(feedbacks, "\n\n"))
	}
	return report.PassedWith(strings.Join(passed, "\n"))
}
