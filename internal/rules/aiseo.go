package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seolint/seolint/internal/report"
)

// aiBots are the AI crawler user agents checked against robots.txt policy.
// The list is fixed; projects extend it through configuration, never by
// editing this table.
var aiBots = []string{
	"GPTBot",
	"ClaudeBot",
	"PerplexityBot",
	"Google-Extended",
	"Amazonbot",
	"anthropic-ai",
	"Bytespider",
	"CCBot",
	"ChatGPT-User",
	"cohere-ai",
}

var (
	llmsRequiredSections    = []string{"About"}
	llmsRecommendedSections = []string{"Key Pages", "Contact"}
)

// llmsMinContentLength is the advisory floor for llms.txt substance, counted
// in characters.
const llmsMinContentLength = 100

var aiSpecs = map[string]ruleSpec{
	"AI002": {
		code: "AI002", severity: report.SeverityWarning,
		element: "llms.txt",
	},
	"AI003": {
		code: "AI003", severity: report.SeverityError,
		element:  "llms.txt",
		rule:     "llms.txt must have site title on first line",
		expected: "# Site Name",
		fix:      "Add '# Site Name' as first line of llms.txt.",
	},
	"AI004": {
		code: "AI004", severity: report.SeverityError,
		element:  "llms.txt",
		rule:     "llms.txt must have site description",
		expected: "> One-line description of your site",
		fix:      "Add '> Brief description' after the title in llms.txt.",
	},
	"AI005": {
		code: "AI005", severity: report.SeverityWarning,
		element: "robots.txt",
	},
	"AI007": {
		code: "AI007", severity: report.SeverityWarning,
		element:  "llms.txt",
		rule:     "llms.txt should have substantive content (≥100 chars)",
		expected: "≥100 characters",
		fix:      "Add more descriptive content about your site, key pages, and what AI assistants should know.",
	},
	"AI008": {
		code: "AI008", severity: report.SeverityWarning,
		element: "robots.txt",
	},
	"AI009": {
		code: "AI009", severity: report.SeverityWarning,
		element:  "robots.txt",
		rule:     "robots.txt should reference sitemap",
		expected: "Sitemap: https://yourdomain.com/sitemap.xml",
		fix:      "Add 'Sitemap: https://yourdomain.com/sitemap.xml' at the end of robots.txt.",
	},
}

func aiSpec(code string) ruleSpec { return aiSpecs[code] }

// ValidateLLMsTxt checks an llms.txt manifest: title line, description line,
// required and recommended sections, and overall substance.
func ValidateLLMsTxt(content, filePath string) (errs, warns []report.ValidationError) {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	// Title: the first line must be a markdown heading.
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "#") {
		errs = append(errs, aiSpec("AI003").at(filePath, 1))
	}

	// Description: a "> ..." line somewhere in the first five lines.
	hasDescription := false
	for i, line := range lines {
		if i >= 5 {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			hasDescription = true
			break
		}
	}
	if !hasDescription {
		errs = append(errs, aiSpec("AI004").at(filePath, 2))
	}

	// Section presence is matched case-insensitively against "## <name>".
	contentLower := strings.ToLower(content)

	for _, section := range llmsRequiredSections {
		if strings.Contains(contentLower, "## "+strings.ToLower(section)) {
			continue
		}
		// No exact insertion point for a missing section exists; anchor
		// at the middle of the file as the suggested spot.
		errs = append(errs, llmsMissingSection(filePath, section, len(lines)/2))
	}
	for _, section := range llmsRecommendedSections {
		if strings.Contains(contentLower, "## "+strings.ToLower(section)) {
			continue
		}
		warns = append(warns, llmsMissingSection(filePath, section, 0))
	}

	if n := utf8.RuneCountInString(content); n < llmsMinContentLength {
		w := aiSpec("AI007").at(filePath, 0)
		w.Current = fmt.Sprintf("%d characters", n)
		warns = append(warns, w)
	}

	return errs, warns
}

func llmsMissingSection(filePath, section string, line int) report.ValidationError {
	e := aiSpec("AI002").at(filePath, line)
	e.Rule = fmt.Sprintf("llms.txt should have '%s' section", section)
	e.Current = "Missing: " + section
	e.Expected = "## " + section
	e.Fix = fmt.Sprintf("Add '## %s' section to llms.txt with relevant content.", section)
	return e
}

// ValidateRobotsTxt checks robots.txt policy toward AI crawlers: explicit
// blocks, wildcard blocks that catch bots without their own block, and the
// sitemap reference. All findings are advisory; blocking a crawler may be
// intentional, so nothing here is an error.
func ValidateRobotsTxt(content, filePath string, extraBots []string) (errs, warns []report.ValidationError) {
	lines := strings.Split(content, "\n")
	blocks := parseRobotsTxt(content)

	bots := aiBots
	if len(extraBots) > 0 {
		bots = append(append([]string{}, aiBots...), extraBots...)
	}

	for _, bot := range bots {
		botLower := strings.ToLower(bot)

		if rules, ok := blocks[botLower]; ok {
			if robotsBlocked(rules) {
				w := aiSpec("AI005").at(filePath, findUserAgentLine(lines, bot))
				w.Rule = fmt.Sprintf("robots.txt blocks %s", bot)
				w.Current = fmt.Sprintf("User-agent: %s\\nDisallow: /", bot)
				w.Expected = fmt.Sprintf("User-agent: %s\\nAllow: /", bot)
				w.Fix = fmt.Sprintf("Change 'Disallow: /' to 'Allow: /' for %s, or remove the block entirely.", bot)
				warns = append(warns, w)
			}
		} else if rules, ok := blocks["*"]; ok && robotsBlocked(rules) {
			w := aiSpec("AI008").at(filePath, findUserAgentLine(lines, "*"))
			w.Rule = fmt.Sprintf("Wildcard User-agent may block %s", bot)
			w.Current = `User-agent: *\nDisallow: /`
			w.Expected = fmt.Sprintf("Add explicit allow for %s", bot)
			w.Fix = fmt.Sprintf("Add 'User-agent: %s\\nAllow: /' before the wildcard block to allow AI crawlers.", bot)
			warns = append(warns, w)
		}
	}

	if !strings.Contains(strings.ToLower(content), "sitemap:") {
		warns = append(warns, aiSpec("AI009").at(filePath, 0))
	}

	return errs, warns
}

// parseRobotsTxt groups allow/disallow directives under their lowercased
// user-agent. Repeated blocks for one agent merge; directives before any
// user-agent line are dropped.
func parseRobotsTxt(content string) map[string][]string {
	blocks := map[string][]string{}
	currentAgent := ""

	for _, raw := range strings.Split(content, "\n") {
		line := strings.ToLower(strings.TrimSpace(raw))

		switch {
		case strings.HasPrefix(line, "user-agent:"):
			currentAgent = strings.TrimSpace(strings.TrimPrefix(line, "user-agent:"))
			if _, ok := blocks[currentAgent]; !ok {
				blocks[currentAgent] = []string{}
			}
		case currentAgent != "" && (strings.HasPrefix(line, "disallow:") || strings.HasPrefix(line, "allow:")):
			blocks[currentAgent] = append(blocks[currentAgent], line)
		}
	}

	return blocks
}

// robotsBlocked reports whether the directives deny the site root: any
// "disallow:" whose path is "/" or empty counts as a root block.
func robotsBlocked(rules []string) bool {
	for _, rule := range rules {
		if !strings.HasPrefix(rule, "disallow:") {
			continue
		}
		path := strings.TrimSpace(strings.TrimPrefix(rule, "disallow:"))
		if path == "/" || path == "" {
			return true
		}
	}
	return false
}

// findUserAgentLine returns the 1-based line of the first user-agent
// directive naming the agent (case-insensitive substring), or 0.
func findUserAgentLine(lines []string, agent string) int {
	agentLower := strings.ToLower(agent)
	for i, line := range lines {
		lineLower := strings.ToLower(line)
		if strings.HasPrefix(strings.TrimSpace(lineLower), "user-agent:") &&
			strings.Contains(lineLower, agentLower) {
			return i + 1
		}
	}
	return 0
}
