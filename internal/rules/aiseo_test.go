package rules

import (
	"strings"
	"testing"
)

const goodLLMsTxt = `# Acme Corp
> Industrial-grade anvils and rocket skates for discerning coyotes.

## About
Acme Corp has supplied quality hardware since 1949.

## Key Pages
- /products
- /catalog

## Contact
support@acme.example.com`

func TestValidateLLMsTxtWellFormedPasses(t *testing.T) {
	errs, warns := ValidateLLMsTxt(goodLLMsTxt, "public/llms.txt")
	if len(errs) != 0 || len(warns) != 0 {
		t.Errorf("got errors %v, warnings %v; want none", codes(errs), codes(warns))
	}
}

func TestValidateLLMsTxtMissingTitle(t *testing.T) {
	content := strings.Replace(goodLLMsTxt, "# Acme Corp", "Acme Corp", 1)

	errs, _ := ValidateLLMsTxt(content, "public/llms.txt")
	if len(errs) != 1 || errs[0].Code != "AI003" {
		t.Fatalf("got %v, want one AI003", codes(errs))
	}
	if errs[0].Line != 1 {
		t.Errorf("line = %d, want 1", errs[0].Line)
	}
}

func TestValidateLLMsTxtMissingDescription(t *testing.T) {
	content := strings.Replace(goodLLMsTxt,
		"> Industrial-grade anvils and rocket skates for discerning coyotes.\n", "", 1)

	errs, _ := ValidateLLMsTxt(content, "public/llms.txt")
	if len(errs) != 1 || errs[0].Code != "AI004" {
		t.Fatalf("got %v, want one AI004", codes(errs))
	}
	if errs[0].Line != 2 {
		t.Errorf("line = %d, want 2", errs[0].Line)
	}
}

func TestValidateLLMsTxtMissingSections(t *testing.T) {
	content := "# Acme Corp\n> Anvils and rocket skates, quality hardware since 1949, shipped anywhere."

	errs, warns := ValidateLLMsTxt(content, "public/llms.txt")

	// About is required, Key Pages and Contact are recommended.
	if len(errs) != 1 || errs[0].Code != "AI002" {
		t.Fatalf("got errors %v, want one AI002", codes(errs))
	}
	if errs[0].Current != "Missing: About" {
		t.Errorf("current = %q", errs[0].Current)
	}

	var sections []string
	for _, w := range warns {
		if w.Code == "AI002" {
			sections = append(sections, w.Current)
		}
	}
	if len(sections) != 2 || sections[0] != "Missing: Key Pages" || sections[1] != "Missing: Contact" {
		t.Errorf("recommended sections = %v", sections)
	}
}

func TestValidateLLMsTxtSectionMatchIsCaseInsensitive(t *testing.T) {
	content := strings.Replace(goodLLMsTxt, "## About", "## ABOUT", 1)

	errs, _ := ValidateLLMsTxt(content, "public/llms.txt")
	if len(errs) != 0 {
		t.Errorf("got %v, want none", codes(errs))
	}
}

func TestValidateLLMsTxtShortContentWarning(t *testing.T) {
	content := "# X\n> Y\n\n## About\nZ\n## Key Pages\n## Contact"

	errs, warns := ValidateLLMsTxt(content, "public/llms.txt")
	if len(errs) != 0 {
		t.Errorf("errors = %v, want none", codes(errs))
	}
	if len(warns) != 1 || warns[0].Code != "AI007" {
		t.Fatalf("warnings = %v, want one AI007", codes(warns))
	}
	if !strings.HasSuffix(warns[0].Current, " characters") {
		t.Errorf("current = %q", warns[0].Current)
	}
}

func TestValidateRobotsTxtCleanPasses(t *testing.T) {
	content := `User-agent: *
Allow: /

Sitemap: https://example.com/sitemap.xml`

	errs, warns := ValidateRobotsTxt(content, "public/robots.txt", nil)
	if len(errs) != 0 || len(warns) != 0 {
		t.Errorf("got errors %v, warnings %v; want none", codes(errs), codes(warns))
	}
}

func TestValidateRobotsTxtExplicitBlock(t *testing.T) {
	content := `User-agent: GPTBot
Disallow: /

Sitemap: https://example.com/sitemap.xml`

	_, warns := ValidateRobotsTxt(content, "public/robots.txt", nil)
	if len(warns) != 1 || warns[0].Code != "AI005" {
		t.Fatalf("warnings = %v, want one AI005", codes(warns))
	}

	w := warns[0]
	if w.Line != 1 {
		t.Errorf("line = %d, want 1", w.Line)
	}
	if w.Rule != "robots.txt blocks GPTBot" {
		t.Errorf("rule = %q", w.Rule)
	}
	if w.Current != `User-agent: GPTBot\nDisallow: /` {
		t.Errorf("current = %q", w.Current)
	}
}

func TestValidateRobotsTxtWildcardBlocksEveryBot(t *testing.T) {
	content := `User-agent: *
Disallow: /

Sitemap: https://example.com/sitemap.xml`

	_, warns := ValidateRobotsTxt(content, "public/robots.txt", nil)

	// One AI008 per built-in bot without its own block.
	if len(warns) != len(aiBots) {
		t.Fatalf("got %d warnings, want %d", len(warns), len(aiBots))
	}
	for i, w := range warns {
		if w.Code != "AI008" {
			t.Errorf("warning %d code = %s", i, w.Code)
		}
		if w.Line != 1 {
			t.Errorf("warning %d line = %d, want 1", i, w.Line)
		}
		if !strings.Contains(w.Rule, aiBots[i]) {
			t.Errorf("warning %d rule = %q, want mention of %s", i, w.Rule, aiBots[i])
		}
	}
}

func TestValidateRobotsTxtExplicitAllowBeatsWildcard(t *testing.T) {
	content := `User-agent: ClaudeBot
Allow: /

User-agent: *
Disallow: /

Sitemap: https://example.com/sitemap.xml`

	_, warns := ValidateRobotsTxt(content, "public/robots.txt", nil)

	for _, w := range warns {
		if strings.Contains(w.Rule, "ClaudeBot") {
			t.Errorf("ClaudeBot has its own allow block, got %q", w.Rule)
		}
	}
	if len(warns) != len(aiBots)-1 {
		t.Errorf("got %d warnings, want %d", len(warns), len(aiBots)-1)
	}
}

func TestValidateRobotsTxtMissingSitemapReference(t *testing.T) {
	content := "User-agent: *\nAllow: /"

	_, warns := ValidateRobotsTxt(content, "public/robots.txt", nil)
	if len(warns) != 1 || warns[0].Code != "AI009" {
		t.Fatalf("warnings = %v, want one AI009", codes(warns))
	}
	if warns[0].Current != "" {
		t.Errorf("current = %q, want empty", warns[0].Current)
	}
}

func TestValidateRobotsTxtExtraBots(t *testing.T) {
	content := `User-agent: FooBot
Disallow: /

Sitemap: https://example.com/sitemap.xml`

	_, warns := ValidateRobotsTxt(content, "public/robots.txt", []string{"FooBot"})
	if len(warns) != 1 || warns[0].Code != "AI005" {
		t.Fatalf("warnings = %v, want one AI005", codes(warns))
	}
	if !strings.Contains(warns[0].Rule, "FooBot") {
		t.Errorf("rule = %q", warns[0].Rule)
	}
}

func TestParseRobotsTxtMergesRepeatedAgents(t *testing.T) {
	content := `User-agent: GPTBot
Disallow: /private

User-agent: GPTBot
Disallow: /`

	blocks := parseRobotsTxt(content)
	if len(blocks["gptbot"]) != 2 {
		t.Fatalf("rules = %v, want 2 merged", blocks["gptbot"])
	}
	if !robotsBlocked(blocks["gptbot"]) {
		t.Error("expected root disallow to count as blocked")
	}
}

func TestRobotsBlockedPathVariants(t *testing.T) {
	if robotsBlocked([]string{"disallow: /private"}) {
		t.Error("a scoped disallow is not a root block")
	}
	if !robotsBlocked([]string{"disallow:"}) {
		t.Error("an empty disallow path counts as a root block")
	}
	if robotsBlocked([]string{"allow: /"}) {
		t.Error("allow rules never block")
	}
}
