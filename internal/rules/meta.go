package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/seolint/seolint/internal/extract"
	"github.com/seolint/seolint/internal/framework"
	"github.com/seolint/seolint/internal/report"
)

// Title and description length thresholds, counted in characters.
const (
	titleMin = 10
	titleMax = 60
	descMin  = 120
	descMax  = 160
)

// nonDescriptiveLinks is the denylist of link texts that tell a reader (or a
// crawler) nothing about the destination. Matched against the trimmed,
// lowercased inner text; exact match only, substrings never count.
var nonDescriptiveLinks = map[string]bool{
	"learn more":       true,
	"read more":        true,
	"click here":       true,
	"here":             true,
	"more":             true,
	"link":             true,
	"this":             true,
	"more info":        true,
	"info":             true,
	"details":          true,
	"see more":         true,
	"view more":        true,
	"continue":         true,
	"continue reading": true,
}

var canonicalRelRegex = regexp.MustCompile(`(?i)rel=["']canonical["']`)

// metaSpecs is the META error-template table. Dynamic rules (lengths,
// observed values) copy their template and fill Current/Fix at call time.
var metaSpecs = map[string]ruleSpec{
	"META001": {
		code: "META001", severity: report.SeverityError,
		element:  "<title>",
		rule:     "Page must have exactly one <title> tag",
		expected: "<title>Page Title | Site Name</title>",
		fix:      "Add <title> tag inside <head>. Format: 'Page Title | Site Name'. Max 60 characters.",
	},
	"META002": {
		code: "META002", severity: report.SeverityError,
		element:  "<title>",
		rule:     "Title must be ≤60 characters",
		expected: "≤60 characters",
	},
	"META003": {
		code: "META003", severity: report.SeverityWarning,
		element:  "<title>",
		rule:     "Title should be ≥10 characters for SEO",
		expected: "10-60 characters",
		fix:      "Expand title to at least 10 characters with relevant keywords.",
	},
	"META004": {
		code: "META004", severity: report.SeverityError,
		element:  `<meta name="description">`,
		rule:     "Page must have meta description",
		expected: `<meta name="description" content="...">`,
		fix:      `Add <meta name="description" content="Your description here"> inside <head>. 150-160 characters recommended.`,
	},
	"META005": {
		code: "META005", severity: report.SeverityWarning,
		element:  `<meta name="description">`,
		rule:     "Description should be ≤160 characters",
		expected: "≤160 characters",
	},
	"META006": {
		code: "META006", severity: report.SeverityWarning,
		element:  `<meta name="description">`,
		rule:     "Description should be ≥120 characters",
		expected: "120-160 characters",
	},
	"META007": {
		code: "META007", severity: report.SeverityError,
		element:  `<link rel="canonical">`,
		rule:     "Page must have canonical URL",
		expected: `<link rel="canonical" href="https://...">`,
		fix:      `Add <link rel="canonical" href="{FULL_PAGE_URL}"> inside <head>. Use absolute URL.`,
	},
	"META008": {
		code: "META008", severity: report.SeverityError,
		element:  `<meta name="viewport">`,
		rule:     "Page must have viewport meta for mobile",
		expected: `<meta name="viewport" content="width=device-width, initial-scale=1">`,
		fix:      `Add <meta name="viewport" content="width=device-width, initial-scale=1"> inside <head>.`,
	},
	"META009": {
		code: "META009", severity: report.SeverityError,
		element:  `<meta property="og:title">`,
		rule:     "Page must have Open Graph title",
		expected: `<meta property="og:title" content="...">`,
		fix:      `Add <meta property="og:title" content="{PAGE_TITLE}"> inside <head>.`,
	},
	"META010": {
		code: "META010", severity: report.SeverityError,
		element:  `<meta property="og:description">`,
		rule:     "Page must have Open Graph description",
		expected: `<meta property="og:description" content="...">`,
		fix:      `Add <meta property="og:description" content="{DESCRIPTION}"> inside <head>.`,
	},
	"META011": {
		code: "META011", severity: report.SeverityError,
		element:  `<meta property="og:image">`,
		rule:     "Page must have Open Graph image",
		expected: `<meta property="og:image" content="https://...">`,
		fix:      `Add <meta property="og:image" content="{ABSOLUTE_IMAGE_URL}"> inside <head>. Image: 1200x630px.`,
	},
	"META012": {
		code: "META012", severity: report.SeverityError,
		element:  `<meta property="og:image">`,
		rule:     "og:image must be absolute URL",
		expected: "https://yourdomain.com/path/to/image.png",
	},
	"META013": {
		code: "META013", severity: report.SeverityError,
		element:  `<meta property="og:url">`,
		rule:     "Page must have Open Graph URL",
		expected: `<meta property="og:url" content="https://...">`,
		fix:      `Add <meta property="og:url" content="{CANONICAL_URL}"> inside <head>.`,
	},
	"META014": {
		code: "META014", severity: report.SeverityError,
		element:  `<meta name="twitter:card">`,
		rule:     "Page must have Twitter Card type",
		expected: `<meta name="twitter:card" content="summary_large_image">`,
		fix:      `Add <meta name="twitter:card" content="summary_large_image"> inside <head>.`,
	},
	"META015": {
		code: "META015", severity: report.SeverityWarning,
		element:  `<meta name="robots">`,
		rule:     "Page should have robots directive",
		expected: `<meta name="robots" content="index, follow">`,
		fix:      `Add <meta name="robots" content="index, follow"> inside <head>.`,
	},
	"META016": {
		code: "META016", severity: report.SeverityError,
		rule:     "Link text must describe the destination",
		expected: "Descriptive link text naming the destination page",
	},
}

func metaSpec(code string) ruleSpec { return metaSpecs[code] }

// ValidateMeta runs every META check over the content. Missing-element errors
// anchor at the <head> line (0 when absent); value errors anchor at the
// offending element's own line. A literal-extraction miss is excused when the
// file's dialect expresses the requirement through an alternate construct.
func ValidateMeta(content, filePath string) (errs, warns []report.ValidationError) {
	fw := framework.Detect(filePath, content)
	headLine := extract.HeadLine(content)

	// Title
	title, titleLine, _ := extract.TagContent(content, "title")
	if title == "" && !framework.HasAlternate(fw, framework.ReqTitle, content) {
		errs = append(errs, metaSpec("META001").at(filePath, headLine))
	} else if title != "" {
		n := utf8.RuneCountInString(title)
		if n > titleMax {
			e := metaSpec("META002").at(filePath, titleLine)
			e.Current = fmt.Sprintf("'%s...' (%d chars)", preview(title, 50), n)
			e.Fix = fmt.Sprintf("Shorten title to 60 chars. Remove %d characters.", n-titleMax)
			errs = append(errs, e)
		} else if n < titleMin {
			w := metaSpec("META003").at(filePath, titleLine)
			w.Current = fmt.Sprintf("'%s' (%d chars)", title, n)
			warns = append(warns, w)
		}
	}

	// Description
	desc, descLine, _ := extract.MetaContent(content, "description", "name")
	if desc == "" && !framework.HasAlternate(fw, framework.ReqDescription, content) {
		errs = append(errs, metaSpec("META004").at(filePath, headLine))
	} else if desc != "" {
		n := utf8.RuneCountInString(desc)
		if n > descMax {
			w := metaSpec("META005").at(filePath, descLine)
			w.Current = fmt.Sprintf("(%d chars)", n)
			w.Fix = fmt.Sprintf("Shorten description to 160 chars. Remove %d characters.", n-descMax)
			warns = append(warns, w)
		} else if n < descMin {
			w := metaSpec("META006").at(filePath, descLine)
			w.Current = fmt.Sprintf("(%d chars)", n)
			w.Fix = fmt.Sprintf("Expand description to 120+ chars. Add %d more characters.", descMin-n)
			warns = append(warns, w)
		}
	}

	// Viewport has no dialect alternates: it is always a literal tag.
	if viewport, _, _ := extract.MetaContent(content, "viewport", "name"); viewport == "" {
		errs = append(errs, metaSpec("META008").at(filePath, headLine))
	}

	// Canonical: a literal rel="canonical" anywhere satisfies the check
	// before any dialect alternate is consulted.
	if !canonicalRelRegex.MatchString(content) &&
		!framework.HasAlternate(fw, framework.ReqCanonical, content) {
		errs = append(errs, metaSpec("META007").at(filePath, headLine))
	}

	// Open Graph: the four og:* properties share one alternate (a dialect
	// openGraph construct covers them all).
	hasOGAlternate := framework.HasAlternate(fw, framework.ReqOpenGraph, content)

	if ogTitle, _, _ := extract.MetaContent(content, "og:title", "property"); ogTitle == "" && !hasOGAlternate {
		errs = append(errs, metaSpec("META009").at(filePath, headLine))
	}
	if ogDesc, _, _ := extract.MetaContent(content, "og:description", "property"); ogDesc == "" && !hasOGAlternate {
		errs = append(errs, metaSpec("META010").at(filePath, headLine))
	}

	ogImage, ogImageLine, _ := extract.MetaContent(content, "og:image", "property")
	if ogImage == "" && !hasOGAlternate {
		errs = append(errs, metaSpec("META011").at(filePath, headLine))
	} else if ogImage != "" && !strings.HasPrefix(ogImage, "http") {
		e := metaSpec("META012").at(filePath, ogImageLine)
		e.Current = ogImage
		e.Fix = fmt.Sprintf("Change og:image from relative '%s' to absolute URL. Prepend your domain.", ogImage)
		errs = append(errs, e)
	}

	if ogURL, _, _ := extract.MetaContent(content, "og:url", "property"); ogURL == "" && !hasOGAlternate {
		errs = append(errs, metaSpec("META013").at(filePath, headLine))
	}

	// Twitter Card
	if card, _, _ := extract.MetaContent(content, "twitter:card", "name"); card == "" &&
		!framework.HasAlternate(fw, framework.ReqTwitterCard, content) {
		errs = append(errs, metaSpec("META014").at(filePath, headLine))
	}

	// Robots directive is advisory only.
	if robots, _, _ := extract.MetaContent(content, "robots", "name"); robots == "" {
		warns = append(warns, metaSpec("META015").at(filePath, headLine))
	}

	// Non-descriptive link text
	for _, a := range extract.AnchorTexts(content) {
		if !nonDescriptiveLinks[strings.ToLower(a.Text)] {
			continue
		}
		e := metaSpec("META016").at(filePath, a.Line)
		e.Element = fmt.Sprintf(`<a>"%s"`, a.Text)
		e.Current = a.Text
		e.Fix = fmt.Sprintf(`Replace link text "%s" with text that describes the destination page.`, a.Text)
		errs = append(errs, e)
	}

	return errs, warns
}
