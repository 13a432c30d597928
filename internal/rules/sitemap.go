package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seolint/seolint/internal/extract"
	"github.com/seolint/seolint/internal/report"
)

var sitemapLocRegex = regexp.MustCompile(`<loc>([^<]+)</loc>`)

// SITEMAP003 covers both URL defects of the family: an empty sitemap and a
// relative <loc> entry. The code is shared; the rule text distinguishes them.
var sitemapSpecs = map[string]ruleSpec{
	"SITEMAP001": {
		code: "SITEMAP001", severity: report.SeverityError,
		element:  "sitemap.xml",
		rule:     "Sitemap must be valid XML",
		expected: `<?xml version="1.0" encoding="UTF-8"?>`,
		fix:      "Add XML declaration at the start of the file.",
	},
	"SITEMAP002": {
		code: "SITEMAP002", severity: report.SeverityError,
		element:  "<urlset>",
		rule:     "Sitemap must have proper namespace",
		expected: `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		fix:      "Add xmlns attribute to urlset element.",
	},
	"SITEMAP003": {
		code: "SITEMAP003", severity: report.SeverityError,
		element:  "<url>",
		rule:     "Sitemap must contain at least one URL",
		expected: "<url><loc>https://...</loc></url>",
		fix:      "Add at least one URL entry.",
	},
	"SITEMAP003-relative": {
		code: "SITEMAP003", severity: report.SeverityError,
		rule:     "Sitemap URLs must be absolute",
		expected: "https://yourdomain.com/...",
		fix:      "Use absolute URLs starting with https://.",
	},
	"SITEMAP004": {
		code: "SITEMAP004", severity: report.SeverityWarning,
		element:  "<lastmod>",
		rule:     "Sitemap should include lastmod dates",
		expected: "<lastmod>2026-01-22</lastmod>",
		fix:      "Add lastmod element to each URL for better crawling.",
	},
}

func sitemapSpec(code string) ruleSpec { return sitemapSpecs[code] }

// ValidateSitemap checks an XML sitemap: declaration, urlset namespace,
// presence of at least one <loc> URL, absoluteness of every URL, and lastmod
// coverage (advisory).
func ValidateSitemap(content, filePath string) (errs, warns []report.ValidationError) {
	if !strings.HasPrefix(strings.TrimSpace(content), "<?xml") {
		e := sitemapSpec("SITEMAP001").at(filePath, 1)
		e.Current = "Missing XML declaration"
		errs = append(errs, e)
	}

	if !strings.Contains(content, "xmlns=") || !strings.Contains(content, "sitemaps.org") {
		e := sitemapSpec("SITEMAP002").at(filePath, 0)
		e.Current = "Missing or invalid namespace"
		errs = append(errs, e)
	}

	urls := sitemapLocRegex.FindAllStringSubmatch(content, -1)
	if len(urls) == 0 {
		e := sitemapSpec("SITEMAP003").at(filePath, 0)
		e.Current = "No URLs found"
		errs = append(errs, e)
	}

	for _, m := range urls {
		url := m[1]
		if strings.HasPrefix(url, "http") {
			continue
		}
		e := sitemapSpec("SITEMAP003-relative").at(filePath, extract.FindLine(content, url))
		if len(url) > 50 {
			e.Element = fmt.Sprintf("<loc>%s...</loc>", preview(url, 50))
		} else {
			e.Element = fmt.Sprintf("<loc>%s</loc>", url)
		}
		e.Current = url
		errs = append(errs, e)
	}

	if !strings.Contains(content, "<lastmod>") {
		w := sitemapSpec("SITEMAP004").at(filePath, 0)
		w.Current = "No lastmod elements found"
		warns = append(warns, w)
	}

	return errs, warns
}
