package rules

import (
	"strings"
	"testing"

	"github.com/seolint/seolint/internal/report"
)

const goodSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://example.com/</loc>
    <lastmod>2026-01-22</lastmod>
  </url>
  <url>
    <loc>https://example.com/about</loc>
    <lastmod>2026-01-22</lastmod>
  </url>
</urlset>`

func TestValidateSitemapWellFormedPasses(t *testing.T) {
	errs, warns := ValidateSitemap(goodSitemap, "public/sitemap.xml")
	if len(errs) != 0 || len(warns) != 0 {
		t.Errorf("got errors %v, warnings %v; want none", codes(errs), codes(warns))
	}
}

func TestValidateSitemapMissingDeclaration(t *testing.T) {
	content := strings.TrimPrefix(goodSitemap, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")

	errs, _ := ValidateSitemap(content, "public/sitemap.xml")
	if len(errs) != 1 || errs[0].Code != "SITEMAP001" {
		t.Fatalf("got %v, want one SITEMAP001", codes(errs))
	}
	if errs[0].Line != 1 {
		t.Errorf("line = %d, want 1", errs[0].Line)
	}
	if errs[0].Current != "Missing XML declaration" {
		t.Errorf("current = %q", errs[0].Current)
	}
}

func TestValidateSitemapMissingNamespace(t *testing.T) {
	content := strings.Replace(goodSitemap,
		` xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`, "", 1)

	errs, _ := ValidateSitemap(content, "public/sitemap.xml")
	if len(errs) != 1 || errs[0].Code != "SITEMAP002" {
		t.Fatalf("got %v, want one SITEMAP002", codes(errs))
	}
}

func TestValidateSitemapNoURLs(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
</urlset>`

	errs, warns := ValidateSitemap(content, "public/sitemap.xml")
	if len(errs) != 1 || errs[0].Code != "SITEMAP003" {
		t.Fatalf("got %v, want one SITEMAP003", codes(errs))
	}
	if errs[0].Current != "No URLs found" {
		t.Errorf("current = %q", errs[0].Current)
	}
	// An empty sitemap has no lastmod either.
	if len(warns) != 1 || warns[0].Code != "SITEMAP004" {
		t.Errorf("warnings = %v, want one SITEMAP004", codes(warns))
	}
}

func TestValidateSitemapRelativeURL(t *testing.T) {
	content := strings.Replace(goodSitemap,
		"<loc>https://example.com/about</loc>", "<loc>/about</loc>", 1)

	errs, _ := ValidateSitemap(content, "public/sitemap.xml")
	if len(errs) != 1 {
		t.Fatalf("got %v, want one error", codes(errs))
	}

	e := errs[0]
	if e.Code != "SITEMAP003" {
		t.Errorf("code = %s", e.Code)
	}
	if e.Current != "/about" {
		t.Errorf("current = %q, want /about", e.Current)
	}
	if e.Element != "<loc>/about</loc>" {
		t.Errorf("element = %q", e.Element)
	}
	if e.Line != 8 {
		t.Errorf("line = %d, want 8", e.Line)
	}
	if e.Rule != "Sitemap URLs must be absolute" {
		t.Errorf("rule = %q", e.Rule)
	}
}

func TestValidateSitemapLongRelativeURLTruncated(t *testing.T) {
	longPath := "/" + strings.Repeat("p", 60)
	content := strings.Replace(goodSitemap,
		"<loc>https://example.com/about</loc>", "<loc>"+longPath+"</loc>", 1)

	errs, _ := ValidateSitemap(content, "public/sitemap.xml")
	if len(errs) != 1 {
		t.Fatalf("got %v, want one error", codes(errs))
	}
	wantElement := "<loc>" + longPath[:50] + "...</loc>"
	if errs[0].Element != wantElement {
		t.Errorf("element = %q, want %q", errs[0].Element, wantElement)
	}
	if errs[0].Current != longPath {
		t.Errorf("current must carry the full URL, got %q", errs[0].Current)
	}
}

func TestValidateSitemapLastmodWarning(t *testing.T) {
	content := strings.ReplaceAll(goodSitemap, "    <lastmod>2026-01-22</lastmod>\n", "")

	errs, warns := ValidateSitemap(content, "public/sitemap.xml")
	if len(errs) != 0 {
		t.Errorf("errors = %v, want none", codes(errs))
	}
	if len(warns) != 1 || warns[0].Code != "SITEMAP004" {
		t.Fatalf("warnings = %v, want one SITEMAP004", codes(warns))
	}
	if warns[0].Severity != report.SeverityWarning {
		t.Errorf("severity = %s", warns[0].Severity)
	}
}
