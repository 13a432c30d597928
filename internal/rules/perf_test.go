package rules

import (
	"strings"
	"testing"

	"github.com/seolint/seolint/internal/report"
)

func TestValidatePerfCleanMetaFilePasses(t *testing.T) {
	content := `<head>
  <meta name="theme-color" content="#ffffff">
  <script defer src="/app.js"></script>
</head>
<img src="/photo.webp" width="800" height="600" alt="A photo" loading="lazy">`

	errs, warns := ValidatePerf(content, "src/layouts/Base.astro")
	if len(errs) != 0 || len(warns) != 0 {
		t.Errorf("got errors %v, warnings %v; want none", codes(errs), codes(warns))
	}
}

func TestValidatePerfBareImage(t *testing.T) {
	content := "line1\n" + `<img src="/photo.jpg">`

	errs, warns := ValidatePerf(content, "src/components/Gallery.tsx")

	if len(errs) != 2 {
		t.Fatalf("errors = %v, want PERF001 and PERF002", codes(errs))
	}
	dims, alt := errs[0], errs[1]
	if dims.Code != "PERF001" || alt.Code != "PERF002" {
		t.Fatalf("codes = %v", codes(errs))
	}
	if dims.Element != `<img src="/photo.jpg...">` {
		t.Errorf("element = %q", dims.Element)
	}
	if dims.Current != "Missing width/height" {
		t.Errorf("current = %q", dims.Current)
	}
	if dims.Fix != `Add width and height attributes to <img src="/photo.jpg..."> to prevent CLS.` {
		t.Errorf("fix = %q", dims.Fix)
	}
	if dims.Line != 2 {
		t.Errorf("line = %d, want 2", dims.Line)
	}
	if alt.Current != "Missing alt" {
		t.Errorf("alt current = %q", alt.Current)
	}

	if len(warns) != 2 {
		t.Fatalf("warnings = %v, want PERF003 and PERF004", codes(warns))
	}
	if warns[0].Code != "PERF003" || warns[0].Current != "No loading attribute" {
		t.Errorf("lazy warning = %+v", warns[0])
	}
	if warns[1].Code != "PERF004" || warns[1].Current != "jpg" {
		t.Errorf("format warning = %+v", warns[1])
	}
}

func TestValidatePerfHeroImageSkipsLazyAdvisory(t *testing.T) {
	content := `<img src="/banner.webp" width="1200" height="400" alt="Banner" class="hero">`

	errs, warns := ValidatePerf(content, "src/components/Gallery.tsx")
	if len(errs) != 0 {
		t.Errorf("errors = %v, want none", codes(errs))
	}
	if hasCode(warns, "PERF003") {
		t.Error("hero-marked images must not get the lazy-loading advisory")
	}
}

func TestValidatePerfAttrMatchUsesWordBoundary(t *testing.T) {
	content := `<img src="/x.webp" data-width-hint="800" height="1" alt="x" loading="lazy">`

	errs, _ := ValidatePerf(content, "src/components/Gallery.tsx")
	if !hasCode(errs, "PERF001") {
		t.Errorf("data-width-hint must not satisfy the width check, got %v", codes(errs))
	}
}

func TestValidatePerfComponentImageAltOnly(t *testing.T) {
	content := `<Image src="/pic.webp" width={100} height={100} />`

	errs, warns := ValidatePerf(content, "src/components/Gallery.tsx")

	// Component images manage dimensions and loading themselves.
	if len(warns) != 0 {
		t.Errorf("warnings = %v, want none", codes(warns))
	}
	if len(errs) != 1 || errs[0].Code != "PERF002" {
		t.Fatalf("errors = %v, want one PERF002", codes(errs))
	}
	if errs[0].Element != `<img src="Image: /pic.webp...">` {
		t.Errorf("element = %q", errs[0].Element)
	}
}

func TestValidatePerfComponentImageWithAltPasses(t *testing.T) {
	content := `<Image src="/pic.webp" alt="A picture" width={100} height={100} />`

	errs, _ := ValidatePerf(content, "src/components/Gallery.tsx")
	if len(errs) != 0 {
		t.Errorf("errors = %v, want none", codes(errs))
	}
}

func TestValidatePerfFontDisplay(t *testing.T) {
	content := `body { margin: 0; }
@font-face {
  font-family: "Inter";
  src: url("/fonts/inter.woff2") format("woff2");
}`

	errs, _ := ValidatePerf(content, "src/styles/fonts.css")
	if len(errs) != 1 || errs[0].Code != "PERF006" {
		t.Fatalf("errors = %v, want one PERF006", codes(errs))
	}
	if errs[0].Line != 2 {
		t.Errorf("line = %d, want 2", errs[0].Line)
	}
	if errs[0].Severity != report.SeverityError {
		t.Errorf("severity = %s", errs[0].Severity)
	}

	fixed := strings.Replace(content, `format("woff2");`, `format("woff2");
  font-display: swap;`, 1)
	errs, _ = ValidatePerf(fixed, "src/styles/fonts.css")
	if len(errs) != 0 {
		t.Errorf("errors after fix = %v, want none", codes(errs))
	}
}

func TestValidatePerfFontDisplayOnlyCheckedInStylesheets(t *testing.T) {
	content := `<style>@font-face { font-family: "Inter"; src: url("/fonts/inter.woff2"); }</style>
<meta name="theme-color" content="#fff">`

	errs, _ := ValidatePerf(content, "src/components/Gallery.tsx")
	if hasCode(errs, "PERF006") {
		t.Errorf("font-display check must be scoped to .css files, got %v", codes(errs))
	}
}

func TestValidatePerfFontPreloadAdvisory(t *testing.T) {
	content := `<head>
  <meta name="theme-color" content="#fff">
  <style>@font-face { src: url('/fonts/inter.woff2'); font-display: swap; }</style>
</head>`

	_, warns := ValidatePerf(content, "src/layouts/Base.astro")
	if len(warns) != 1 || warns[0].Code != "PERF005" {
		t.Fatalf("warnings = %v, want one PERF005", codes(warns))
	}
	if warns[0].Current != "Font not preloaded: /fonts/inter.woff2..." {
		t.Errorf("current = %q", warns[0].Current)
	}
	if !strings.Contains(warns[0].Fix, `href="/fonts/inter.woff2"`) {
		t.Errorf("fix = %q", warns[0].Fix)
	}
}

func TestValidatePerfPreloadedFontPasses(t *testing.T) {
	content := `<head>
  <meta name="theme-color" content="#fff">
  <link rel="preload" href="/fonts/inter.woff2" as="font" type="font/woff2" crossorigin>
  <style>@font-face { src: url('/fonts/inter.woff2'); font-display: swap; }</style>
</head>`

	_, warns := ValidatePerf(content, "src/layouts/Base.astro")
	if hasCode(warns, "PERF005") {
		t.Errorf("preloaded font still flagged: %v", codes(warns))
	}
}

func TestValidatePerfRenderBlockingScript(t *testing.T) {
	content := `<head>
  <meta name="theme-color" content="#fff">
  <script src="/vendor/analytics.js"></script>
</head>`

	_, warns := ValidatePerf(content, "src/layouts/Base.astro")
	if len(warns) != 1 || warns[0].Code != "PERF007" {
		t.Fatalf("warnings = %v, want one PERF007", codes(warns))
	}
	if warns[0].Current != "/vendor/analytics.js" {
		t.Errorf("current = %q", warns[0].Current)
	}
	if warns[0].Line != 3 {
		t.Errorf("line = %d, want 3", warns[0].Line)
	}
}

func TestValidatePerfDeferredScriptsPass(t *testing.T) {
	for _, attrs := range []string{"defer ", "async ", `type="module" `} {
		content := `<head>
  <meta name="theme-color" content="#fff">
  <script ` + attrs + `src="/app.js"></script>
</head>`

		_, warns := ValidatePerf(content, "src/layouts/Base.astro")
		if hasCode(warns, "PERF007") {
			t.Errorf("%q script still flagged: %v", attrs, codes(warns))
		}
	}
}

func TestValidatePerfThemeColorMissing(t *testing.T) {
	content := "<head>\n</head>"

	_, warns := ValidatePerf(content, "src/layouts/Base.astro")
	if len(warns) != 1 || warns[0].Code != "PERF008" {
		t.Fatalf("warnings = %v, want one PERF008", codes(warns))
	}
	if warns[0].Line != 0 {
		t.Errorf("line = %d, want 0", warns[0].Line)
	}
}

func TestValidatePerfHeadChecksSkipNonMetaFiles(t *testing.T) {
	content := `<script src="/app.js"></script>`

	errs, warns := ValidatePerf(content, "src/components/Card.tsx")
	if len(errs) != 0 || len(warns) != 0 {
		t.Errorf("head-owning checks leaked into a component file: %v %v", codes(errs), codes(warns))
	}
}
