package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seolint/seolint/internal/extract"
	"github.com/seolint/seolint/internal/report"
	"github.com/seolint/seolint/pkg/seolint"
)

// legacyImageFormats are the raster formats PERF004 flags; modern formats
// (webp, avif) and vector/animated sources pass without comment.
var legacyImageFormats = []string{".jpg", ".jpeg", ".png"}

// heroAttrMarkers exempt an image from the lazy-loading advisory: anything in
// its attribute text suggesting above-the-fold placement.
var heroAttrMarkers = []string{"hero", "banner", "logo", "above"}

var (
	asyncAttrRegex  = regexp.MustCompile(`(?i)\basync\b`)
	deferAttrRegex  = regexp.MustCompile(`(?i)\bdefer\b`)
	moduleTypeRegex = regexp.MustCompile(`(?i)type=["']module["']`)
)

var perfSpecs = map[string]ruleSpec{
	"PERF001": {
		code: "PERF001", severity: report.SeverityError,
		rule:     "Images must have width and height attributes",
		expected: `<img src="..." width="..." height="...">`,
	},
	"PERF002": {
		code: "PERF002", severity: report.SeverityError,
		rule:     "Images must have alt attribute for accessibility",
		expected: `<img src="..." alt="Description">`,
	},
	"PERF003": {
		code: "PERF003", severity: report.SeverityWarning,
		rule:     "Below-fold images should use lazy loading",
		expected: `<img src="..." loading="lazy">`,
		fix:      `Add loading="lazy" to below-fold images for better LCP.`,
	},
	"PERF004": {
		code: "PERF004", severity: report.SeverityWarning,
		rule:     "Images should use modern formats (WebP/AVIF)",
		expected: ".webp or .avif format",
		fix:      "Convert image to WebP/AVIF format, or use <picture> with multiple sources.",
	},
	"PERF005": {
		code: "PERF005", severity: report.SeverityWarning,
		element:  `<link rel="preload">`,
		rule:     "Critical fonts should be preloaded",
		expected: `<link rel="preload" href="..." as="font" type="font/woff2" crossorigin>`,
	},
	"PERF006": {
		code: "PERF006", severity: report.SeverityError,
		element:  "@font-face",
		rule:     "@font-face must have font-display property",
		expected: "font-display: swap;",
		fix:      "Add 'font-display: swap;' to @font-face rule to prevent FOIT.",
	},
	"PERF007": {
		code: "PERF007", severity: report.SeverityWarning,
		element:  "<script/link>",
		rule:     "Render-blocking resources should be deferred/async",
		expected: `<script defer> or <link rel="preload">`,
		fix:      "Add 'defer' or 'async' to script, or preload critical CSS.",
	},
	"PERF008": {
		code: "PERF008", severity: report.SeverityWarning,
		element:  `<meta name="theme-color">`,
		rule:     "Page should have theme-color for mobile browsers",
		expected: `<meta name="theme-color" content="#ffffff">`,
		fix:      `Add <meta name="theme-color" content="#YOUR_COLOR"> inside <head>.`,
	},
}

func perfSpec(code string) ruleSpec { return perfSpecs[code] }

// ValidatePerf runs the performance checks: image hygiene everywhere,
// @font-face rules in stylesheets, and preload/render-blocking/theme-color
// checks only in head-owning (meta) files.
func ValidatePerf(content, filePath string) (errs, warns []report.ValidationError) {
	e, w := validateImages(content, filePath)
	errs = append(errs, e...)
	warns = append(warns, w...)

	if strings.HasSuffix(strings.ToLower(filePath), ".css") {
		for _, block := range extract.FontFaceBlocks(content) {
			if !strings.Contains(strings.ToLower(block.Raw), "font-display") {
				errs = append(errs, perfSpec("PERF006").at(filePath, block.Line))
			}
		}
	}

	e, w = validatePreloads(content, filePath)
	errs = append(errs, e...)
	warns = append(warns, w...)

	if IsMetaFile(filePath) {
		if !strings.Contains(content, `name="theme-color"`) && !strings.Contains(content, "name='theme-color'") {
			warns = append(warns, perfSpec("PERF008").at(filePath, 0))
		}
	}

	return errs, warns
}

func validateImages(content, filePath string) (errs, warns []report.ValidationError) {
	for _, img := range extract.ImageTags(content) {
		if !img.HasAttr("width") || !img.HasAttr("height") {
			e := perfSpec("PERF001").at(filePath, img.Line)
			e.Element = imgLabel(img.Src)
			e.Current = "Missing width/height"
			e.Fix = fmt.Sprintf(`Add width and height attributes to %s to prevent CLS.`, imgLabel(img.Src))
			errs = append(errs, e)
		}

		if !img.HasAttr("alt") {
			errs = append(errs, imgAltError(filePath, img.Src, img.Line))
		}

		if !img.HasAttr("loading") && !containsAny(strings.ToLower(img.Attrs), heroAttrMarkers) {
			w := perfSpec("PERF003").at(filePath, img.Line)
			w.Element = imgLabel(img.Src)
			w.Current = "No loading attribute"
			warns = append(warns, w)
		}

		if isLegacyImageFormat(img.Src) {
			w := perfSpec("PERF004").at(filePath, img.Line)
			w.Element = imgLabel(img.Src)
			w.Current = imageExtension(img.Src)
			warns = append(warns, w)
		}
	}

	// Component-style images manage dimensions and loading themselves, but
	// alt text is still on the author.
	for _, img := range extract.ComponentImageTags(content) {
		if !img.HasAttr("alt") {
			errs = append(errs, imgAltError(filePath, img.Component+": "+img.Src, img.Line))
		}
	}

	return errs, warns
}

func validatePreloads(content, filePath string) (errs, warns []report.ValidationError) {
	// Preload and render-blocking checks only apply to files owning a
	// document head.
	if !IsMetaFile(filePath) {
		return nil, nil
	}

	for _, font := range extract.FontURLs(content) {
		if strings.Contains(content, `href="`+font.URL+`"`) ||
			strings.Contains(content, "href='"+font.URL+"'") {
			continue
		}
		if strings.Contains(content, `rel="preload"`) && strings.Contains(content, font.URL) {
			continue
		}
		w := perfSpec("PERF005").at(filePath, font.Line)
		w.Current = fmt.Sprintf("Font not preloaded: %s...", preview(font.URL, seolint.MaxElementPreviewLength))
		w.Fix = fmt.Sprintf(`Add font preload: <link rel="preload" href="%s" as="font" type="font/woff2" crossorigin>.`, font.URL)
		warns = append(warns, w)
	}

	for _, script := range extract.ExternalScripts(content) {
		if asyncAttrRegex.MatchString(script.Attrs) ||
			deferAttrRegex.MatchString(script.Attrs) ||
			moduleTypeRegex.MatchString(script.Attrs) {
			continue
		}
		w := perfSpec("PERF007").at(filePath, script.Line)
		w.Current = preview(script.Src, 50)
		warns = append(warns, w)
	}

	return errs, warns
}

func imgAltError(filePath, src string, line int) report.ValidationError {
	e := perfSpec("PERF002").at(filePath, line)
	e.Element = imgLabel(src)
	e.Current = "Missing alt"
	e.Fix = fmt.Sprintf("Add descriptive alt attribute to %s.", imgLabel(src))
	return e
}

// imgLabel renders the element label for an image defect. The source is
// always truncated with a trailing ellipsis, even when short, so labels stay
// uniform across a report.
func imgLabel(src string) string {
	return fmt.Sprintf(`<img src="%s...">`, preview(src, seolint.MaxElementPreviewLength))
}

func isLegacyImageFormat(src string) bool {
	if src == "" {
		return false
	}
	srcLower := strings.ToLower(src)
	for _, ext := range legacyImageFormats {
		if strings.HasSuffix(srcLower, ext) {
			return true
		}
	}
	return false
}

// imageExtension is the text after the last dot, or "unknown" for
// extensionless sources.
func imageExtension(src string) string {
	if i := strings.LastIndex(src, "."); i >= 0 {
		return src[i+1:]
	}
	return "unknown"
}
