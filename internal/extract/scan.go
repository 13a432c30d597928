package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Element-scan patterns for the performance and link-text checks. These scan
// attribute blobs rather than parsing markup; attribute presence is tested
// with word-boundary anchors so "width=" never matches "data-width-hint".
var (
	imgTagRegex = regexp.MustCompile(`(?is)<img\s+([^>]*)/?>`)

	// Component-style image elements (Image/Img/Picture) are matched
	// case-sensitively: component names are capitalized, and a
	// case-insensitive match would re-report every literal <img> tag.
	componentImgRegex = regexp.MustCompile(`(?s)<(Image|Img|Picture)\s+([^>]*)/?>`)

	srcAttrRegex          = regexp.MustCompile(`src=["']([^"']*)["']`)
	componentSrcAttrRegex = regexp.MustCompile(`src=\{?["']?([^"'}\s]*)["']?\}?`)

	fontFaceRegex = regexp.MustCompile(`(?is)@font-face\s*\{([^}]*)\}`)
	fontURLRegex  = regexp.MustCompile(`(?i)url\(["']?([^"')\s]+\.(?:woff2?|ttf|otf))["']?\)`)

	scriptSrcRegex = regexp.MustCompile(`(?i)<script\s+([^>]*)src=["']([^"']*)["']([^>]*)>`)

	anchorTextRegex = regexp.MustCompile(`(?i)<(?:a|Link|NavLink)\s[^>]*>([^<]+)</(?:a|Link|NavLink)>`)
)

// ImageTag is one located image element with its raw attribute text.
type ImageTag struct {
	// Component is the element name for component-style images
	// (Image, Img, Picture); empty for literal <img> tags.
	Component string
	Src       string
	Attrs     string
	Line      int
}

// HasAttr reports whether the attribute blob declares the named attribute.
func (t ImageTag) HasAttr(name string) bool {
	re, err := regexp.Compile(fmt.Sprintf(`(?i)\b%s\s*=`, regexp.QuoteMeta(name)))
	if err != nil {
		return false
	}
	return re.MatchString(t.Attrs)
}

// ImageTags returns every literal <img> element in source order.
func ImageTags(content string) []ImageTag {
	var tags []ImageTag
	for _, loc := range imgTagRegex.FindAllStringSubmatchIndex(content, -1) {
		attrs := content[loc[2]:loc[3]]
		tags = append(tags, ImageTag{
			Src:   attrValue(srcAttrRegex, attrs),
			Attrs: attrs,
			Line:  LineAt(content, loc[0]),
		})
	}
	return tags
}

// ComponentImageTags returns every component-style image element
// (<Image .../>, <Img .../>, <Picture .../>) in source order.
func ComponentImageTags(content string) []ImageTag {
	var tags []ImageTag
	for _, loc := range componentImgRegex.FindAllStringSubmatchIndex(content, -1) {
		attrs := content[loc[4]:loc[5]]
		tags = append(tags, ImageTag{
			Component: content[loc[2]:loc[3]],
			Src:       attrValue(componentSrcAttrRegex, attrs),
			Attrs:     attrs,
			Line:      LineAt(content, loc[0]),
		})
	}
	return tags
}

// FontFaceBlocks returns the body of each @font-face rule with its line.
func FontFaceBlocks(content string) []Block {
	var blocks []Block
	for _, loc := range fontFaceRegex.FindAllStringSubmatchIndex(content, -1) {
		blocks = append(blocks, Block{
			Raw:  content[loc[2]:loc[3]],
			Line: LineAt(content, loc[0]),
		})
	}
	return blocks
}

// FontURL is one font file referenced from a CSS url() expression.
type FontURL struct {
	URL  string
	Line int
}

// FontURLs returns every woff/woff2/ttf/otf url() reference in source order.
func FontURLs(content string) []FontURL {
	var urls []FontURL
	for _, loc := range fontURLRegex.FindAllStringSubmatchIndex(content, -1) {
		urls = append(urls, FontURL{
			URL:  content[loc[2]:loc[3]],
			Line: LineAt(content, loc[0]),
		})
	}
	return urls
}

// ScriptTag is one script element with an external source.
type ScriptTag struct {
	Src string
	// Attrs is the attribute text surrounding src (before and after).
	Attrs string
	Line  int
}

// ExternalScripts returns every <script src="..."> element in source order.
func ExternalScripts(content string) []ScriptTag {
	var tags []ScriptTag
	for _, loc := range scriptSrcRegex.FindAllStringSubmatchIndex(content, -1) {
		tags = append(tags, ScriptTag{
			Src:   content[loc[4]:loc[5]],
			Attrs: content[loc[2]:loc[3]] + content[loc[6]:loc[7]],
			Line:  LineAt(content, loc[0]),
		})
	}
	return tags
}

// AnchorText is the inner text of one anchor-like element (<a>, <Link>,
// <NavLink>) found on a single source line.
type AnchorText struct {
	Text string
	Line int
}

// AnchorTexts scans line-by-line for anchor-like elements and returns their
// trimmed inner text. Line-by-line scanning keeps each match tied to its
// exact line; anchors spanning lines are out of reach for this heuristic.
func AnchorTexts(content string) []AnchorText {
	var anchors []AnchorText
	for i, line := range strings.Split(content, "\n") {
		for _, m := range anchorTextRegex.FindAllStringSubmatch(line, -1) {
			anchors = append(anchors, AnchorText{
				Text: strings.TrimSpace(m[1]),
				Line: i + 1,
			})
		}
	}
	return anchors
}

func attrValue(re *regexp.Regexp, attrs string) string {
	if m := re.FindStringSubmatch(attrs); m != nil {
		return m[1]
	}
	return "unknown"
}
