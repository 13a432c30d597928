// Package extract locates fragments (tag bodies, attribute values, embedded
// structured-data blocks) inside raw, possibly templated file content using
// anchored pattern search, and attributes each hit to a best-effort 1-based
// source line.
//
// All structural pattern tables live behind this package so a future swap to
// a real parser touches one component only. Matching is deliberately
// lightweight: non-greedy, case-insensitive, never panics on malformed
// markup. Nested same-named tags are not supported; extraction returns the
// first closing delimiter. That is a documented limitation, not a defect.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// jsonldScriptRegex matches embedding containers for structured data,
// capturing the raw inner text. Non-greedy so adjacent blocks stay separate.
var jsonldScriptRegex = regexp.MustCompile(`(?is)<script[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)

// TagContent returns the trimmed inner text of the first non-self-closing
// occurrence of <tag ...>content</tag> (case-insensitive), plus the 1-based
// line of the opening delimiter. found is false when no such tag exists;
// absence is a valid result, not an error.
func TagContent(content, tag string) (value string, line int, found bool) {
	pattern := fmt.Sprintf(`(?i)<%s[^>]*>([^<]*)</%s>`, regexp.QuoteMeta(tag), regexp.QuoteMeta(tag))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", 0, false
	}

	loc := re.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", 0, false
	}

	value = strings.TrimSpace(content[loc[2]:loc[3]])
	return value, LineAt(content, loc[0]), true
}

// MetaContent returns the content attribute of the first meta tag whose
// key attribute (attr, typically "name" or "property") equals name.
//
// Attribute pairs are matched in either order (key-before-content and
// content-before-key) because source markup does not order attributes
// consistently. First match wins.
func MetaContent(content, name, attr string) (value string, line int, found bool) {
	qname := regexp.QuoteMeta(name)
	qattr := regexp.QuoteMeta(attr)

	patterns := []string{
		fmt.Sprintf(`(?i)<meta[^>]*%s=["']?%s["']?[^>]*content=["']([^"']*)["']`, qattr, qname),
		fmt.Sprintf(`(?i)<meta[^>]*content=["']([^"']*)["'][^>]*%s=["']?%s["']?`, qattr, qname),
	}

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		loc := re.FindStringSubmatchIndex(content)
		if loc == nil {
			continue
		}
		return strings.TrimSpace(content[loc[2]:loc[3]]), LineAt(content, loc[0]), true
	}

	return "", 0, false
}

// Block is a located embedded structured-data fragment: its raw inner text
// and the 1-based line where its container opens.
type Block struct {
	Raw  string
	Line int
}

// JSONLDBlocks returns every embedded structured-data block in source order.
// If no embedding container exists but the whole file's trimmed content
// begins with "{", the file itself is treated as one candidate block: a file
// that is a pure data document rather than markup.
func JSONLDBlocks(content string) []Block {
	var blocks []Block

	for _, loc := range jsonldScriptRegex.FindAllStringSubmatchIndex(content, -1) {
		blocks = append(blocks, Block{
			Raw:  strings.TrimSpace(content[loc[2]:loc[3]]),
			Line: LineAt(content, loc[0]),
		})
	}

	if len(blocks) == 0 {
		if trimmed := strings.TrimSpace(content); strings.HasPrefix(trimmed, "{") {
			blocks = append(blocks, Block{Raw: trimmed, Line: 1})
		}
	}

	return blocks
}

// FindLine returns the 1-based number of the first line containing search
// (case-insensitive substring), or 0 when absent.
func FindLine(content, search string) int {
	searchLower := strings.ToLower(search)
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), searchLower) {
			return i + 1
		}
	}
	return 0
}

// HeadLine returns the line of the <head> opening tag, or 0.
func HeadLine(content string) int {
	return FindLine(content, "<head")
}

// LineAt converts a byte offset into a 1-based line number.
func LineAt(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return strings.Count(content[:offset], "\n") + 1
}
