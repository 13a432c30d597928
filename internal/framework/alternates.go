package framework

import "regexp"

// Requirement names a logical meta requirement that a dialect may express
// through a non-literal construct (a templating expression instead of a
// literal tag). Catalogs consult HasAlternate only after the canonical
// literal pattern misses; a hit there means the miss is not a defect.
type Requirement string

const (
	ReqTitle       Requirement = "title"
	ReqDescription Requirement = "description"
	ReqCanonical   Requirement = "canonical"
	ReqOpenGraph   Requirement = "opengraph"
	ReqTwitterCard Requirement = "twittercard"
)

// alternates maps requirement -> dialect -> ordered alternate-detection
// patterns. Keeping the dialect branching in one declarative table keeps the
// rule logic dialect-agnostic. Patterns run with (?is): dialect constructs
// routinely span lines.
var alternates = map[Requirement]map[Framework][]*regexp.Regexp{
	ReqTitle: {
		Astro:     compileAlt(`title\s*[=:]\s*[{"'` + "`" + `]`, `<title\s+set:html`),
		NextJS:    compileAlt(`metadata\s*[=:][^}]*title`, `generateMetadata`),
		TanStack:  compileAlt(`createRootRoute[^}]*head[^}]*title`),
		Nuxt:      compileAlt(`useHead\([^)]*title`, `useSeoMeta\([^)]*title`),
		SvelteKit: compileAlt(`<svelte:head>[^<]*<title`),
		Vite:      compileAlt(`Helmet[^>]*>[^<]*title`, `<title>`),
	},
	ReqDescription: {
		Astro:    compileAlt(`description\s*[=:]\s*[{"'` + "`" + `]`),
		NextJS:   compileAlt(`metadata\s*[=:][^}]*description`, `generateMetadata`),
		TanStack: compileAlt(`createRootRoute[^}]*head[^}]*meta[^}]*description`),
		Nuxt:     compileAlt(`useHead\([^)]*description`, `useSeoMeta\([^)]*description`),
	},
	ReqCanonical: {
		Astro:  compileAlt(`canonical\s*[=:]`),
		NextJS: compileAlt(`alternates\s*[=:][^}]*canonical`, `metadataBase`),
		Nuxt:   compileAlt(`useHead\([^)]*link[^)]*canonical`),
	},
	ReqOpenGraph: {
		Astro:  compileAlt(`og\s*[=:]\s*\{`, `openGraph\s*[=:]`),
		NextJS: compileAlt(`openGraph\s*[=:]`),
		Nuxt:   compileAlt(`useSeoMeta\([^)]*og`),
	},
	ReqTwitterCard: {
		Astro:  compileAlt(`twitter\s*[=:]\s*\{`),
		NextJS: compileAlt(`twitter\s*[=:]`),
		Nuxt:   compileAlt(`useSeoMeta\([^)]*twitter`),
	},
}

// HasAlternate reports whether content expresses the requirement through the
// dialect's alternate construct. A dialect with no alternates for a
// requirement gets none, except the title requirement which falls back to
// the default dialect's patterns (every page expresses a title somehow).
func HasAlternate(fw Framework, req Requirement, content string) bool {
	table, ok := alternates[req]
	if !ok {
		return false
	}

	patterns, ok := table[fw]
	if !ok && req == ReqTitle {
		patterns = table[Vite]
	}

	for _, re := range patterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

func compileAlt(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(`(?is)`+p))
	}
	return res
}
