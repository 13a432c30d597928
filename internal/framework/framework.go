// Package framework infers which templating dialect produced a source file.
//
// The same semantic construct (a page title, a canonical link) is expressed
// differently across dialects, so rule catalogs consult the classifier before
// deciding that a literal-extraction miss is a real defect. Classification is
// pure derived data: recomputed per call, never persisted.
package framework

import (
	"regexp"
	"strings"
)

// Framework identifies a templating dialect. The set is closed; files that
// match no signal classify as the default, Vite.
type Framework string

const (
	Astro     Framework = "astro"
	NextJS    Framework = "nextjs"
	TanStack  Framework = "tanstack"
	Nuxt      Framework = "nuxt"
	SvelteKit Framework = "sveltekit"
	// Vite is the default dialect (plain React/JSX conventions).
	Vite Framework = "vite"
)

// signals pairs a framework with its detection signals. Path signals are
// lowercase fragments matched against the lowercased file path; content
// signals are patterns matched against file text.
type signals struct {
	framework Framework
	paths     []string
	content   []*regexp.Regexp
}

// detectionOrder is a slice, not a map: declaration order must be stable
// across runs so a file matching two dialects' signals always classifies the
// same way. Path signals for all dialects are checked before any content
// signal.
var detectionOrder = []signals{
	{
		framework: Astro,
		paths:     []string{".astro"},
		content: compile(
			`---[\s\S]*?---`,
			`Astro\.props`,
			`<slot\s*/?>`,
		),
	},
	{
		framework: NextJS,
		paths:     []string{"_app.tsx", "_app.jsx", "layout.tsx", "layout.jsx", "page.tsx", "page.jsx"},
		content: compile(
			`next/head`,
			`next/image`,
			`getServerSideProps`,
			`getStaticProps`,
			`metadata\s*=`,
		),
	},
	{
		framework: TanStack,
		paths:     []string{"__root.tsx", "root.tsx", "routetree.gen.ts"},
		content: compile(
			`createFileRoute`,
			`createRootRoute`,
			`@tanstack/react-router`,
		),
	},
	{
		framework: Nuxt,
		paths:     []string{".vue", "nuxt.config"},
		content: compile(
			`useHead\(`,
			`useSeoMeta\(`,
			`defineNuxtConfig`,
		),
	},
	{
		framework: SvelteKit,
		paths:     []string{".svelte", "svelte.config"},
		content: compile(
			`<svelte:head>`,
			`\$app/`,
		),
	},
	{
		framework: Vite,
		paths:     []string{".tsx", ".jsx"},
		content: compile(
			`react-helmet`,
			`@vitejs/plugin-react`,
		),
	},
}

// Detect classifies a file. Path signals take priority over content signals;
// content is only consulted when no path signal hits, and may be empty.
func Detect(filePath, content string) Framework {
	pathLower := strings.ToLower(filePath)

	for _, s := range detectionOrder {
		for _, fragment := range s.paths {
			if strings.Contains(pathLower, fragment) {
				return s.framework
			}
		}
	}

	if content != "" {
		for _, s := range detectionOrder {
			for _, re := range s.content {
				if re.MatchString(content) {
					return s.framework
				}
			}
		}
	}

	return Vite
}

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}
