// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codeparse

import (
	"regexp"
	"strings"
)

// capture pairs an entity kind with the regexp that finds declarations of
// that kind. The first non-empty submatch is the entity name.
type capture struct {
	kind string
	re   *regexp.Regexp
}

// languageTables holds the declaration patterns per language. The tables
// cover class-like, function-like, and import-like declarations; language
// particulars (inheritance clauses, arrow functions) are handled by the
// extra extractors below.
var languageTables = map[string][]capture{
	"python": {
		{KindClass, regexp.MustCompile(`class\s+(\w+)`)},
		{KindFunction, regexp.MustCompile(`def\s+(\w+)`)},
		{KindImport, regexp.MustCompile(`import\s+(\w+)|from\s+(\w+)\s+import`)},
	},
	"javascript": {
		{KindClass, regexp.MustCompile(`class\s+(\w+)`)},
		{KindFunction, regexp.MustCompile(`(?:async\s+)?function\s+(\w+)\s*\(`)},
		{KindImport, regexp.MustCompile(`import\s+.*?from\s+['"]([^'"]+)['"]|require\(['"]([^'"]+)['"]\)`)},
	},
	"java": {
		{KindClass, regexp.MustCompile(`(?:public|private|protected)?\s*class\s+(\w+)`)},
		{KindFunction, regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?\w+\s+(\w+)\s*\(`)},
		{KindImport, regexp.MustCompile(`import\s+([\w.]+)`)},
	},
	"cpp": {
		{KindClass, regexp.MustCompile(`class\s+(\w+)`)},
		{KindFunction, regexp.MustCompile(`\w+\s+(\w+)\s*\([^)]*\)\s*\{`)},
		{KindInclude, regexp.MustCompile(`#include\s*[<"]([^>"]+)[>"]`)},
	},
	"go": {
		{KindType, regexp.MustCompile(`type\s+(\w+)\s+struct`)},
		{KindFunc, regexp.MustCompile(`func\s+(?:\([^)]+\)\s+)?(\w+)\s*\(`)},
		{KindImport, regexp.MustCompile(`import\s+["']([^"']+)["']`)},
	},
	"generic": {
		{KindClass, regexp.MustCompile(`class\s+(\w+)`)},
		{KindFunction, regexp.MustCompile(`function\s+(\w+)|def\s+(\w+)`)},
	},
}

var (
	pyClassBaseRE = regexp.MustCompile(`class\s+(\w+)\s*\(\s*(\w+)`)
	jsExtendsRE   = regexp.MustCompile(`class\s+(\w+)\s+extends\s+(\w+)`)
	jsArrowRE     = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`)
	jsRequireRE   = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*require\(['"]([^'"]+)['"]\)`)
)

// parsePatterns extracts entities with the language's pattern table, then
// applies the language extras. Line numbers are derived from the match
// offset.
func parsePatterns(code, path, lang string) ([]Entity, []Relation) {
	table, ok := languageTables[lang]
	if !ok {
		table = languageTables["generic"]
	}

	var entities []Entity
	var relations []Relation

	for _, c := range table {
		for _, idx := range c.re.FindAllStringSubmatchIndex(code, -1) {
			name, start := firstGroup(code, idx)
			if name == "" {
				continue
			}
			entities = append(entities, Entity{
				Name: name,
				Kind: c.kind,
				File: path,
				Line: lineAt(code, start),
			})
		}
	}

	switch lang {
	case "python":
		for _, m := range pyClassBaseRE.FindAllStringSubmatchIndex(code, -1) {
			relations = append(relations, Relation{
				Source: code[m[2]:m[3]],
				Target: code[m[4]:m[5]],
				Kind:   RelExtends,
				File:   path,
				Line:   lineAt(code, m[0]),
			})
		}
	case "javascript":
		for _, m := range jsExtendsRE.FindAllStringSubmatchIndex(code, -1) {
			relations = append(relations, Relation{
				Source: code[m[2]:m[3]],
				Target: code[m[4]:m[5]],
				Kind:   RelExtends,
				File:   path,
				Line:   lineAt(code, m[0]),
			})
		}
		for _, m := range jsArrowRE.FindAllStringSubmatchIndex(code, -1) {
			entities = append(entities, Entity{
				Name: code[m[2]:m[3]],
				Kind: KindFunction,
				File: path,
				Line: lineAt(code, m[0]),
			})
		}
		for _, m := range jsRequireRE.FindAllStringSubmatchIndex(code, -1) {
			entities = append(entities, Entity{
				Name: code[m[2]:m[3]],
				Kind: KindImport,
				File: path,
				Line: lineAt(code, m[0]),
			})
			relations = append(relations, Relation{
				Source: "module",
				Target: code[m[4]:m[5]],
				Kind:   RelImports,
				File:   path,
				Line:   lineAt(code, m[0]),
			})
		}
	}

	return entities, relations
}

// firstGroup returns the first non-empty capture group of a submatch
// index slice, with its start offset.
func firstGroup(code string, idx []int) (string, int) {
	for g := 2; g+1 < len(idx); g += 2 {
		if idx[g] >= 0 {
			return code[idx[g]:idx[g+1]], idx[g]
		}
	}
	return "", 0
}

// lineAt converts a byte offset to a 1-based line number.
func lineAt(code string, offset int) int {
	return strings.Count(code[:offset], "\n") + 1
}
