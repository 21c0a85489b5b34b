// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codeparse extracts declarations and their relationships from
// source code. Go sources are parsed with the go/ast toolchain; other
// languages use per-language pattern tables.
package codeparse

import (
	"path/filepath"
	"strings"
)

// Entity is a declaration found in source code.
type Entity struct {
	Name   string
	Kind   string
	File   string
	Line   int
	Parent string
	Doc    string
}

// Relation is a directed relationship between two declarations.
type Relation struct {
	Source string
	Target string
	Kind   string
	File   string
	Line   int
}

// Entity kinds produced by the parsers.
const (
	KindPackage  = "package"
	KindClass    = "class"
	KindType     = "type"
	KindFunc     = "func"
	KindMethod   = "method"
	KindVar      = "var"
	KindImport   = "import"
	KindInclude  = "include"
	KindFunction = "function"
)

// Relation kinds produced by the parsers.
const (
	RelContains = "contains"
	RelImports  = "imports"
	RelCalls    = "calls"
	RelEmbeds   = "embeds"
	RelExtends  = "extends"
)

// extLanguages maps file extensions to language names.
var extLanguages = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "javascript",
	".jsx":  "javascript",
	".tsx":  "javascript",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".c":    "cpp",
	".h":    "cpp",
	".go":   "go",
}

// DetectLanguage identifies the language from the file extension when a
// path is given, falling back to content heuristics.
func DetectLanguage(code, path string) string {
	if path != "" {
		if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
			return lang
		}
	}

	switch {
	case strings.Contains(code, "func ") && strings.Contains(code, "package "):
		return "go"
	case strings.Contains(code, "def ") && strings.Contains(code, ":"):
		return "python"
	case strings.Contains(code, "function ") || strings.Contains(code, "=>"):
		return "javascript"
	case strings.Contains(code, "public class") || strings.Contains(code, "private class"):
		return "java"
	case strings.Contains(code, "#include"):
		return "cpp"
	}
	return "generic"
}

// Parse extracts entities and relationships from source code, dispatching
// on the detected language. A Go file that fails to parse degrades to the
// pattern table instead of returning an error, so one broken file cannot
// abort a directory run.
func Parse(code, path string) ([]Entity, []Relation) {
	lang := DetectLanguage(code, path)

	if lang == "go" {
		entities, relations, err := parseGo(code, path)
		if err == nil {
			return entities, relations
		}
	}

	return parsePatterns(code, path, lang)
}
