// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textparse extracts entities and relationships from prose using
// pattern matching and heuristics.
package textparse

import (
	"regexp"
	"strings"
)

// Entity is a concept mentioned in the text. Identity is case-insensitive
// on the name, so "Python" and "python" accumulate mentions on one entity.
type Entity struct {
	Name     string
	Type     string
	Mentions int
}

// Relation is a directed relationship between two entity names.
type Relation struct {
	Source string
	Target string
	Type   string
	Weight float64
}

// Entity types assigned by the pattern extractor.
const (
	TypeNoun      = "noun"
	TypeTechnical = "technical"
	TypeString    = "string"
)

// relationPattern pairs a verb-phrase regexp with the relation type it
// produces. Each pattern captures the two entity names around the verb.
type relationPattern struct {
	re   *regexp.Regexp
	kind string
}

var relationPatterns = []relationPattern{
	{regexp.MustCompile(`(?i)(\w+)\s+is\s+a\s+(\w+)`), "is_a"},
	{regexp.MustCompile(`(?i)(\w+)\s+are\s+(\w+)`), "is_a"},
	{regexp.MustCompile(`(?i)(\w+)\s+has\s+(?:a\s+)?(\w+)`), "has"},
	{regexp.MustCompile(`(?i)(\w+)\s+have\s+(?:a\s+)?(\w+)`), "has"},
	{regexp.MustCompile(`(?i)(\w+)\s+contains?\s+(\w+)`), "contains"},
	{regexp.MustCompile(`(?i)(\w+)\s+includes?\s+(\w+)`), "includes"},
	{regexp.MustCompile(`(?i)(\w+)\s+uses?\s+(\w+)`), "uses"},
	{regexp.MustCompile(`(?i)(\w+)\s+depends?\s+on\s+(\w+)`), "depends_on"},
	{regexp.MustCompile(`(?i)(\w+)\s+creates?\s+(\w+)`), "creates"},
	{regexp.MustCompile(`(?i)(\w+)\s+inherits?\s+(?:from\s+)?(\w+)`), "inherits"},
	{regexp.MustCompile(`(?i)(\w+)\s+extends?\s+(\w+)`), "extends"},
	{regexp.MustCompile(`(?i)(\w+)\s+implements?\s+(\w+)`), "implements"},
	{regexp.MustCompile(`(?i)(\w+)\s+connects?\s+(?:to\s+)?(\w+)`), "connects_to"},
	{regexp.MustCompile(`(?i)(\w+)\s+relates?\s+(?:to\s+)?(\w+)`), "relates_to"},
	{regexp.MustCompile(`(?i)(\w+)\s+belongs?\s+(?:to\s+)?(\w+)`), "belongs_to"},
	{regexp.MustCompile(`(?i)(\w+)\s+(?:is\s+)?part\s+of\s+(\w+)`), "part_of"},
	{regexp.MustCompile(`(?i)(\w+)\s+(?:is\s+)?composed\s+of\s+(\w+)`), "composed_of"},
	{regexp.MustCompile(`(?i)(\w+)\s+interacts?\s+with\s+(\w+)`), "interacts_with"},
	{regexp.MustCompile(`(?i)(\w+)\s+calls?\s+(\w+)`), "calls"},
	{regexp.MustCompile(`(?i)(\w+)\s+invokes?\s+(\w+)`), "invokes"},
}

// stopWords are filtered out of both entity and relation extraction.
var stopWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		the a an and or but in on at to for of with by from as is was are
		were been be have has had do does did will would could should may
		might must shall can need this that these those i you he she it we
		they what which who when where why how all each every both few more
		most other some such no nor not only own same so than too very just
		also now here there`) {
		stopWords[w] = true
	}
}

var (
	capitalizedRE = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`)
	camelCaseRE   = regexp.MustCompile(`\b([A-Z][a-z]+(?:[A-Z][a-z]+)+)\b`)
	snakeCaseRE   = regexp.MustCompile(`\b([a-z]+(?:_[a-z]+)+)\b`)
	quotedRE      = regexp.MustCompile(`["']([^"']+)["']`)
	theNounRE     = regexp.MustCompile(`(?i)\bthe\s+(\w+)`)
	sentenceRE    = regexp.MustCompile(`[.!?]`)
)

// Parse extracts both entities and relationships from text.
func Parse(text string) ([]Entity, []Relation) {
	return ExtractEntities(text), ExtractRelations(text)
}

// entityKey deduplicates entities case-insensitively per name and type.
type entityKey struct {
	name string
	typ  string
}

// entitySet accumulates entities in first-seen order.
type entitySet struct {
	byKey map[entityKey]int
	order []Entity
}

func newEntitySet() *entitySet {
	return &entitySet{byKey: make(map[entityKey]int)}
}

func (s *entitySet) add(name, typ string) {
	k := entityKey{name: strings.ToLower(name), typ: typ}
	if i, ok := s.byKey[k]; ok {
		s.order[i].Mentions++
		return
	}
	s.byKey[k] = len(s.order)
	s.order = append(s.order, Entity{Name: name, Type: typ, Mentions: 1})
}

// ExtractEntities finds candidate entities: capitalized words and
// multi-word proper nouns, CamelCase and snake_case identifiers, quoted
// strings, and nouns following "the".
func ExtractEntities(text string) []Entity {
	set := newEntitySet()

	for _, m := range capitalizedRE.FindAllStringSubmatch(text, -1) {
		if !stopWords[strings.ToLower(m[1])] {
			set.add(m[1], TypeNoun)
		}
	}

	for _, m := range camelCaseRE.FindAllStringSubmatch(text, -1) {
		set.add(m[1], TypeTechnical)
	}
	for _, m := range snakeCaseRE.FindAllStringSubmatch(text, -1) {
		set.add(m[1], TypeTechnical)
	}

	for _, m := range quotedRE.FindAllStringSubmatch(text, -1) {
		if len(m[1]) > 2 && !stopWords[strings.ToLower(m[1])] {
			set.add(m[1], TypeString)
		}
	}

	for _, m := range theNounRE.FindAllStringSubmatch(text, -1) {
		if len(m[1]) > 2 && !stopWords[strings.ToLower(m[1])] {
			set.add(m[1], TypeNoun)
		}
	}

	return set.order
}

// relationKey deduplicates relations case-insensitively on endpoints.
type relationKey struct {
	source string
	target string
	kind   string
}

// ExtractRelations finds subject-verb-object relationships by splitting
// the text into sentences and matching the verb-phrase patterns within
// each. Endpoints that are stop words are discarded.
func ExtractRelations(text string) []Relation {
	seen := make(map[relationKey]bool)
	var relations []Relation

	for _, sentence := range sentenceRE.Split(text, -1) {
		for _, p := range relationPatterns {
			for _, m := range p.re.FindAllStringSubmatch(sentence, -1) {
				source, target := m[1], m[2]
				if stopWords[strings.ToLower(source)] || stopWords[strings.ToLower(target)] {
					continue
				}
				k := relationKey{
					source: strings.ToLower(source),
					target: strings.ToLower(target),
					kind:   p.kind,
				}
				if seen[k] {
					continue
				}
				seen[k] = true
				relations = append(relations, Relation{
					Source: source,
					Target: target,
					Type:   p.kind,
					Weight: 1,
				})
			}
		}
	}

	return relations
}
