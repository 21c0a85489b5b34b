package textparse

import (
	"testing"
)

const sampleText = `
Python is a programming language. Python has many libraries.
Django is a web framework. Django uses Python.
Flask is a micro framework. Flask extends Python.
The User class inherits from BaseModel.
The database contains tables. Tables have columns.
`

func entityNames(entities []Entity) map[string]Entity {
	m := make(map[string]Entity, len(entities))
	for _, e := range entities {
		m[e.Name] = e
	}
	return m
}

func TestExtractEntities(t *testing.T) {
	entities := ExtractEntities(sampleText)
	byName := entityNames(entities)

	for _, want := range []string{"Python", "Django", "Flask", "BaseModel"} {
		if _, ok := byName[want]; !ok {
			t.Errorf("entity %q not extracted", want)
		}
	}

	if e, ok := byName["Python"]; ok && e.Mentions < 2 {
		t.Errorf("Python mentions = %d, want >= 2", e.Mentions)
	}
	if e := byName["BaseModel"]; e.Type != TypeTechnical {
		t.Errorf("BaseModel type = %q, want %q", e.Type, TypeTechnical)
	}
}

func TestExtractEntitiesIdentifiers(t *testing.T) {
	entities := ExtractEntities(`The parse_input function feeds the GraphBuilder pipeline.`)
	byName := entityNames(entities)

	if e := byName["parse_input"]; e.Type != TypeTechnical {
		t.Errorf("snake_case identifier type = %q, want %q", e.Type, TypeTechnical)
	}
	if e := byName["GraphBuilder"]; e.Type != TypeTechnical {
		t.Errorf("CamelCase identifier type = %q, want %q", e.Type, TypeTechnical)
	}
}

func TestExtractEntitiesQuoted(t *testing.T) {
	entities := ExtractEntities(`The command "graph build" renders output.`)
	if _, ok := entityNames(entities)["graph build"]; !ok {
		t.Error("quoted phrase not extracted")
	}

	// Short quoted strings are noise and skipped.
	entities = ExtractEntities(`The flag "-v" is verbose.`)
	if _, ok := entityNames(entities)["-v"]; ok {
		t.Error("two-character quoted string should be skipped")
	}
}

func TestExtractEntitiesStopWords(t *testing.T) {
	for _, e := range ExtractEntities("This is The And of They.") {
		switch e.Name {
		case "This", "The", "And", "They":
			t.Errorf("stop word %q extracted as entity", e.Name)
		}
	}
}

func TestExtractRelations(t *testing.T) {
	relations := ExtractRelations(sampleText)

	type rel struct{ source, target, kind string }
	want := []rel{
		{"Python", "programming", "is_a"},
		{"Django", "Python", "uses"},
		{"Flask", "Python", "extends"},
		{"class", "BaseModel", "inherits"},
		{"database", "tables", "contains"},
		{"Tables", "columns", "has"},
	}

	got := make(map[rel]bool)
	for _, r := range relations {
		got[rel{r.Source, r.Target, r.Type}] = true
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("relation %v not extracted", w)
		}
	}
}

func TestExtractRelationsDeduplicated(t *testing.T) {
	relations := ExtractRelations("Django uses Python. django uses python.")

	count := 0
	for _, r := range relations {
		if r.Type == "uses" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate relation extracted %d times, want 1", count)
	}
}

func TestExtractRelationsStopWordEndpoints(t *testing.T) {
	for _, r := range ExtractRelations("It uses this.") {
		if r.Type == "uses" {
			t.Errorf("relation with stop-word endpoints extracted: %+v", r)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	entities, relations := Parse("")
	if len(entities) != 0 || len(relations) != 0 {
		t.Errorf("empty text produced %d entities, %d relations", len(entities), len(relations))
	}
}
