package codeparse

import (
	"testing"
)

const goSample = `// Package zoo keeps animals.
package zoo

import (
	"fmt"
	stdstrings "strings"
)

// Animal is the base record.
type Animal struct {
	Name string
}

// Dog barks.
type Dog struct {
	Animal
}

// Speak prints the sound.
func (d *Dog) Speak() {
	fmt.Println(stdstrings.ToUpper("woof"))
}

func NewDog(name string) *Dog {
	d := &Dog{}
	d.Speak()
	return d
}
`

func findEntity(t *testing.T, entities []Entity, name, kind string) Entity {
	t.Helper()
	for _, e := range entities {
		if e.Name == name && e.Kind == kind {
			return e
		}
	}
	t.Fatalf("entity %s/%s not found in %v", kind, name, entities)
	return Entity{}
}

func hasRelation(relations []Relation, source, target, kind string) bool {
	for _, r := range relations {
		if r.Source == source && r.Target == target && r.Kind == kind {
			return true
		}
	}
	return false
}

func TestParseGo(t *testing.T) {
	entities, relations := Parse(goSample, "zoo.go")

	pkg := findEntity(t, entities, "zoo", KindPackage)
	if pkg.Doc != "Package zoo keeps animals." {
		t.Errorf("package doc = %q", pkg.Doc)
	}

	animal := findEntity(t, entities, "Animal", KindType)
	if animal.Doc != "Animal is the base record." {
		t.Errorf("type doc = %q", animal.Doc)
	}
	findEntity(t, entities, "Dog", KindType)

	speak := findEntity(t, entities, "Speak", KindMethod)
	if speak.Parent != "Dog" {
		t.Errorf("Speak parent = %q, want Dog", speak.Parent)
	}
	findEntity(t, entities, "NewDog", KindFunc)

	findEntity(t, entities, "fmt", KindImport)
	findEntity(t, entities, "stdstrings", KindImport)

	for _, want := range []struct{ source, target, kind string }{
		{"zoo", "fmt", RelImports},
		{"zoo", "strings", RelImports},
		{"Dog", "Animal", RelEmbeds},
		{"Dog", "Speak", RelContains},
		{"Speak", "fmt.Println", RelCalls},
		{"NewDog", "d.Speak", RelCalls},
	} {
		if !hasRelation(relations, want.source, want.target, want.kind) {
			t.Errorf("relation %v not extracted", want)
		}
	}
}

func TestParseGoLineNumbers(t *testing.T) {
	entities, _ := Parse(goSample, "zoo.go")
	animal := findEntity(t, entities, "Animal", KindType)
	if animal.Line != 10 {
		t.Errorf("Animal line = %d, want 10", animal.Line)
	}
}

func TestParseGoInvalidFallsBack(t *testing.T) {
	// Broken syntax must not abort: the pattern table takes over.
	broken := "package broken\n\nfunc Orphan( {\ntype Thing struct {}\n"
	entities, _ := Parse(broken, "broken.go")

	if len(entities) == 0 {
		t.Fatal("no entities from fallback parse")
	}
	findEntity(t, entities, "Thing", KindType)
}

func TestParsePython(t *testing.T) {
	code := `import os

class Animal:
    pass

class Dog(Animal):
    def speak(self):
        return "Woof"

def create_animal(kind):
    return Dog()
`
	entities, relations := Parse(code, "animals.py")

	findEntity(t, entities, "Animal", KindClass)
	findEntity(t, entities, "Dog", KindClass)
	findEntity(t, entities, "speak", KindFunction)
	findEntity(t, entities, "create_animal", KindFunction)
	findEntity(t, entities, "os", KindImport)

	if !hasRelation(relations, "Dog", "Animal", RelExtends) {
		t.Error("python inheritance not extracted")
	}
}

func TestParseJavaScript(t *testing.T) {
	code := `import React from 'react';
const util = require('node:util');

class Widget extends Component {
}

function render() {}
const handler = async (event) => {};
`
	entities, relations := Parse(code, "widget.js")

	findEntity(t, entities, "Widget", KindClass)
	findEntity(t, entities, "render", KindFunction)
	findEntity(t, entities, "handler", KindFunction)
	findEntity(t, entities, "util", KindImport)

	if !hasRelation(relations, "Widget", "Component", RelExtends) {
		t.Error("js extends not extracted")
	}
	if !hasRelation(relations, "module", "node:util", RelImports) {
		t.Error("require import not extracted")
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		path string
		want string
	}{
		{"go extension", "", "main.go", "go"},
		{"typescript extension", "", "app.ts", "javascript"},
		{"header extension", "", "list.h", "cpp"},
		{"go content", "package main\n\nfunc main() {}", "", "go"},
		{"python content", "def main():\n    pass", "", "python"},
		{"js content", "const f = () => 1", "", "javascript"},
		{"cpp content", "#include <stdio.h>", "", "cpp"},
		{"unknown", "hello world", "", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.code, tt.path); got != tt.want {
				t.Errorf("DetectLanguage = %q, want %q", got, tt.want)
			}
		})
	}
}
