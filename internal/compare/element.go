// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare parses comma-separated value lists into typed elements
// and computes set-theoretic comparison statistics over them.
package compare

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the inferred type of an Element.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindText
)

// Element is one parsed, typed value from an input list. Elements are
// immutable; construct them with Int, Float, Text, or ParseElement.
type Element struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer element.
func Int(v int64) Element { return Element{kind: KindInt, i: v} }

// Float returns a floating-point element.
func Float(v float64) Element { return Element{kind: KindFloat, f: v} }

// Text returns a text element. Content is used as-is for equality.
func Text(v string) Element { return Element{kind: KindText, s: v} }

// Kind reports the element's inferred type.
func (e Element) Kind() Kind { return e.kind }

// key is the set identity of an element. Integer and floating-point
// representations of the same numeric value collapse to one key; text
// elements are keyed by exact content, so Int(1) and Text("1") stay
// distinct. NaN gets its own flag: a raw NaN in the num field would
// never equal itself, so every NaN element would leak a fresh map entry.
type key struct {
	numeric bool
	nan     bool
	num     float64
	text    string
}

func (e Element) key() key {
	switch e.kind {
	case KindInt:
		return key{numeric: true, num: float64(e.i)}
	case KindFloat:
		if math.IsNaN(e.f) {
			return key{numeric: true, nan: true}
		}
		return key{numeric: true, num: e.f}
	default:
		return key{text: e.s}
	}
}

// Equal reports value equality: 1 == 1.0, but 1 != "1".
func (e Element) Equal(other Element) bool {
	return e.key() == other.key()
}

// String formats the element the way it was typed: integers without a
// decimal point, floats with at least one.
func (e Element) String() string {
	switch e.kind {
	case KindInt:
		return strconv.FormatInt(e.i, 10)
	case KindFloat:
		s := strconv.FormatFloat(e.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") && !math.IsNaN(e.f) && !math.IsInf(e.f, 0) {
			s += ".0"
		}
		return s
	default:
		return e.s
	}
}

// value returns the element as its natural Go type for serialization.
func (e Element) value() any {
	switch e.kind {
	case KindInt:
		return e.i
	case KindFloat:
		return e.f
	default:
		return e.s
	}
}

// MarshalJSON encodes integers and floats as numbers and text as strings.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value())
}

// MarshalYAML encodes integers and floats as numbers and text as strings.
func (e Element) MarshalYAML() (any, error) {
	return e.value(), nil
}

// ParseElement converts one trimmed token into a typed element: integer
// first, then float, else text. It never fails.
func ParseElement(token string) Element {
	if v, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Int(v)
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return Float(v)
	}
	return Text(token)
}

// Parse converts a raw comma-separated input, optionally wrapped in
// brackets, into a sequence of typed elements. Surrounding whitespace and
// quote characters are stripped from each token; empty tokens (such as
// those produced by trailing commas) are dropped. An empty input yields
// an empty sequence, not an error.
func Parse(raw string) []Element {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		raw = raw[1 : len(raw)-1]
	}

	var elements []Element
	for _, token := range strings.Split(raw, ",") {
		token = strings.Trim(strings.TrimSpace(token), `"'`)
		if token == "" {
			continue
		}
		elements = append(elements, ParseElement(token))
	}
	return elements
}
