// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import "sort"

// Result holds the derived comparison statistics for two element lists.
// Set-valued fields are deduplicated and sorted by display form; counts
// distinguish raw list lengths from distinct-set sizes so duplicate-heavy
// inputs stay visible to the caller.
type Result struct {
	// Common contains the elements present in both lists.
	Common []Element `json:"common" yaml:"common"`

	// OnlyInFirst and OnlyInSecond are the per-side set differences.
	OnlyInFirst  []Element `json:"only_in_first" yaml:"only_in_first"`
	OnlyInSecond []Element `json:"only_in_second" yaml:"only_in_second"`

	// AllUnique is the union of both distinct-element sets.
	AllUnique []Element `json:"all_unique" yaml:"all_unique"`

	// Identical is true iff the raw lists match element-for-element in
	// order and length.
	Identical bool `json:"identical" yaml:"identical"`

	// SameElements is true iff the two distinct-element sets are equal,
	// ignoring order and duplicates.
	SameElements bool `json:"same_elements" yaml:"same_elements"`

	// LenFirst and LenSecond are the raw input lengths, duplicates included.
	LenFirst  int `json:"len_first" yaml:"len_first"`
	LenSecond int `json:"len_second" yaml:"len_second"`

	// DistinctFirst and DistinctSecond are the distinct-set sizes.
	DistinctFirst  int `json:"distinct_first" yaml:"distinct_first"`
	DistinctSecond int `json:"distinct_second" yaml:"distinct_second"`
}

// Compare computes the set-theoretic comparison of two element lists.
// It is a pure function of its inputs: order-sensitive for Identical,
// order-insensitive for every set-based field.
func Compare(first, second []Element) Result {
	setA := distinct(first)
	setB := distinct(second)

	r := Result{
		Identical:      identical(first, second),
		LenFirst:       len(first),
		LenSecond:      len(second),
		DistinctFirst:  len(setA),
		DistinctSecond: len(setB),
	}

	for k, e := range setA {
		if _, ok := setB[k]; ok {
			r.Common = append(r.Common, e)
		} else {
			r.OnlyInFirst = append(r.OnlyInFirst, e)
		}
		r.AllUnique = append(r.AllUnique, e)
	}
	for k, e := range setB {
		if _, ok := setA[k]; !ok {
			r.OnlyInSecond = append(r.OnlyInSecond, e)
			r.AllUnique = append(r.AllUnique, e)
		}
	}

	r.SameElements = len(setA) == len(setB) && len(r.Common) == len(setA)

	sortElements(r.Common)
	sortElements(r.OnlyInFirst)
	sortElements(r.OnlyInSecond)
	sortElements(r.AllUnique)

	return r
}

// distinct builds the deduplicated element set, keeping the first-seen
// element of each identity for display.
func distinct(list []Element) map[key]Element {
	set := make(map[key]Element, len(list))
	for _, e := range list {
		k := e.key()
		if _, ok := set[k]; !ok {
			set[k] = e
		}
	}
	return set
}

// identical reports order- and length-sensitive equality. Element
// comparison uses value equality, so [1] and [1.0] are identical while
// [1] and ["1"] are not.
func identical(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// sortElements orders elements by display form for deterministic output.
func sortElements(elements []Element) {
	sort.Slice(elements, func(i, j int) bool {
		return elements[i].String() < elements[j].String()
	})
}
