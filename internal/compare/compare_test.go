package compare

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- parsing ---

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Element
	}{
		{
			name: "integers",
			raw:  "1, 2, 3",
			want: []Element{Int(1), Int(2), Int(3)},
		},
		{
			name: "bracket wrapped",
			raw:  "[1,2,3]",
			want: []Element{Int(1), Int(2), Int(3)},
		},
		{
			name: "mixed types",
			raw:  "1, zwei, 3.5",
			want: []Element{Int(1), Text("zwei"), Float(3.5)},
		},
		{
			name: "quoted strings",
			raw:  `"Apfel", 'Banane'`,
			want: []Element{Text("Apfel"), Text("Banane")},
		},
		{
			name: "whitespace trimmed",
			raw:  "  a ,  b  ",
			want: []Element{Text("a"), Text("b")},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "empty brackets",
			raw:  "[]",
			want: nil,
		},
		{
			name: "trailing comma dropped",
			raw:  "1, 2,",
			want: []Element{Int(1), Int(2)},
		},
		{
			name: "only commas",
			raw:  ",,,",
			want: nil,
		},
		{
			name: "negative and scientific",
			raw:  "-4, 1e3",
			want: []Element{Int(-4), Float(1000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, got[i].Equal(tt.want[i]), "element %d: got %v want %v", i, got[i], tt.want[i])
				assert.Equal(t, tt.want[i].Kind(), got[i].Kind(), "element %d kind", i)
			}
		})
	}
}

func TestParseNeverFails(t *testing.T) {
	// Unparseable numerics degrade to text, so any input is accepted.
	for _, raw := range []string{"1.2.3", "--5", "[[nested]]", "NaN-ish, 0x10"} {
		got := Parse(raw)
		for _, e := range got {
			assert.NotPanics(t, func() { _ = e.String() })
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Re-parsing a formatted numeric element yields an equal element.
	for _, e := range []Element{Int(5), Int(-12), Float(3.5), Float(2.0), Text("hello")} {
		got := ParseElement(e.String())
		assert.True(t, got.Equal(e), "round trip of %q", e.String())
	}
}

// --- element identity ---

func TestElementEquality(t *testing.T) {
	assert.True(t, Int(1).Equal(Float(1.0)), "int and float of same value collapse")
	assert.False(t, Int(1).Equal(Text("1")), "int 1 and text \"1\" stay distinct")
	assert.False(t, Text("Apfel").Equal(Text("apfel")), "text equality is case-sensitive")
}

func TestElementString(t *testing.T) {
	assert.Equal(t, "1", Int(1).String())
	assert.Equal(t, "3.0", Float(3.0).String())
	assert.Equal(t, "3.5", Float(3.5).String())
	assert.Equal(t, "vier", Text("vier").String())
	assert.Equal(t, "NaN", Float(math.NaN()).String())
	assert.Equal(t, "+Inf", Float(math.Inf(1)).String())
	assert.Equal(t, "-Inf", Float(math.Inf(-1)).String())
}

func TestNonFiniteIdentity(t *testing.T) {
	assert.True(t, Float(math.NaN()).Equal(Float(math.NaN())), "nan elements share one identity")
	assert.False(t, Float(math.NaN()).Equal(Text("NaN")), "nan and the text NaN stay distinct")
	assert.True(t, Float(math.Inf(1)).Equal(Float(math.Inf(1))))
	assert.False(t, Float(math.Inf(1)).Equal(Float(math.Inf(-1))))
}

// --- comparison scenarios ---

func elemStrings(elements []Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.String()
	}
	return out
}

func TestCompareOverlappingNumbers(t *testing.T) {
	a := Parse("[1,2,3,4,5]")
	b := Parse("[4,5,6,7,8]")

	r := Compare(a, b)

	assert.Equal(t, []string{"4", "5"}, elemStrings(r.Common))
	assert.Equal(t, []string{"1", "2", "3"}, elemStrings(r.OnlyInFirst))
	assert.Equal(t, []string{"6", "7", "8"}, elemStrings(r.OnlyInSecond))
	assert.Len(t, r.AllUnique, 8)
	assert.False(t, r.Identical)
	assert.False(t, r.SameElements)
	assert.Equal(t, 5, r.LenFirst)
	assert.Equal(t, 5, r.LenSecond)
}

func TestCompareEmptyLists(t *testing.T) {
	r := Compare(nil, nil)

	assert.True(t, r.Identical)
	assert.True(t, r.SameElements)
	assert.Empty(t, r.Common)
	assert.Empty(t, r.OnlyInFirst)
	assert.Empty(t, r.OnlyInSecond)
	assert.Empty(t, r.AllUnique)
	assert.Zero(t, r.LenFirst)
	assert.Zero(t, r.LenSecond)
}

func TestCompareReordered(t *testing.T) {
	a := []Element{Text("Apfel"), Text("Banane")}
	b := []Element{Text("Banane"), Text("Apfel")}

	r := Compare(a, b)

	assert.False(t, r.Identical, "order differs")
	assert.True(t, r.SameElements)
}

func TestCompareTypedDistinct(t *testing.T) {
	a := []Element{Int(1), Text("1")}

	r := Compare(a, nil)

	assert.Equal(t, 2, r.DistinctFirst, "integer 1 and text \"1\" are different elements")
}

func TestCompareDuplicates(t *testing.T) {
	a := Parse("[1,1,1]")

	r := Compare(a, a)

	assert.Equal(t, 3, r.LenFirst)
	assert.Equal(t, 1, r.DistinctFirst)
	assert.True(t, r.Identical)
	assert.True(t, r.SameElements)
}

func TestCompareNumericCollapse(t *testing.T) {
	a := []Element{Int(1)}
	b := []Element{Float(1.0)}

	r := Compare(a, b)

	assert.True(t, r.Identical, "value equality holds across numeric kinds")
	assert.True(t, r.SameElements)
	assert.Len(t, r.AllUnique, 1)
}

// --- invariants ---

func TestIntersectionSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"[1,2,3,4,5]", "[4,5,6,7,8]"},
		{"a, b, c", "c, d"},
		{"1, zwei, 3.0, vier", "zwei, 2, 3.0, 4"},
		{"", "1, 2"},
	}

	for _, p := range pairs {
		a, b := Parse(p[0]), Parse(p[1])
		ab := Compare(a, b)
		ba := Compare(b, a)
		assert.ElementsMatch(t, elemStrings(ab.Common), elemStrings(ba.Common), "%q vs %q", p[0], p[1])
	}
}

func TestCompareSelf(t *testing.T) {
	for _, raw := range []string{"[1,2,3]", "a, b", "", "1, 1, zwei", "nan, inf, 1"} {
		a := Parse(raw)
		r := Compare(a, a)
		assert.True(t, r.Identical, "self comparison of %q", raw)
		assert.True(t, r.SameElements, "self comparison of %q", raw)
	}
}

func TestCompareNaN(t *testing.T) {
	// ParseFloat accepts "nan", so it is a valid list element and must
	// dedupe like any other value.
	r := Compare(Parse("nan, nan, 1"), Parse("NaN, 1"))

	assert.True(t, r.SameElements)
	assert.Equal(t, 3, r.LenFirst)
	assert.Equal(t, 2, r.DistinctFirst)
	assert.Equal(t, 2, r.DistinctSecond)
	assert.Len(t, r.Common, 2)
	assert.Empty(t, r.OnlyInFirst)
	assert.Empty(t, r.OnlyInSecond)
	assert.Len(t, r.AllUnique, 2)
}

func TestUnionPartition(t *testing.T) {
	pairs := [][2]string{
		{"[1,2,3,4,5]", "[4,5,6,7,8]"},
		{"a, a, b", "b, c, c"},
		{"", ""},
		{"1, 1.0, one", "one, 1"},
	}

	for _, p := range pairs {
		r := Compare(Parse(p[0]), Parse(p[1]))
		assert.Equal(t,
			len(r.AllUnique),
			len(r.Common)+len(r.OnlyInFirst)+len(r.OnlyInSecond),
			"%q vs %q", p[0], p[1])
	}
}

// --- report ---

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	r := Compare(Parse("[1,2,3,4,5]"), Parse("[4,5,6,7,8]"))

	WriteReport(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "COMPARISON RESULTS")
	assert.Contains(t, out, "Elements in list 1: 5")
	assert.Contains(t, out, "Lists are identical:       false")
	assert.Contains(t, out, "Common elements (2):")
	assert.Contains(t, out, "All distinct elements (8):")

	// Section ordering: counts, flags, common, per-side, union.
	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx("Statistics:"), idx("Lists are identical"))
	assert.Less(t, idx("Lists are identical"), idx("Common elements"))
	assert.Less(t, idx("Common elements"), idx("Only in list 1"))
	assert.Less(t, idx("Only in list 2"), idx("All distinct elements"))
}

func TestWriteReportEmptySets(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, Compare(Parse("1"), Parse("2")))
	assert.Contains(t, buf.String(), "(none)")
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[1, zwei, 3.0]", FormatList([]Element{Int(1), Text("zwei"), Float(3)}))
	assert.Equal(t, "[]", FormatList(nil))
}
