package layout

import (
	"strconv"
	"strings"
)

// TagMode selects the counter style for automatic panel tags.
type TagMode int

// Tag counter styles.
const (
	TagLetter TagMode = iota
	TagNumber
)

// RomanStyle selects Roman numeral typesetting for number tags.
type RomanStyle int

// Roman numeral styles.
const (
	RomanNone RomanStyle = iota
	RomanLower
	RomanUpper
)

// TagSpec is the per-figure automatic tag configuration. The counter for
// panel (row,col) is its linear index in the figure's numbering order,
// offset by the start letter or number.
type TagSpec struct {
	Mode        TagMode
	Roman       RomanStyle
	StartLetter byte // first letter for TagLetter, usually 'a'
	StartNumber int  // first number for TagNumber
	Prefix      string
	Suffix      string

	Placement   string // reference point inside/outside the panel
	Justify     string
	Offset      [2]float64
	Clearance   [2]float64
	Fill        string
	Pen         string
	Shade       string
	ShadeOffset [2]float64
}

// DefaultTagSpec returns the stock letter tags: "a)", "b)", ... placed at
// the top-left corner.
func DefaultTagSpec() TagSpec {
	return TagSpec{
		Mode:        TagLetter,
		StartLetter: 'a',
		Suffix:      ")",
		Placement:   "TL",
		Justify:     "TL",
		Fill:        "-",
		Pen:         "-",
		Shade:       "-",
	}
}

// Render produces the tag text for the k-th panel in numbering order.
func (t TagSpec) Render(k int) string {
	var token string
	switch {
	case t.Mode == TagNumber && t.Roman != RomanNone:
		token = Roman(t.StartNumber+k, t.Roman == RomanLower)
	case t.Mode == TagNumber:
		token = strconv.Itoa(t.StartNumber + k)
	default:
		token = string(t.StartLetter + byte(k))
	}
	return t.Prefix + token + t.Suffix
}

// romanValues drive the standard subtractive construction.
var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman converts a positive integer to a Roman numeral, lowercase when
// lower is set. Zero and negative values come back empty.
func Roman(n int, lower bool) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	if lower {
		return strings.ToLower(b.String())
	}
	return b.String()
}

// tagIndex returns the numbering-order counter for panel (row,col).
func tagIndex(order Order, rows, cols, row, col int) int {
	if order == ColMajor {
		return col*rows + row
	}
	return row*cols + col
}
