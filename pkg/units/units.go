// Package units handles plot length values.
//
// All geometry inside panelgrid is computed in centimeters. User-facing
// lengths accept a trailing unit code: c (centimeters), i (inches) or
// p (points, 1/72 inch). A bare number is taken as centimeters.
package units

import (
	"strconv"
	"strings"

	"github.com/matzehuels/panelgrid/pkg/errors"
)

// Conversion factors to centimeters.
const (
	CmPerInch  = 2.54
	CmPerPoint = 2.54 / 72.0
)

// Parse converts a length string like "8c", "3i", "24p" or "1.5" into
// centimeters.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "empty length")
	}

	factor := 1.0
	switch s[len(s)-1] {
	case 'c':
		s = s[:len(s)-1]
	case 'i':
		factor = CmPerInch
		s = s[:len(s)-1]
	case 'p':
		factor = CmPerPoint
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "invalid length %q", s)
	}
	return v * factor, nil
}

// ParseList converts a slash- or comma-separated list of lengths into
// centimeters. Both separators are accepted since dimension pairs use a
// slash while per-row lists use commas.
func ParseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == ',' })
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidUnit, "empty length list")
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := Parse(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FromPoints converts a font size or offset given in points to centimeters.
func FromPoints(pt float64) float64 {
	return pt * CmPerPoint
}

// Format renders a centimeter value the way the state files store lengths.
func Format(cm float64) string {
	return strconv.FormatFloat(cm, 'g', -1, 64)
}
