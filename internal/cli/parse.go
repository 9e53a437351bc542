package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/layout"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// parseGrid parses the "<rows>x<cols>" argument of begin.
func parseGrid(s string) (rows, cols int, err error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidGrid, "grid must be <rows>x<cols>, got %q", s)
	}
	if rows, err = strconv.Atoi(a); err != nil || rows < 1 {
		return 0, 0, errors.New(errors.ErrCodeInvalidGrid, "invalid row count %q", a)
	}
	if cols, err = strconv.Atoi(b); err != nil || cols < 1 {
		return 0, 0, errors.New(errors.ErrCodeInvalidGrid, "invalid column count %q", b)
	}
	return rows, cols, nil
}

// parseDim splits a dimension argument into its width and height value
// lists: the first slash separates the two axes, commas separate per-column
// or per-row values within one axis. "16c/10c" or "8c,6c/5c".
func parseDim(s string) (w, h []float64, err error) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidDimension,
			"dimension must be <width>/<height>, got %q", s)
	}
	if w, err = parseLengths(a); err != nil {
		return nil, nil, err
	}
	if h, err = parseLengths(b); err != nil {
		return nil, nil, err
	}
	return w, h, nil
}

// parseLengths parses a comma-separated list of lengths. A lone "0" is the
// derive-from-aspect-ratio sentinel and passes through.
func parseLengths(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := units.Parse(f)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, errors.New(errors.ErrCodeInvalidDimension, "negative length %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// parseFractions parses the relative row/column weights of --fractions:
// plain numbers, commas within an axis, a slash between the two.
func parseFractions(s string) (w, h []float64, err error) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidDimension,
			"fractions must be <widths>/<heights>, got %q", s)
	}
	parse := func(part string) ([]float64, error) {
		fields := strings.Split(part, ",")
		out := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil || v <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidDimension, "invalid fraction %q", f)
			}
			out[i] = v
		}
		return out, nil
	}
	if w, err = parse(a); err != nil {
		return nil, nil, err
	}
	if h, err = parse(b); err != nil {
		return nil, nil, err
	}
	return w, h, nil
}

// parseSides parses a per-side length option: one value for all sides, two
// for west/east and south/north, or four in west/east/south/north order.
func parseSides(s string) ([4]float64, error) {
	var out [4]float64
	vals, err := units.ParseList(s)
	if err != nil {
		return out, errors.Wrap(errors.ErrCodeInvalidMargin, err, "invalid side lengths %q", s)
	}
	switch len(vals) {
	case 1:
		out = [4]float64{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		out = [4]float64{vals[0], vals[0], vals[1], vals[1]}
	case 4:
		out = [4]float64{vals[0], vals[1], vals[2], vals[3]}
	default:
		return out, errors.New(errors.ErrCodeInvalidMargin,
			"side lengths take 1, 2 or 4 values, got %d", len(vals))
	}
	for _, v := range out {
		if v < 0 {
			return out, errors.New(errors.ErrCodeInvalidMargin, "negative side length in %q", s)
		}
	}
	return out, nil
}

// parseOrigin parses an "X/Y" position.
func parseOrigin(s string) (layout.Point, error) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return layout.Point{}, errors.New(errors.ErrCodeInvalidDimension,
			"origin must be <x>/<y>, got %q", s)
	}
	x, err := units.Parse(a)
	if err != nil {
		return layout.Point{}, err
	}
	y, err := units.Parse(b)
	if err != nil {
		return layout.Point{}, err
	}
	return layout.Point{X: x, Y: y}, nil
}

// parseShare parses the value of --share-cols / --share-rows. min and max
// are the tokens selecting a single annotated extreme for that dimension
// (b/t for columns, l/r for rows); empty and "both" annotate both.
func parseShare(value, min, max string) (layout.Place, error) {
	switch value {
	case "", "both", "true":
		return layout.AtBoth, nil
	case min:
		return layout.AtMin, nil
	case max:
		return layout.AtMax, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSharing,
		"sharing side must be %s, %s or both, got %q", min, max, value)
}

// parseTagSpec parses the compact tag format of --tag: an optional literal
// prefix, a start letter or number, and an optional literal suffix, e.g.
// "(a)" or "i." or "3-". An empty spec yields the default "a)" tags.
func parseTagSpec(s string) (layout.TagSpec, error) {
	spec := layout.DefaultTagSpec()
	if s == "" {
		return spec, nil
	}

	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			start = i
			break
		}
	}
	if start < 0 {
		return spec, errors.New(errors.ErrCodeInvalidTag,
			"tag spec %q has no start letter or number", s)
	}
	spec.Prefix = s[:start]

	end := start
	if c := s[start]; c >= '0' && c <= '9' {
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		n, err := strconv.Atoi(s[start:end])
		if err != nil {
			return spec, errors.New(errors.ErrCodeInvalidTag, "invalid tag number in %q", s)
		}
		spec.Mode = layout.TagNumber
		spec.StartNumber = n
	} else {
		end = start + 1
		spec.Mode = layout.TagLetter
		spec.StartLetter = c
	}
	spec.Suffix = s[end:]
	return spec, nil
}

// parsePanelRef parses the optional positional argument of set: either
// "row,col" or a linear index.
func parsePanelRef(s string) (row, col, idx int, isPair bool, err error) {
	if a, b, ok := strings.Cut(s, ","); ok {
		if row, err = strconv.Atoi(a); err != nil {
			return 0, 0, 0, false, errors.New(errors.ErrCodeInvalidPanel, "invalid panel row %q", a)
		}
		if col, err = strconv.Atoi(b); err != nil {
			return 0, 0, 0, false, errors.New(errors.ErrCodeInvalidPanel, "invalid panel column %q", b)
		}
		return row, col, 0, true, nil
	}
	if idx, err = strconv.Atoi(s); err != nil {
		return 0, 0, 0, false, errors.New(errors.ErrCodeInvalidPanel, "invalid panel index %q", s)
	}
	return 0, 0, idx, false, nil
}

// parseTitleMode parses --panel-titles.
func parseTitleMode(value string) (layout.TitleMode, error) {
	switch value {
	case "", "all", "true":
		return layout.TitleAll, nil
	case "first-row":
		return layout.TitleFirstRow, nil
	case "none", "false":
		return layout.TitleNone, nil
	}
	return layout.TitleNone, errors.New(errors.ErrCodeInvalidSharing,
		"panel titles must be all, first-row or none, got %q", value)
}
