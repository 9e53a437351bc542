package layout

import (
	"github.com/matzehuels/panelgrid/pkg/errors"
)

// DimMode says whether the user supplied the figure dimension or per-panel
// dimensions.
type DimMode int

// Dimension input modes.
const (
	FigureDim DimMode = iota // figure width/height given, panels derived
	PanelDim                 // panel widths/heights given, figure derived
)

// DimRequest is the structured dimension input for one figure.
//
// In FigureDim mode Width and Height are the total plottable area and
// WFracs/HFracs are optional relative weights, one per column and row (nil
// means equal split). In PanelDim mode Widths/Heights hold per-column and
// per-row sizes; a single element is duplicated to every column or row. A
// height of exactly zero is a sentinel meaning "derive from the column
// width via the projection aspect ratio", which requires AspectRatio.
type DimRequest struct {
	Mode   DimMode
	Width  float64
	Height float64
	WFracs []float64
	HFracs []float64

	Widths  []float64
	Heights []float64

	// AspectRatio returns the governing projection's height/width ratio.
	// Only consulted for the zero-height sentinel.
	AspectRatio func() float64
}

// Resolve turns a dimension request into absolute column widths, row
// heights and the overall figure dimension, given the fluff the sharing
// planner computed. It is a single arithmetic pass: weights are normalized,
// fluff is subtracted (figure mode) or added (panel mode), and any
// non-positive result is fatal.
func Resolve(req DimRequest, rows, cols int, fluffX, fluffY float64) (widths, heights []float64, dim Dim, err error) {
	if rows < 1 || cols < 1 {
		return nil, nil, Dim{}, errors.New(errors.ErrCodeInvalidGrid, "grid must have at least one row and one column, got %dx%d", rows, cols)
	}

	switch req.Mode {
	case FigureDim:
		wf, err := spread(req.WFracs, cols, "width fractions", "columns")
		if err != nil {
			return nil, nil, Dim{}, err
		}
		hf, err := spread(req.HFracs, rows, "height fractions", "rows")
		if err != nil {
			return nil, nil, Dim{}, err
		}
		normalize(wf)
		normalize(hf)

		remW := req.Width - fluffX
		remH := req.Height - fluffY
		if remW <= 0 {
			return nil, nil, Dim{}, errors.New(errors.ErrCodeNonPositiveDim,
				"decorations consume %g cm of the %g cm figure width", fluffX, req.Width)
		}
		if remH <= 0 {
			return nil, nil, Dim{}, errors.New(errors.ErrCodeNonPositiveDim,
				"decorations consume %g cm of the %g cm figure height", fluffY, req.Height)
		}

		widths = make([]float64, cols)
		for i, f := range wf {
			widths[i] = f * remW
		}
		heights = make([]float64, rows)
		for i, f := range hf {
			heights[i] = f * remH
		}
		dim = Dim{W: req.Width, H: req.Height}

	case PanelDim:
		widths, err = spread(req.Widths, cols, "panel widths", "columns")
		if err != nil {
			return nil, nil, Dim{}, err
		}
		heights, err = spread(req.Heights, rows, "panel heights", "rows")
		if err != nil {
			return nil, nil, Dim{}, err
		}

		// Zero height means: take it from the first column's width and
		// the projection aspect ratio. Resolved before anything is
		// summed so the figure dimension sees real numbers.
		for i, h := range heights {
			if h == 0 {
				if req.AspectRatio == nil {
					return nil, nil, Dim{}, errors.New(errors.ErrCodeInvalidDimension,
						"panel height 0 requires a projection to derive the aspect ratio")
				}
				heights[i] = widths[0] * req.AspectRatio()
			}
		}

		dim = Dim{W: fluffX, H: fluffY}
		for _, w := range widths {
			dim.W += w
		}
		for _, h := range heights {
			dim.H += h
		}

	default:
		return nil, nil, Dim{}, errors.New(errors.ErrCodeInvalidDimension, "unknown dimension mode %d", req.Mode)
	}

	for i, w := range widths {
		if w <= 0 {
			return nil, nil, Dim{}, errors.New(errors.ErrCodeNonPositiveDim, "column %d resolves to width %g cm", i, w)
		}
	}
	for i, h := range heights {
		if h <= 0 {
			return nil, nil, Dim{}, errors.New(errors.ErrCodeNonPositiveDim, "row %d resolves to height %g cm", i, h)
		}
	}
	if dim.W <= 0 || dim.H <= 0 {
		return nil, nil, Dim{}, errors.New(errors.ErrCodeNonPositiveDim, "figure resolves to %gx%g cm", dim.W, dim.H)
	}
	return widths, heights, dim, nil
}

// spread expands a value list to n entries: nil means equal weights, a
// single value is duplicated, and any other length must match n exactly.
func spread(vals []float64, n int, what, per string) ([]float64, error) {
	out := make([]float64, n)
	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = 1
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case n:
		copy(out, vals)
	default:
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"%s: got %d values for %d %s", what, len(vals), n, per)
	}
	return out, nil
}

// normalize scales the weights to sum to one.
func normalize(f []float64) {
	var sum float64
	for _, v := range f {
		sum += v
	}
	if sum == 0 {
		return
	}
	for i := range f {
		f[i] /= sum
	}
}
