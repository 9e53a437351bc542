package layout

import "strings"

// Fluff is the total decoration space per dimension: everything that is not
// panel area. X collects inter-column margins plus west/east ticks,
// annotations and labels; Y the same for rows plus panel titles. Heading is
// the accumulated offset of the figure heading above the top edge.
type Fluff struct {
	X       float64
	Y       float64
	Heading float64
}

// PlanFluff accumulates the decoration space for a figure, given the frame
// metrics. The accumulation order follows the row/column walk in Build so
// the two never disagree: margins first, then ticks, then annotations, then
// labels, then titles. debugf, when non-nil, receives the running totals the
// same way the begin command reports them at debug level.
//
// The counting rules per dimension:
//
//   - Ticks: both facing sides of every interior boundary, minus any side
//     the baseline axes selection suppressed (l/r for columns, b/t for
//     rows).
//   - Annotations and labels: zero interior sides when the dimension is
//     shared (only the grid extremes are annotated); otherwise every
//     interior boundary repeats whatever the baseline selection annotates.
//   - Titles: one per row above the first in TitleAll mode; the heading
//     offset grows by one title height in both title modes.
func PlanFluff(fl *FigureLayout, m FrameMetrics, debugf func(format string, args ...any)) Fluff {
	if debugf == nil {
		debugf = func(string, ...any) {}
	}
	f := Fluff{Heading: m.HeadingOffset}

	f.X += float64(fl.Cols-1) * (fl.Margins[West] + fl.Margins[East])
	f.Y += float64(fl.Rows-1) * (fl.Margins[South] + fl.Margins[North])
	debugf("after interior margins: fluff = {%g, %g}", f.X, f.Y)

	// West/east ticks: two per interior boundary unless a side is reduced
	// to a bare line.
	nx := 2
	if strings.ContainsRune(fl.AxesY, 'l') {
		nx--
	}
	if strings.ContainsRune(fl.AxesY, 'r') {
		nx--
	}
	f.X += float64((fl.Cols-1)*nx) * m.TickHeight
	debugf("after %d column tick sides: fluff = {%g, %g}", nx, f.X, f.Y)

	// West/east annotations: suppressed on interior boundaries when rows
	// share their y-range, otherwise the baseline selection repeats for
	// every column.
	nx = 0
	if !fl.ShareY.Active {
		if strings.ContainsRune(fl.AxesY, 'W') {
			nx++
		}
		if strings.ContainsRune(fl.AxesY, 'E') {
			nx++
		}
		nx *= fl.Cols - 1
		f.X += float64(nx) * m.AnnotHeight
	}
	debugf("after %d column annotation sides: fluff = {%g, %g}", nx, f.X, f.Y)
	if fl.ShareY.HasLabel {
		f.X += float64(nx) * m.LabelHeight
	}
	debugf("after column labels: fluff = {%g, %g}", f.X, f.Y)

	// South/north ticks.
	ny := 2
	if strings.ContainsRune(fl.AxesX, 'b') {
		ny--
	}
	if strings.ContainsRune(fl.AxesX, 't') {
		ny--
	} else {
		f.Heading += m.TickHeight
	}
	f.Y += float64((fl.Rows-1)*ny) * m.TickHeight
	debugf("after %d row tick sides: fluff = {%g, %g}", ny, f.X, f.Y)

	// South/north annotations. nAnnot is the per-boundary side count;
	// sharing collapses the boundary factor to zero interior repeats.
	nAnnot := 0
	if !fl.ShareX.Active {
		if strings.ContainsRune(fl.AxesX, 'S') {
			nAnnot++
		}
		if strings.ContainsRune(fl.AxesX, 'N') {
			nAnnot++
			f.Heading += m.AnnotHeight
		}
	}
	factor := fl.Rows
	if fl.ShareX.Active {
		factor = 1
	}
	ny = (factor - 1) * nAnnot
	f.Y += float64(ny) * m.AnnotHeight
	debugf("after %d row annotation sides: fluff = {%g, %g}", ny, f.X, f.Y)
	if fl.ShareX.HasLabel {
		f.Y += float64(ny) * m.LabelHeight
		if nAnnot == 2 || fl.ShareX.Annotate&AtMax != 0 {
			f.Heading += m.LabelHeight
		}
	}
	debugf("after row labels: fluff = {%g, %g}", f.X, f.Y)

	switch fl.TitleMode {
	case TitleAll:
		f.Y += float64(fl.Rows-1) * m.TitleHeight
		f.Heading += m.TitleHeight
	case TitleFirstRow:
		f.Heading += m.TitleHeight
	}
	debugf("after panel titles: fluff = {%g, %g}, heading offset %g", f.X, f.Y, f.Heading)

	return f
}
