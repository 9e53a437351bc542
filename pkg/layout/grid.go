package layout

import (
	"strings"

	"github.com/matzehuels/panelgrid/pkg/errors"
)

// Grid is the built geometry of one figure: the panel records in row-major
// order plus the figure-level anchors derived during the walk.
type Grid struct {
	Panels []PanelRecord
	Dim    Dim
	Origin Point

	// HeadingAnchor is the bottom-center point of the figure heading.
	// Only meaningful when the layout has a heading.
	HeadingAnchor Point

	// RowDividers and ColDividers are the y (resp. x) coordinates of the
	// interior boundaries, centered in the gap between adjacent panels.
	RowDividers []float64
	ColDividers []float64
}

// Build walks the resolved figure layout and emits one PanelRecord per
// cell, rows top to bottom, columns left to right.
//
// The vertical walk order per row is load-bearing: top margin (except the
// first row), title space, north-side decoration space, the row height
// itself, south-side decoration space, bottom margin (except the last
// row). South-side space of one row never double counts against north-side
// space of the next because each side is only charged on interior
// boundaries (row > 0 for north, row < last for south). The horizontal
// walk mirrors this for west/east.
func Build(fl *FigureLayout, m FrameMetrics, fluff Fluff) (*Grid, error) {
	if fl.NPanels() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "grid %dx%d has no panels", fl.Rows, fl.Cols)
	}
	if len(fl.ColWidths) != fl.Cols || len(fl.RowHeights) != fl.Rows {
		return nil, errors.New(errors.ErrCodeInvalidDimension,
			"layout has %d widths and %d heights for a %dx%d grid",
			len(fl.ColWidths), len(fl.RowHeights), fl.Rows, fl.Cols)
	}

	lastRow, lastCol := fl.Rows-1, fl.Cols-1

	// Vertical walk: panel bottom edges, south/north treatments and label
	// carriers per row.
	py := make([]float64, fl.Rows)
	rowDiv := make([]float64, fl.Rows)
	north := make([]SideMode, fl.Rows)
	south := make([]SideMode, fl.Rows)
	rowLabel := make([]Place, fl.Rows)

	y := fl.Dim.H
	for row := 0; row < fl.Rows; row++ {
		if row > 0 {
			y -= fl.Margins[North]
		}
		// Row 0's title sits in the heading space above the grid, so
		// only interior rows are charged.
		if fl.TitleMode == TitleAll && row > 0 {
			y -= m.TitleHeight
		}

		annot := fl.ShareX.Annotate&AtMax != 0
		if fl.ShareX.Active {
			annot = row == 0 && annot
		} else {
			annot = false
		}
		switch {
		case annot || (!fl.ShareX.Active && strings.ContainsRune(fl.AxesX, 'N')):
			north[row] = SideAnnot
			if row > 0 {
				y -= m.AnnotHeight + m.TickHeight
			}
			if fl.ShareX.HasLabel {
				if row > 0 {
					y -= m.LabelHeight
				}
				rowLabel[row] |= AtMax
			}
		case strings.ContainsAny(fl.AxesX, "Nn"):
			north[row] = SideTick
			if row > 0 {
				y -= m.TickHeight
			}
		case strings.ContainsRune(fl.AxesX, 't'):
			north[row] = SideLine
		}

		y -= fl.RowHeights[row]
		py[row] = y

		annot = fl.ShareX.Annotate&AtMin != 0
		if fl.ShareX.Active {
			annot = row == lastRow && annot
		} else {
			annot = false
		}
		switch {
		case annot || (!fl.ShareX.Active && strings.ContainsRune(fl.AxesX, 'S')):
			south[row] = SideAnnot
			if row < lastRow {
				y -= m.AnnotHeight + m.TickHeight
			}
			if fl.ShareX.HasLabel {
				if row < lastRow {
					y -= m.LabelHeight
				}
				rowLabel[row] |= AtMin
			}
		case strings.ContainsAny(fl.AxesX, "Ss"):
			south[row] = SideTick
			if row < lastRow {
				y -= m.TickHeight
			}
		case strings.ContainsRune(fl.AxesX, 'b'):
			south[row] = SideLine
		}

		if row < lastRow {
			y -= fl.Margins[South]
		}
		rowDiv[row] = y
	}

	// Horizontal walk: panel left edges, west/east treatments and label
	// carriers per column.
	px := make([]float64, fl.Cols)
	colDiv := make([]float64, fl.Cols)
	west := make([]SideMode, fl.Cols)
	east := make([]SideMode, fl.Cols)
	colLabel := make([]Place, fl.Cols)

	x := 0.0
	for col := 0; col < fl.Cols; col++ {
		if col > 0 {
			x += fl.Margins[West]
		}

		annot := fl.ShareY.Annotate&AtMin != 0
		if fl.ShareY.Active {
			annot = col == 0 && annot
		} else {
			annot = false
		}
		switch {
		case annot || (!fl.ShareY.Active && strings.ContainsRune(fl.AxesY, 'W')):
			west[col] = SideAnnot
			if col > 0 {
				x += m.AnnotHeight + m.TickHeight
			}
			if fl.ShareY.HasLabel {
				if col > 0 {
					x += m.LabelHeight
				}
				colLabel[col] |= AtMin
			}
		case strings.ContainsAny(fl.AxesY, "Ww"):
			west[col] = SideTick
			if col > 0 {
				x += m.TickHeight
			}
		case strings.ContainsRune(fl.AxesY, 'l'):
			west[col] = SideLine
		}

		px[col] = x
		x += fl.ColWidths[col]

		annot = fl.ShareY.Annotate&AtMax != 0
		if fl.ShareY.Active {
			annot = col == lastCol && annot
		} else {
			annot = false
		}
		switch {
		case annot || (!fl.ShareY.Active && strings.ContainsRune(fl.AxesY, 'E')):
			east[col] = SideAnnot
			if col < lastCol {
				x += m.AnnotHeight + m.TickHeight
			}
			if fl.ShareY.HasLabel {
				if col < lastCol {
					x += m.LabelHeight
				}
				colLabel[col] |= AtMax
			}
		case strings.ContainsAny(fl.AxesY, "Ee"):
			east[col] = SideTick
			if col < lastCol {
				x += m.TickHeight
			}
		case strings.ContainsRune(fl.AxesY, 'r'):
			east[col] = SideLine
		}

		if col < lastCol {
			x += fl.Margins[East]
		}
		colDiv[col] = x
	}

	g := &Grid{
		Dim:    fl.Dim,
		Origin: fl.Origin,
		HeadingAnchor: Point{
			X: 0.5 * fl.Dim.W,
			Y: fl.Dim.H + fluff.Heading + fl.Margins[North],
		},
		RowDividers: rowDiv[:lastRow],
		ColDividers: colDiv[:lastCol],
		Panels:      make([]PanelRecord, 0, fl.NPanels()),
	}

	for row := 0; row < fl.Rows; row++ {
		for col := 0; col < fl.Cols; col++ {
			rec := PanelRecord{
				Index:  row*fl.Cols + col,
				Row:    row,
				Col:    col,
				Origin: Point{X: px[col], Y: py[row]},
				Size:   Dim{W: fl.ColWidths[col], H: fl.RowHeights[row]},
				Tag:    NoTag(),
				AnnotX: fl.ShareX.Annotation,
				AnnotY: fl.ShareY.Annotation,
			}
			if !fl.NoFrame {
				rec.Frame = FrameCode{
					West:  west[col],
					East:  east[col],
					South: south[row],
					North: north[row],
				}
			}
			if fl.Tags != nil {
				k := tagIndex(fl.Order, fl.Rows, fl.Cols, row, col)
				t := fl.Tags
				rec.Tag = Tag{
					Text:        t.Render(k),
					Offset:      t.Offset,
					Clearance:   t.Clearance,
					Placement:   t.Placement,
					Justify:     t.Justify,
					Fill:        t.Fill,
					Pen:         t.Pen,
					Shade:       t.Shade,
					ShadeOffset: t.ShadeOffset,
				}
			}
			if rowLabel[row] != 0 {
				rec.LabelX = fl.ShareX.Label
			}
			if colLabel[col] != 0 {
				rec.LabelY = fl.ShareY.Label
			}
			g.Panels = append(g.Panels, rec)
		}
	}
	return g, nil
}
