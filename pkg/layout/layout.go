// Package layout computes the geometry of a grid of plot panels inside a
// composite figure.
//
// The package is a pure core: it consumes an immutable style snapshot plus a
// figure description and produces absolute panel origins, sizes, per-side
// frame codes, tags and axis labels. Nothing here touches disk or ambient
// configuration; persistence lives in pkg/store and option parsing in the
// CLI layer.
//
// The computation runs in three stages:
//
//  1. The axis-sharing planner decides which panel sides carry ticks,
//     annotations and labels, and how much "fluff" (decoration space) each
//     row and column boundary consumes.
//  2. The dimension resolver converts either a figure dimension or per-panel
//     dimensions into the complementary quantity, given the fluff.
//  3. The grid builder walks the rows top-to-bottom and columns
//     left-to-right, emitting one PanelRecord per cell.
package layout

import (
	"strings"
)

// letterHeight approximates the height of a capital letter as a fraction of
// the font size.
const letterHeight = 0.736

// Side indexes the four edges of a panel.
type Side int

// Panel sides, also used to index margin and clearance arrays.
const (
	West Side = iota
	East
	South
	North
)

// SideMode describes what a panel edge receives.
type SideMode uint8

// Edge treatments, ordered from least to most decorated.
const (
	SideNone  SideMode = iota // no frame line at all
	SideLine                  // frame line only
	SideTick                  // frame line and tick marks
	SideAnnot                 // frame line, ticks and annotation text
)

// Place selects which extreme side(s) of a shared axis are annotated.
type Place uint8

// Placement flags; AtBoth annotates both extremes.
const (
	AtMin Place = 1 << iota
	AtMax
)

// AtBoth annotates both the minimum and maximum side.
const AtBoth = AtMin | AtMax

// Order is the panel numbering direction for tags.
type Order int

// Tag numbering orders.
const (
	RowMajor Order = iota
	ColMajor
)

func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// TitleMode selects how much vertical space panel titles reserve.
type TitleMode int

// Panel title modes.
const (
	TitleNone     TitleMode = iota
	TitleFirstRow           // titles on the top row only
	TitleAll                // every panel gets title space
)

// Point is a 2-D position in centimeters.
type Point struct {
	X, Y float64
}

// Dim is a width/height pair in centimeters.
type Dim struct {
	W, H float64
}

// AxisShare configures sharing for one axis dimension. The X instance
// governs the south/north sides (panels in a column share an x-range), the
// Y instance the west/east sides (panels in a row share a y-range).
type AxisShare struct {
	Active   bool   // sharing mode on for this dimension
	Annotate Place  // which extreme side(s) carry annotation text
	Tick     Place  // which extreme side(s) carry ticks
	HasLabel bool   // reserve space for an axis label
	Label    string // the shared axis label, may be empty even when HasLabel
	Secondary string // alternate label text
	Parallel bool   // annotations parallel to axis (y dimension only)
	Annotation string // annotation interval/format spec, default "af"
}

// Style is the immutable style snapshot the layout consumes. The CLI fills
// it from pkg/settings once per begin; font sizes are in points, lengths in
// centimeters.
type Style struct {
	FontAnnot     float64
	FontLabel     float64
	FontTitle     float64
	TickLength    float64
	AnnotOffset   float64
	LabelOffset   float64
	TitleOffset   float64
	HeadingOffset float64
	Inside        bool // frame type draws decorations inside the panel
}

// FrameMetrics is the decoration space derived from a Style: the vertical
// extent each feature consumes on an exterior panel side.
type FrameMetrics struct {
	TickHeight    float64
	AnnotHeight   float64
	LabelHeight   float64
	TitleHeight   float64
	HeadingOffset float64
}

// Metrics computes frame metrics from a style snapshot. With an inside
// frame type, ticks, annotations and labels consume no exterior space.
// With noFrame they are dropped entirely regardless of frame type.
func Metrics(st Style, noFrame bool) FrameMetrics {
	scale := 1.0
	if st.Inside {
		scale = 0.0
	}
	cm := 2.54 / 72.0 // points to centimeters
	m := FrameMetrics{
		TickHeight:    scale * max(0, st.TickLength),
		AnnotHeight:   scale * (letterHeight*st.FontAnnot*cm + max(0, st.AnnotOffset)),
		LabelHeight:   scale * (letterHeight*st.FontLabel*cm + max(0, st.LabelOffset)),
		TitleHeight:   letterHeight*st.FontTitle*cm + st.TitleOffset,
		HeadingOffset: st.HeadingOffset,
	}
	if noFrame {
		m.TickHeight = 0
		m.AnnotHeight = 0
		m.LabelHeight = 0
	}
	return m
}

// FrameCode is the per-side edge treatment of one panel.
type FrameCode [4]SideMode

// sideTokens maps a side to its annotate/tick/line letters, in the order the
// state file writes them (west, east, north, south).
var sideTokens = []struct {
	side  Side
	annot byte
	tick  byte
	line  byte
}{
	{West, 'W', 'w', 'l'},
	{East, 'E', 'e', 'r'},
	{North, 'N', 'n', 't'},
	{South, 'S', 's', 'b'},
}

// String encodes the frame code as side tokens: uppercase for
// annotate+tick, lowercase for tick only, b/t/l/r for a bare frame line.
// An empty string means no sides are drawn.
func (f FrameCode) String() string {
	var b strings.Builder
	for _, tok := range sideTokens {
		switch f[tok.side] {
		case SideAnnot:
			b.WriteByte(tok.annot)
		case SideTick:
			b.WriteByte(tok.tick)
		case SideLine:
			b.WriteByte(tok.line)
		}
	}
	return b.String()
}

// ParseFrameCode decodes a side-token string produced by String. Unknown
// characters are ignored so explicit frame overrides with modifiers can be
// passed through untouched.
func ParseFrameCode(s string) FrameCode {
	var f FrameCode
	for _, tok := range sideTokens {
		if strings.IndexByte(s, tok.annot) >= 0 {
			f[tok.side] = SideAnnot
		} else if strings.IndexByte(s, tok.tick) >= 0 {
			f[tok.side] = SideTick
		} else if strings.IndexByte(s, tok.line) >= 0 {
			f[tok.side] = SideLine
		}
	}
	return f
}

// Tag is the rendered per-panel tag with its placement attributes.
type Tag struct {
	Text        string
	Offset      [2]float64 // dx, dy from the reference point
	Clearance   [2]float64 // padding around the text box
	Placement   string     // reference point, e.g. "TL"
	Justify     string     // text justification relative to the point
	Fill        string     // box fill, "-" for none
	Pen         string     // box outline pen, "-" for none
	ShadeOffset [2]float64
	Shade       string // drop shadow fill, "-" for none
}

// NoTag is the filler written for panels without a tag.
func NoTag() Tag {
	return Tag{Text: "-", Placement: "BL", Justify: "BL", Fill: "-", Pen: "-", Shade: "-"}
}

// PanelRecord is the complete geometry of one grid cell. Records are
// immutable once built; the store persists them verbatim.
type PanelRecord struct {
	Index int // linear index in row-major storage order
	Row   int // 0-based, top row first
	Col   int // 0-based, leftmost column first

	Origin Point // lower-left corner relative to the figure origin
	Size   Dim

	Frame  FrameCode
	Tag    Tag
	LabelX string // x-axis label, set only on rows that carry it
	LabelY string // y-axis label, set only on columns that carry it
	AnnotX string // x annotation interval/format spec
	AnnotY string // y annotation interval/format spec
}

// FigureLayout describes one figure's grid before building. ColWidths and
// RowHeights are filled by the dimension resolver.
type FigureLayout struct {
	Rows, Cols int
	Origin     Point
	Dim        Dim // full plottable area, set by the resolver

	ColWidths  []float64
	RowHeights []float64

	Margins   [4]float64 // interior margin per Side
	Clearance [4]float64 // per-side gap inside each panel, persisted only

	Order  Order
	ShareX AxisShare // south/north sides
	ShareY AxisShare // west/east sides

	// AxesX and AxesY are the resolved baseline side selections for
	// non-shared axes, as side tokens (SsNnbt and WwEelr respectively).
	AxesX string
	AxesY string

	Heading   string // figure heading text, empty for none
	TitleMode TitleMode
	NoFrame   bool

	Tags *TagSpec // nil when tagging is disabled

	// DirX and DirY are optional axis direction signs (+1 or -1); zero
	// means unset.
	DirX, DirY int
}

// NPanels returns rows*cols.
func (f *FigureLayout) NPanels() int {
	return f.Rows * f.Cols
}

// ResolveSides determines the baseline side selections for both dimensions
// from the default frame axes string, honoring active sharing modes: a
// shared x dimension forces S and N (the extremes get the annotations), a
// shared y dimension forces W and E. When the caller passed an explicit
// frame override those tokens win, lowercased on a shared dimension so the
// interior boundaries keep ticks without annotations.
func ResolveSides(frameAxes, override string, shareX, shareY bool) (axesX, axesY string) {
	src := frameAxes
	explicit := override != ""
	if explicit {
		src = override
	}

	pick := func(items string) string {
		var b strings.Builder
		for i := 0; i < len(items); i++ {
			if strings.IndexByte(src, items[i]) >= 0 {
				b.WriteByte(items[i])
			}
		}
		return b.String()
	}
	pickFirst := func(groups ...string) string {
		var b strings.Builder
		for _, g := range groups {
			for i := 0; i < len(g); i++ {
				if strings.IndexByte(src, g[i]) >= 0 {
					b.WriteByte(g[i])
					break
				}
			}
		}
		return b.String()
	}

	if explicit {
		axesX = pick("SsNnbt")
		axesY = pick("WwEelr")
		if shareX {
			axesX = strings.ToLower(axesX)
		}
		if shareY {
			axesY = strings.ToLower(axesY)
		}
		return axesX, axesY
	}

	if shareX {
		axesX = "SN"
	} else {
		axesX = pickFirst("Ssb", "Nnt")
	}
	if shareY {
		axesY = "WE"
	} else {
		axesY = pickFirst("Wwl", "Eer")
	}
	return axesX, axesY
}
