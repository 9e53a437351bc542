package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/layout"
	"github.com/matzehuels/panelgrid/pkg/settings"
	"github.com/matzehuels/panelgrid/pkg/store"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// beginOptions collects the raw flag values of begin; runBegin parses them
// into a layout.FigureLayout.
type beginOptions struct {
	figureSize string
	panelSize  string
	fractions  string
	aspect     float64

	margins   string
	clearance string
	origin    string

	shareCols string
	shareRows string
	xLabel    string
	yLabel    string
	xLabelAlt string
	yLabelAlt string
	parallel  bool

	xAnnot string
	yAnnot string

	title       string
	panelTitles string

	noFrame bool
	frame   string
	reverse string

	tag          string
	tagOrder     string
	tagRoman     string
	tagPlacement string
	tagJustify   string
	tagOffset    string
	tagClearance string
	tagFill      string
	tagPen       string
	tagShade     string
}

// beginCommand creates the begin command that computes and persists a
// figure's panel grid.
func (c *CLI) beginCommand() *cobra.Command {
	var opts beginOptions

	cmd := &cobra.Command{
		Use:   "begin <rows>x<cols>",
		Short: "Compute a panel grid and start a figure session",
		Long: `Compute the geometry of a <rows>x<cols> panel grid and persist it for the
figure, starting a session that later set calls address panel by panel.

Exactly one of --figure-size (total plottable area, panels derived) and
--panel-size (per-panel sizes, figure derived) must be given. Lengths take
a unit suffix: c (centimeters, default), i (inches) or p (points). A panel
height of 0 derives the height from the width via --aspect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBegin(cmd, args[0], &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.figureSize, "figure-size", "F", "", "total figure dimension <width>/<height>")
	f.StringVarP(&opts.panelSize, "panel-size", "P", "", "per-panel dimension <widths>/<heights> (comma lists allowed)")
	f.StringVar(&opts.fractions, "fractions", "", "relative column/row weights <widths>/<heights> (figure mode)")
	f.Float64Var(&opts.aspect, "aspect", 0, "height/width ratio used for panel height 0")

	f.StringVarP(&opts.margins, "margins", "M", "", "margins between panels: 1, 2 or 4 lengths (w/e/s/n)")
	f.StringVar(&opts.clearance, "clearance", "", "per-side gap inside each panel: 1, 2 or 4 lengths")
	f.StringVarP(&opts.origin, "origin", "X", "", "figure origin <x>/<y>")

	f.StringVar(&opts.shareCols, "share-cols", "", "columns share an x-range; annotate b, t or both")
	f.StringVar(&opts.shareRows, "share-rows", "", "rows share a y-range; annotate l, r or both")
	f.Lookup("share-cols").NoOptDefVal = "both"
	f.Lookup("share-rows").NoOptDefVal = "both"
	f.StringVar(&opts.xLabel, "x-label", "", "shared x-axis label")
	f.StringVar(&opts.yLabel, "y-label", "", "shared y-axis label")
	f.StringVar(&opts.xLabelAlt, "x-label-alt", "", "secondary x-axis label for the opposite side")
	f.StringVar(&opts.yLabelAlt, "y-label-alt", "", "secondary y-axis label for the opposite side")
	f.BoolVar(&opts.parallel, "parallel", false, "render y annotations parallel to the axis")

	f.StringVar(&opts.xAnnot, "x-annot", "af", "x annotation interval/format spec")
	f.StringVar(&opts.yAnnot, "y-annot", "af", "y annotation interval/format spec")

	f.StringVarP(&opts.title, "title", "T", "", "figure heading above the grid")
	f.StringVar(&opts.panelTitles, "panel-titles", "", "reserve panel title space: all or first-row")
	f.Lookup("panel-titles").NoOptDefVal = "all"

	f.BoolVar(&opts.noFrame, "no-frame", false, "draw no panel frames at all")
	f.StringVarP(&opts.frame, "frame", "B", "", "explicit frame sides (WwEeSsNnlrbt tokens)")
	f.StringVar(&opts.reverse, "reverse", "", "reverse axis direction: x, y or both")
	f.Lookup("reverse").NoOptDefVal = "both"

	f.StringVarP(&opts.tag, "tag", "A", "", "automatic panel tags, e.g. '(a)' or 'i.'")
	f.Lookup("tag").NoOptDefVal = "a)"
	f.StringVar(&opts.tagOrder, "tag-order", "rows", "tag numbering order: rows or cols")
	f.StringVar(&opts.tagRoman, "tag-roman", "", "roman numerals for number tags: lower or upper")
	f.StringVar(&opts.tagPlacement, "tag-placement", "TL", "tag reference corner")
	f.StringVar(&opts.tagJustify, "tag-justify", "", "tag justification (default: same as placement)")
	f.StringVar(&opts.tagOffset, "tag-offset", "", "tag offset from its corner: 1 or 2 lengths")
	f.StringVar(&opts.tagClearance, "tag-clearance", "", "clearance around the tag text: 1 or 2 lengths")
	f.StringVar(&opts.tagFill, "tag-fill", "", "tag box fill color")
	f.StringVar(&opts.tagPen, "tag-pen", "", "tag box outline pen")
	f.StringVar(&opts.tagShade, "tag-shade", "", "tag box drop shadow color")

	return cmd
}

func (c *CLI) runBegin(cmd *cobra.Command, gridArg string, opts *beginOptions) error {
	rows, cols, err := parseGrid(gridArg)
	if err != nil {
		return err
	}

	s, fig, err := c.newStore()
	if err != nil {
		return err
	}
	cfg, err := settings.Load(filepath.Join(c.sessionDir(), "panelgrid.toml"))
	if err != nil {
		return err
	}

	fl := layout.FigureLayout{Rows: rows, Cols: cols}
	if err := applyOptions(&fl, cmd, opts, cfg); err != nil {
		return err
	}

	// Baseline side selection, honoring any explicit --frame override. An
	// "auto" default from the settings resolves to the stock selection and
	// the per-figure snapshot records the outcome.
	frameAxes := cfg.FrameAxes
	autoAxes := frameAxes == "" || frameAxes == "auto"
	if autoAxes {
		frameAxes = "WSen"
	}
	fl.AxesX, fl.AxesY = layout.ResolveSides(frameAxes, opts.frame, fl.ShareX.Active, fl.ShareY.Active)
	if autoAxes {
		snap := cfg
		snap.FrameAxes = fl.AxesY + fl.AxesX
		if err := snap.Save(s.SnapshotPath(fig)); err != nil {
			return err
		}
	}

	style := layout.Style{
		FontAnnot:     cfg.FontAnnot,
		FontLabel:     cfg.FontLabel,
		FontTitle:     cfg.FontTitle,
		TickLength:    cfg.TickLength,
		AnnotOffset:   cfg.AnnotOffset,
		LabelOffset:   cfg.LabelOffset,
		TitleOffset:   cfg.TitleOffset,
		HeadingOffset: cfg.HeadingOffset,
		Inside:        cfg.Inside(),
	}
	metrics := layout.Metrics(style, fl.NoFrame)
	fluff := layout.PlanFluff(&fl, metrics, c.Logger.Debugf)

	req, err := dimRequest(opts)
	if err != nil {
		return err
	}
	fl.ColWidths, fl.RowHeights, fl.Dim, err = layout.Resolve(req, rows, cols, fluff.X, fluff.Y)
	if err != nil {
		return err
	}
	c.Logger.Debug("dimensions resolved",
		"figure", fmt.Sprintf("%gx%g", fl.Dim.W, fl.Dim.H),
		"widths", fl.ColWidths, "heights", fl.RowHeights)

	grid, err := layout.Build(&fl, metrics, fluff)
	if err != nil {
		return err
	}

	st := &store.State{
		Command:       appName + " " + strings.Join(os.Args[1:], " "),
		Heading:       fl.Heading,
		HeadingAnchor: grid.HeadingAnchor,
		Origin:        fl.Origin,
		Dim:           fl.Dim,
		Parallel:      fl.ShareY.Parallel,
		Inside:        cfg.Inside(),
		Clearance:     fl.Clearance,
		DirX:          fl.DirX,
		DirY:          fl.DirY,
		Rows:          rows,
		Cols:          cols,
		Order:         fl.Order,
		Tagged:        fl.Tags != nil,
		Panels:        grid.Panels,
	}
	if err := s.Save(fig, st); err != nil {
		return err
	}

	printSuccess("Figure %d: %dx%d grid, %s x %s",
		fig, rows, cols, units.Format(fl.Dim.W)+"c", units.Format(fl.Dim.H)+"c")
	printDetail("%d panels, %s order", len(grid.Panels), fl.Order)
	printNewline()
	printNextStep("Select the first panel", appName+" set")
	return nil
}

// applyOptions fills the figure layout from parsed begin flags.
func applyOptions(fl *layout.FigureLayout, cmd *cobra.Command, opts *beginOptions, cfg settings.Settings) error {
	m := cfg.MarginDefault()
	fl.Margins = [4]float64{m, m, m, m}
	if opts.margins != "" {
		var err error
		if fl.Margins, err = parseSides(opts.margins); err != nil {
			return err
		}
	}
	if opts.clearance != "" {
		var err error
		if fl.Clearance, err = parseSides(opts.clearance); err != nil {
			return err
		}
	}
	if opts.origin != "" {
		var err error
		if fl.Origin, err = parseOrigin(opts.origin); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("share-cols") {
		place, err := parseShare(opts.shareCols, "b", "t")
		if err != nil {
			return err
		}
		fl.ShareX = layout.AxisShare{Active: true, Annotate: place, Tick: layout.AtBoth}
	}
	if cmd.Flags().Changed("share-rows") {
		place, err := parseShare(opts.shareRows, "l", "r")
		if err != nil {
			return err
		}
		fl.ShareY = layout.AxisShare{Active: true, Annotate: place, Tick: layout.AtBoth}
	}
	if opts.xLabel != "" || opts.xLabelAlt != "" {
		fl.ShareX.HasLabel = true
		fl.ShareX.Label = opts.xLabel
		fl.ShareX.Secondary = opts.xLabelAlt
	}
	if opts.yLabel != "" || opts.yLabelAlt != "" {
		fl.ShareY.HasLabel = true
		fl.ShareY.Label = opts.yLabel
		fl.ShareY.Secondary = opts.yLabelAlt
	}
	fl.ShareX.Annotation = opts.xAnnot
	fl.ShareY.Annotation = opts.yAnnot
	fl.ShareY.Parallel = opts.parallel

	fl.Heading = opts.title
	if cmd.Flags().Changed("panel-titles") {
		mode, err := parseTitleMode(opts.panelTitles)
		if err != nil {
			return err
		}
		fl.TitleMode = mode
	}

	fl.NoFrame = opts.noFrame
	switch opts.reverse {
	case "":
	case "x":
		fl.DirX = -1
	case "y":
		fl.DirY = -1
	case "both":
		fl.DirX, fl.DirY = -1, -1
	default:
		return errors.New(errors.ErrCodeInvalidDimension,
			"reverse takes x, y or both, got %q", opts.reverse)
	}

	switch opts.tagOrder {
	case "", "rows":
		fl.Order = layout.RowMajor
	case "cols":
		fl.Order = layout.ColMajor
	default:
		return errors.New(errors.ErrCodeInvalidTag, "tag order must be rows or cols, got %q", opts.tagOrder)
	}

	if cmd.Flags().Changed("tag") {
		tags, err := buildTagSpec(opts, cfg)
		if err != nil {
			return err
		}
		fl.Tags = &tags
	}
	return nil
}

// buildTagSpec combines the compact --tag value with the tag styling flags
// and the settings-derived defaults.
func buildTagSpec(opts *beginOptions, cfg settings.Settings) (layout.TagSpec, error) {
	spec, err := parseTagSpec(opts.tag)
	if err != nil {
		return spec, err
	}

	switch opts.tagRoman {
	case "":
	case "lower":
		spec.Roman = layout.RomanLower
	case "upper":
		spec.Roman = layout.RomanUpper
	default:
		return spec, errors.New(errors.ErrCodeInvalidTag,
			"tag roman style must be lower or upper, got %q", opts.tagRoman)
	}
	if spec.Roman != layout.RomanNone {
		if spec.Mode != layout.TagNumber {
			return spec, errors.New(errors.ErrCodeInvalidTag,
				"roman numerals need a numeric tag spec, got %q", opts.tag)
		}
	}

	spec.Placement = opts.tagPlacement
	spec.Justify = opts.tagJustify
	if spec.Justify == "" {
		spec.Justify = spec.Placement
	}

	off := cfg.TagOffsetDefault()
	spec.Offset = [2]float64{off, off}
	if opts.tagOffset != "" {
		pair, err := parsePair(opts.tagOffset)
		if err != nil {
			return spec, err
		}
		spec.Offset = pair
	}
	if opts.tagFill != "" {
		spec.Fill = opts.tagFill
	}
	if opts.tagPen != "" {
		spec.Pen = opts.tagPen
	}
	if opts.tagShade != "" {
		spec.Shade = opts.tagShade
		spec.ShadeOffset = [2]float64{0.1, -0.1}
	}
	if spec.Fill != "-" || spec.Pen != "-" {
		cl := cfg.TagClearanceDefault()
		spec.Clearance = [2]float64{cl, cl}
	}
	if opts.tagClearance != "" {
		pair, err := parsePair(opts.tagClearance)
		if err != nil {
			return spec, err
		}
		spec.Clearance = pair
	}
	return spec, nil
}

// parsePair parses one or two slash-separated lengths into an x/y pair.
func parsePair(s string) ([2]float64, error) {
	vals, err := units.ParseList(s)
	if err != nil {
		return [2]float64{}, err
	}
	switch len(vals) {
	case 1:
		return [2]float64{vals[0], vals[0]}, nil
	case 2:
		return [2]float64{vals[0], vals[1]}, nil
	}
	return [2]float64{}, errors.New(errors.ErrCodeInvalidTag,
		"expected 1 or 2 lengths, got %d", len(vals))
}

// dimRequest builds the dimension resolver input from the size flags.
func dimRequest(opts *beginOptions) (layout.DimRequest, error) {
	var req layout.DimRequest
	switch {
	case opts.figureSize != "" && opts.panelSize != "":
		return req, errors.New(errors.ErrCodeInvalidDimension,
			"--figure-size and --panel-size are mutually exclusive")
	case opts.figureSize != "":
		w, h, err := parseDim(opts.figureSize)
		if err != nil {
			return req, err
		}
		if len(w) != 1 || len(h) != 1 {
			return req, errors.New(errors.ErrCodeInvalidDimension,
				"--figure-size takes a single width and height")
		}
		req.Mode = layout.FigureDim
		req.Width, req.Height = w[0], h[0]
		if opts.fractions != "" {
			if req.WFracs, req.HFracs, err = parseFractions(opts.fractions); err != nil {
				return req, err
			}
		}
	case opts.panelSize != "":
		if opts.fractions != "" {
			return req, errors.New(errors.ErrCodeInvalidDimension,
				"--fractions only applies to --figure-size layouts")
		}
		w, h, err := parseDim(opts.panelSize)
		if err != nil {
			return req, err
		}
		req.Mode = layout.PanelDim
		req.Widths, req.Heights = w, h
		if opts.aspect > 0 {
			ratio := opts.aspect
			req.AspectRatio = func() float64 { return ratio }
		}
	default:
		return req, errors.New(errors.ErrCodeInvalidDimension,
			"one of --figure-size or --panel-size is required")
	}
	return req, nil
}
