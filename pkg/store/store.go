// Package store persists figure layouts across process invocations.
//
// Each figure owns a small family of line-oriented text files in a
// session-scoped directory, keyed by the integer figure id: the layout
// file with one data row per panel, an ordering file, a tag sentinel and
// the cursor marker. Writers commit atomically (fresh file, then rename)
// so a concurrent reader never observes a partial layout.
package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/layout"
)

// groupSep separates the free-text trailing fields of a panel row (frame
// code, labels, annotation specs), which may themselves contain spaces.
const groupSep = "\x1d"

// Store is a file-backed layout store rooted at one session directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// New creates a store in the given session directory, creating it if
// needed. A nil logger falls back to the package default.
func New(dir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create session dir %s", dir)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the session directory the store roots its files in.
func (s *Store) Dir() string { return s.dir }

func (s *Store) layoutPath(fig int) string {
	return filepath.Join(s.dir, fmt.Sprintf("subplot.%d", fig))
}

func (s *Store) orderPath(fig int) string {
	return filepath.Join(s.dir, fmt.Sprintf("subplotorder.%d", fig))
}

func (s *Store) tagsPath(fig int) string {
	return filepath.Join(s.dir, fmt.Sprintf("tags.%d", fig))
}

func (s *Store) cursorPath(fig int) string {
	return filepath.Join(s.dir, fmt.Sprintf("panel.%d", fig))
}

// SnapshotPath is where the per-figure settings snapshot lives. The store
// does not read it; it only shares the figure's lifecycle.
func (s *Store) SnapshotPath(fig int) string {
	return filepath.Join(s.dir, fmt.Sprintf("settings.%d.toml", fig))
}

// State is everything the store persists for one figure: the figure-level
// metadata header plus one record per panel.
type State struct {
	Command string // command line echoed into the layout file header

	Heading       string
	HeadingAnchor layout.Point

	Origin layout.Point
	Dim    layout.Dim

	Parallel  bool
	Inside    bool
	Clearance [4]float64
	DirX      int
	DirY      int

	Rows, Cols int
	Order      layout.Order
	Tagged     bool

	Panels []layout.PanelRecord
}

// Exists reports whether a committed layout exists for the figure.
func (s *Store) Exists(fig int) bool {
	_, err := os.Stat(s.layoutPath(fig))
	return err == nil
}

// Save commits the figure state. A leftover layout from a begin that never
// reached its end is purged first with a warning; states are never merged.
// The layout file is written to a temp name and renamed into place so
// readers in other processes only ever see a complete file.
func (s *Store) Save(fig int, st *State) error {
	if s.Exists(fig) {
		s.logger.Warn("previous layout was never finalized, removing it", "figure", fig)
		if err := s.Delete(fig); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	writeHeader(&buf, st)
	for i := range st.Panels {
		writePanel(&buf, st, &st.Panels[i])
	}

	path := s.layoutPath(fig)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write layout for figure %d", fig)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "commit layout for figure %d", fig)
	}

	order := fmt.Sprintf("%d %d %d\n", st.Rows, st.Cols, int(st.Order))
	if err := os.WriteFile(s.orderPath(fig), []byte(order), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write ordering for figure %d", fig)
	}

	if st.Tagged {
		if err := os.WriteFile(s.tagsPath(fig), nil, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write tag sentinel for figure %d", fig)
		}
	}
	return nil
}

// Load reads the committed state for the figure. A missing layout file is
// a session error: the caller never ran begin, or already ran end.
func (s *Store) Load(fig int) (*State, error) {
	data, err := os.ReadFile(s.layoutPath(fig))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNoSession, "no active layout for figure %d", fig)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read layout for figure %d", fig)
	}

	st := &State{Order: layout.RowMajor}
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if err := parseHeaderLine(st, line); err != nil {
				return nil, err
			}
			continue
		}
		rec, rows, cols, err := parsePanel(line)
		if err != nil {
			return nil, err
		}
		st.Rows, st.Cols = rows, cols
		st.Panels = append(st.Panels, rec)
	}
	if len(st.Panels) == 0 {
		return nil, errors.New(errors.ErrCodeIO, "layout for figure %d has no panels", fig)
	}
	if len(st.Panels) != st.Rows*st.Cols {
		return nil, errors.New(errors.ErrCodeIO,
			"layout for figure %d has %d panels for a %dx%d grid", fig, len(st.Panels), st.Rows, st.Cols)
	}

	if data, err := os.ReadFile(s.orderPath(fig)); err == nil {
		var rows, cols, order int
		if n, _ := fmt.Sscanf(string(data), "%d %d %d", &rows, &cols, &order); n == 3 {
			st.Order = layout.Order(order)
		}
	}
	if _, err := os.Stat(s.tagsPath(fig)); err == nil {
		st.Tagged = true
	}
	return st, nil
}

// Delete removes every artifact of the figure. Missing files are fine;
// after Delete a Load for the same figure reports no active layout.
func (s *Store) Delete(fig int) error {
	for _, path := range []string{
		s.layoutPath(fig), s.orderPath(fig), s.tagsPath(fig), s.cursorPath(fig),
		s.SnapshotPath(fig),
	} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeIO, err, "remove %s", path)
		}
	}
	return nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeHeader(buf *bytes.Buffer, st *State) {
	fmt.Fprintf(buf, "# Command: %s\n", st.Command)
	if st.Heading != "" {
		fmt.Fprintf(buf, "# Heading: %s %s %s\n",
			fmtFloat(st.HeadingAnchor.X), fmtFloat(st.HeadingAnchor.Y), st.Heading)
	}
	fmt.Fprintf(buf, "# Origin: %s %s\n", fmtFloat(st.Origin.X), fmtFloat(st.Origin.Y))
	fmt.Fprintf(buf, "# Dimension: %s %s\n", fmtFloat(st.Dim.W), fmtFloat(st.Dim.H))
	fmt.Fprintf(buf, "# Parallel: %s\n", boolFlag(st.Parallel))
	fmt.Fprintf(buf, "# Inside: %s\n", boolFlag(st.Inside))
	if st.Clearance != [4]float64{} {
		fmt.Fprintf(buf, "# Clearance: %s %s %s %s\n",
			fmtFloat(st.Clearance[layout.West]), fmtFloat(st.Clearance[layout.East]),
			fmtFloat(st.Clearance[layout.South]), fmtFloat(st.Clearance[layout.North]))
	}
	if st.DirX != 0 || st.DirY != 0 {
		fmt.Fprintf(buf, "# Direction: %d %d\n", st.DirX, st.DirY)
	}
}

func writePanel(buf *bytes.Buffer, st *State, p *layout.PanelRecord) {
	fields := []string{
		strconv.Itoa(p.Index),
		strconv.Itoa(p.Row),
		strconv.Itoa(p.Col),
		strconv.Itoa(st.Rows),
		strconv.Itoa(st.Cols),
		fmtFloat(p.Origin.X),
		fmtFloat(p.Origin.Y),
		fmtFloat(p.Size.W),
		fmtFloat(p.Size.H),
		p.Tag.Text,
		fmtFloat(p.Tag.Offset[0]),
		fmtFloat(p.Tag.Offset[1]),
		fmtFloat(p.Tag.Clearance[0]),
		fmtFloat(p.Tag.Clearance[1]),
		p.Tag.Placement,
		p.Tag.Justify,
		p.Tag.Fill,
		p.Tag.Pen,
		fmtFloat(p.Tag.ShadeOffset[0]),
		fmtFloat(p.Tag.ShadeOffset[1]),
		p.Tag.Shade,
	}
	buf.WriteString(strings.Join(fields, "\t"))
	for _, extra := range []string{
		p.Frame.String(), p.LabelX, p.LabelY, p.AnnotX, p.AnnotY,
	} {
		buf.WriteString(groupSep)
		buf.WriteString(extra)
	}
	buf.WriteByte('\n')
}

func parseHeaderLine(st *State, line string) error {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, value, ok := strings.Cut(body, ":")
	if !ok {
		return nil // bare comment
	}
	value = strings.TrimSpace(value)

	switch key {
	case "Command":
		st.Command = value
	case "Heading":
		parts := strings.SplitN(value, " ", 3)
		if len(parts) == 3 {
			st.HeadingAnchor.X, _ = strconv.ParseFloat(parts[0], 64)
			st.HeadingAnchor.Y, _ = strconv.ParseFloat(parts[1], 64)
			st.Heading = parts[2]
		}
	case "Origin":
		fmt.Sscanf(value, "%g %g", &st.Origin.X, &st.Origin.Y)
	case "Dimension":
		fmt.Sscanf(value, "%g %g", &st.Dim.W, &st.Dim.H)
	case "Parallel":
		st.Parallel = value == "1"
	case "Inside":
		st.Inside = value == "1"
	case "Clearance":
		fmt.Sscanf(value, "%g %g %g %g",
			&st.Clearance[layout.West], &st.Clearance[layout.East],
			&st.Clearance[layout.South], &st.Clearance[layout.North])
	case "Direction":
		fmt.Sscanf(value, "%d %d", &st.DirX, &st.DirY)
	}
	return nil
}

func parsePanel(line string) (rec layout.PanelRecord, rows, cols int, err error) {
	groups := strings.Split(line, groupSep)
	if len(groups) != 6 {
		return rec, 0, 0, errors.New(errors.ErrCodeIO, "malformed panel row: %d field groups", len(groups))
	}
	fields := strings.Split(groups[0], "\t")
	if len(fields) != 21 {
		return rec, 0, 0, errors.New(errors.ErrCodeIO, "malformed panel row: %d fields", len(fields))
	}

	ints := make([]int, 5)
	for i := 0; i < 5; i++ {
		if ints[i], err = strconv.Atoi(fields[i]); err != nil {
			return rec, 0, 0, errors.Wrap(errors.ErrCodeIO, err, "panel row field %d", i)
		}
	}
	floats := map[int]*float64{
		5:  &rec.Origin.X,
		6:  &rec.Origin.Y,
		7:  &rec.Size.W,
		8:  &rec.Size.H,
		10: &rec.Tag.Offset[0],
		11: &rec.Tag.Offset[1],
		12: &rec.Tag.Clearance[0],
		13: &rec.Tag.Clearance[1],
		18: &rec.Tag.ShadeOffset[0],
		19: &rec.Tag.ShadeOffset[1],
	}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(fields[i], 64); err != nil {
			return rec, 0, 0, errors.Wrap(errors.ErrCodeIO, err, "panel row field %d", i)
		}
	}

	rec.Index, rec.Row, rec.Col = ints[0], ints[1], ints[2]
	rows, cols = ints[3], ints[4]
	rec.Tag.Text = fields[9]
	rec.Tag.Placement = fields[14]
	rec.Tag.Justify = fields[15]
	rec.Tag.Fill = fields[16]
	rec.Tag.Pen = fields[17]
	rec.Tag.Shade = fields[20]

	rec.Frame = layout.ParseFrameCode(groups[1])
	rec.LabelX = groups[2]
	rec.LabelY = groups[3]
	rec.AnnotX = groups[4]
	rec.AnnotY = groups[5]
	return rec, rows, cols, nil
}
