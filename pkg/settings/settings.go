// Package settings provides the plotting style settings consumed by the
// layout engine.
//
// Settings are read once at the start of a begin operation and passed to the
// layout core as an immutable value; nothing in the core reads ambient
// configuration mid-computation. The on-disk format is TOML, typically a
// panelgrid.toml in the session directory. Missing files yield the defaults.
//
// Font sizes are in points; lengths and offsets are in centimeters.
package settings

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// Settings holds the style values that influence panel geometry.
type Settings struct {
	FontAnnot   float64 `toml:"font_annot"`   // annotation font size (pt)
	FontLabel   float64 `toml:"font_label"`   // axis label font size (pt)
	FontTitle   float64 `toml:"font_title"`   // panel title font size (pt)
	FontHeading float64 `toml:"font_heading"` // figure heading font size (pt)
	FontTag     float64 `toml:"font_tag"`     // panel tag font size (pt)

	TickLength    float64 `toml:"tick_length"`    // axis tick length (cm)
	AnnotOffset   float64 `toml:"annot_offset"`   // frame to annotation gap (cm)
	LabelOffset   float64 `toml:"label_offset"`   // annotation to label gap (cm)
	TitleOffset   float64 `toml:"title_offset"`   // frame to title gap (cm)
	HeadingOffset float64 `toml:"heading_offset"` // figure top to heading gap (cm)

	// FrameType selects where ticks and annotations are drawn relative to
	// the panel boundary: "outside" (default) or "inside". Inside frames
	// consume no exterior space.
	FrameType string `toml:"frame_type"`

	// FrameAxes is the default side selection applied when no sharing mode
	// or explicit frame override decides the sides. Uppercase letters
	// annotate+tick, lowercase tick only, and the special "auto" value is
	// resolved during begin and written back to the per-figure snapshot.
	FrameAxes string `toml:"frame_axes"`
}

// Default returns the stock style settings.
func Default() Settings {
	return Settings{
		FontAnnot:     12,
		FontLabel:     16,
		FontTitle:     20,
		FontHeading:   32,
		FontTag:       20,
		TickLength:    0.15,
		AnnotOffset:   0.2,
		LabelOffset:   0.3,
		TitleOffset:   0.35,
		HeadingOffset: 0.45,
		FrameType:     "outside",
		FrameAxes:     "auto",
	}
}

// Load reads settings from a TOML file, falling back to defaults for any
// field the file omits. A missing file is not an error: scripts rarely
// customize the style.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeIO, err, "read settings %s", path)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(errors.ErrCodeIO, err, "parse settings %s", path)
	}
	return s, nil
}

// Save writes the settings to a TOML file. Used for the per-figure snapshot
// that records the resolved frame axes when FrameAxes was "auto".
func (s Settings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create settings %s", path)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode settings %s", path)
	}
	return nil
}

// Inside reports whether the frame type places ticks and annotations inside
// the panel, where they consume no layout space.
func (s Settings) Inside() bool {
	return s.FrameType == "inside"
}

// MarginDefault returns the default per-side panel margin: half the
// annotation font height, so that one annotation row fits in the gap formed
// by two facing margins.
func (s Settings) MarginDefault() float64 {
	return 0.5 * units.FromPoints(s.FontAnnot)
}

// TagOffsetDefault returns the default tag offset from its reference point,
// 20% of the tag font size.
func (s Settings) TagOffsetDefault() float64 {
	return 0.20 * units.FromPoints(s.FontTag)
}

// TagClearanceDefault returns the default clearance between tag text and its
// backing rectangle, 15% of the tag font size.
func (s Settings) TagClearanceDefault() float64 {
	return 0.15 * units.FromPoints(s.FontTag)
}
