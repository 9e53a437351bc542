package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panelgrid.toml")
	content := "font_annot = 10.0\nframe_type = \"inside\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.FontAnnot)
	assert.True(t, s.Inside(), "frame_type=inside should report Inside()")
	// Untouched fields keep defaults.
	assert.Equal(t, Default().FontLabel, s.FontLabel)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.toml")
	s := Default()
	s.FrameAxes = "WSen" // as if resolved from "auto" during begin
	require.NoError(t, s.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDerivedDefaults(t *testing.T) {
	s := Default()

	// Half the 12pt annotation font, converted to cm.
	assert.InDelta(t, 0.5*12*2.54/72, s.MarginDefault(), 1e-9)
	assert.Positive(t, s.TagOffsetDefault())
	assert.Positive(t, s.TagClearanceDefault())
	assert.False(t, s.Inside(), "default frame type should be outside")
}
