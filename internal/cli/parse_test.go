package cli

import (
	"testing"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/layout"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		in         string
		rows, cols int
		wantErr    bool
	}{
		{"2x3", 2, 3, false},
		{"1x1", 1, 1, false},
		{"10X4", 10, 4, false},
		{"2", 0, 0, true},
		{"0x3", 0, 0, true},
		{"2x-1", 0, 0, true},
		{"axb", 0, 0, true},
	}

	for _, tt := range tests {
		rows, cols, err := parseGrid(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseGrid(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGrid(%q): %v", tt.in, err)
			continue
		}
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("parseGrid(%q) = %dx%d, want %dx%d", tt.in, rows, cols, tt.rows, tt.cols)
		}
	}
}

func TestParseDim(t *testing.T) {
	w, h, err := parseDim("8c,6c/5c")
	if err != nil {
		t.Fatalf("parseDim: %v", err)
	}
	if len(w) != 2 || w[0] != 8 || w[1] != 6 {
		t.Errorf("widths = %v", w)
	}
	if len(h) != 1 || h[0] != 5 {
		t.Errorf("heights = %v", h)
	}

	// Inches convert; the zero sentinel passes through.
	w, h, err = parseDim("2i/0")
	if err != nil {
		t.Fatalf("parseDim: %v", err)
	}
	if w[0] != 5.08 || h[0] != 0 {
		t.Errorf("got %v / %v", w, h)
	}

	if _, _, err := parseDim("16c"); err == nil {
		t.Error("missing height: expected error")
	}
	if _, _, err := parseDim("-4c/4c"); err == nil {
		t.Error("negative width: expected error")
	}
}

func TestParseSides(t *testing.T) {
	tests := []struct {
		in   string
		want [4]float64
	}{
		{"0.5c", [4]float64{0.5, 0.5, 0.5, 0.5}},
		{"0.5c/1c", [4]float64{0.5, 0.5, 1, 1}},
		{"1c/2c/3c/4c", [4]float64{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		got, err := parseSides(tt.in)
		if err != nil {
			t.Errorf("parseSides(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSides(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"1c/2c/3c", "-1c", ""} {
		if _, err := parseSides(bad); errors.GetCode(err) != errors.ErrCodeInvalidMargin {
			t.Errorf("parseSides(%q): %v", bad, err)
		}
	}
}

func TestParseTagSpec(t *testing.T) {
	tests := []struct {
		in     string
		mode   layout.TagMode
		letter byte
		number int
		prefix string
		suffix string
	}{
		{"", layout.TagLetter, 'a', 0, "", ")"},
		{"(a)", layout.TagLetter, 'a', 0, "(", ")"},
		{"c", layout.TagLetter, 'c', 0, "", ""},
		{"1.", layout.TagNumber, 0, 1, "", "."},
		{"[12]", layout.TagNumber, 0, 12, "[", "]"},
	}

	for _, tt := range tests {
		spec, err := parseTagSpec(tt.in)
		if err != nil {
			t.Errorf("parseTagSpec(%q): %v", tt.in, err)
			continue
		}
		if spec.Mode != tt.mode || spec.Prefix != tt.prefix || spec.Suffix != tt.suffix {
			t.Errorf("parseTagSpec(%q) = %+v", tt.in, spec)
		}
		if tt.mode == layout.TagLetter && spec.StartLetter != tt.letter {
			t.Errorf("parseTagSpec(%q): start letter %c", tt.in, spec.StartLetter)
		}
		if tt.mode == layout.TagNumber && spec.StartNumber != tt.number {
			t.Errorf("parseTagSpec(%q): start number %d", tt.in, spec.StartNumber)
		}
	}

	if _, err := parseTagSpec("()"); errors.GetCode(err) != errors.ErrCodeInvalidTag {
		t.Errorf("parseTagSpec with no counter: %v", err)
	}
}

func TestParsePanelRef(t *testing.T) {
	row, col, _, isPair, err := parsePanelRef("1,2")
	if err != nil || !isPair || row != 1 || col != 2 {
		t.Errorf("parsePanelRef(1,2) = %d,%d pair=%v err=%v", row, col, isPair, err)
	}

	_, _, idx, isPair, err := parsePanelRef("5")
	if err != nil || isPair || idx != 5 {
		t.Errorf("parsePanelRef(5) = %d pair=%v err=%v", idx, isPair, err)
	}

	for _, bad := range []string{"a", "1,b", "", "1,2,3"} {
		if _, _, _, _, err := parsePanelRef(bad); errors.GetCode(err) != errors.ErrCodeInvalidPanel {
			t.Errorf("parsePanelRef(%q): %v", bad, err)
		}
	}
}

func TestParseShare(t *testing.T) {
	tests := []struct {
		value string
		want  layout.Place
	}{
		{"", layout.AtBoth},
		{"both", layout.AtBoth},
		{"b", layout.AtMin},
		{"t", layout.AtMax},
	}
	for _, tt := range tests {
		got, err := parseShare(tt.value, "b", "t")
		if err != nil {
			t.Errorf("parseShare(%q): %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseShare(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if _, err := parseShare("l", "b", "t"); errors.GetCode(err) != errors.ErrCodeInvalidSharing {
		t.Errorf("parseShare with wrong token: %v", err)
	}
}

func TestParseFractions(t *testing.T) {
	w, h, err := parseFractions("1,2/3,1")
	if err != nil {
		t.Fatalf("parseFractions: %v", err)
	}
	if len(w) != 2 || w[1] != 2 || len(h) != 2 || h[0] != 3 {
		t.Errorf("got %v / %v", w, h)
	}

	for _, bad := range []string{"1,2", "0/1", "x/1"} {
		if _, _, err := parseFractions(bad); err == nil {
			t.Errorf("parseFractions(%q): expected error", bad)
		}
	}
}
