package layout

import "testing"

func TestResolveSides(t *testing.T) {
	tests := []struct {
		name           string
		frameAxes      string
		override       string
		shareX, shareY bool
		wantX, wantY   string
	}{
		{
			name:      "default axes",
			frameAxes: "WSen",
			wantX:     "Sn", wantY: "We",
		},
		{
			name:      "all annotated",
			frameAxes: "WESN",
			wantX:     "SN", wantY: "WE",
		},
		{
			name:      "bare lines",
			frameAxes: "lrbt",
			wantX:     "bt", wantY: "lr",
		},
		{
			name:      "shared forces extremes",
			frameAxes: "WSen",
			shareX:    true, shareY: true,
			wantX: "SN", wantY: "WE",
		},
		{
			name:      "explicit override wins",
			frameAxes: "WSen",
			override:  "NE",
			wantX:     "N", wantY: "E",
		},
		{
			name:     "explicit override lowercased when shared",
			override: "WSen",
			shareX:   true, shareY: true,
			wantX: "sn", wantY: "we",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := ResolveSides(tt.frameAxes, tt.override, tt.shareX, tt.shareY)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("ResolveSides(%q, %q, %v, %v) = %q, %q; want %q, %q",
					tt.frameAxes, tt.override, tt.shareX, tt.shareY, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFrameCodeRoundTrip(t *testing.T) {
	tests := []string{"", "WenS", "WeNs", "wEnS", "lrtb", "WENS"}
	for _, s := range tests {
		if got := ParseFrameCode(s).String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseFrameCodeIgnoresModifiers(t *testing.T) {
	f := ParseFrameCode("WS+f0.2c")
	if f[West] != SideAnnot || f[South] != SideAnnot {
		t.Errorf("got %q", f.String())
	}
	if f[East] != SideNone || f[North] != SideNone {
		t.Errorf("unexpected sides in %q", f.String())
	}
}

func TestMetrics(t *testing.T) {
	st := Style{
		FontAnnot:     12,
		FontLabel:     16,
		FontTitle:     20,
		TickLength:    0.15,
		AnnotOffset:   0.2,
		LabelOffset:   0.3,
		TitleOffset:   0.35,
		HeadingOffset: 0.45,
	}

	m := Metrics(st, false)
	if m.TickHeight != 0.15 {
		t.Errorf("TickHeight = %g", m.TickHeight)
	}
	if m.AnnotHeight <= st.AnnotOffset {
		t.Errorf("AnnotHeight = %g, want > offset", m.AnnotHeight)
	}
	if m.LabelHeight <= m.AnnotHeight {
		t.Errorf("LabelHeight = %g, want > AnnotHeight for larger font", m.LabelHeight)
	}
	if m.TitleHeight <= m.LabelHeight {
		t.Errorf("TitleHeight = %g", m.TitleHeight)
	}
	if m.HeadingOffset != 0.45 {
		t.Errorf("HeadingOffset = %g", m.HeadingOffset)
	}

	// Inside frames draw decorations over the panel, consuming no
	// exterior space. Titles still sit outside.
	st.Inside = true
	in := Metrics(st, false)
	if in.TickHeight != 0 || in.AnnotHeight != 0 || in.LabelHeight != 0 {
		t.Errorf("inside frame metrics = %+v, want zero decorations", in)
	}
	if in.TitleHeight != m.TitleHeight {
		t.Errorf("inside TitleHeight = %g, want %g", in.TitleHeight, m.TitleHeight)
	}

	// Frameless layouts drop the same three regardless of frame type.
	st.Inside = false
	nf := Metrics(st, true)
	if nf.TickHeight != 0 || nf.AnnotHeight != 0 || nf.LabelHeight != 0 {
		t.Errorf("no-frame metrics = %+v, want zero decorations", nf)
	}
}

func TestNegativeOffsetsClamped(t *testing.T) {
	m := Metrics(Style{FontAnnot: 12, TickLength: -0.1, AnnotOffset: -0.5}, false)
	if m.TickHeight != 0 {
		t.Errorf("TickHeight = %g, want 0", m.TickHeight)
	}
	if m.AnnotHeight < 0 {
		t.Errorf("AnnotHeight = %g, want >= 0", m.AnnotHeight)
	}
}
