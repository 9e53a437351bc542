package layout

import "testing"

func TestRenderLetterTags(t *testing.T) {
	spec := DefaultTagSpec()
	want := []string{"a)", "b)", "c)", "d)"}
	for k, w := range want {
		if got := spec.Render(k); got != w {
			t.Errorf("Render(%d) = %q, want %q", k, got, w)
		}
	}
}

func TestRenderNumberTags(t *testing.T) {
	spec := TagSpec{Mode: TagNumber, StartNumber: 1, Suffix: "."}
	want := []string{"1.", "2.", "3.", "4."}
	for k, w := range want {
		if got := spec.Render(k); got != w {
			t.Errorf("Render(%d) = %q, want %q", k, got, w)
		}
	}
}

func TestRenderOffsets(t *testing.T) {
	tests := []struct {
		name string
		spec TagSpec
		k    int
		want string
	}{
		{
			name: "letter start offset",
			spec: TagSpec{Mode: TagLetter, StartLetter: 'c', Prefix: "(", Suffix: ")"},
			k:    1,
			want: "(d)",
		},
		{
			name: "number start offset",
			spec: TagSpec{Mode: TagNumber, StartNumber: 10},
			k:    2,
			want: "12",
		},
		{
			name: "roman lower",
			spec: TagSpec{Mode: TagNumber, StartNumber: 1, Roman: RomanLower, Suffix: ")"},
			k:    3,
			want: "iv)",
		},
		{
			name: "roman upper",
			spec: TagSpec{Mode: TagNumber, StartNumber: 1, Roman: RomanUpper},
			k:    8,
			want: "IX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Render(tt.k); got != tt.want {
				t.Errorf("Render(%d) = %q, want %q", tt.k, got, tt.want)
			}
		})
	}
}

func TestRoman(t *testing.T) {
	tests := []struct {
		n     int
		lower bool
		want  string
	}{
		{1, false, "I"},
		{4, false, "IV"},
		{9, false, "IX"},
		{14, false, "XIV"},
		{40, false, "XL"},
		{90, false, "XC"},
		{1987, false, "MCMLXXXVII"},
		{3, true, "iii"},
		{49, true, "xlix"},
		{0, false, ""},
		{-5, false, ""},
	}

	for _, tt := range tests {
		if got := Roman(tt.n, tt.lower); got != tt.want {
			t.Errorf("Roman(%d, %v) = %q, want %q", tt.n, tt.lower, got, tt.want)
		}
	}
}

func TestTagIndexOrders(t *testing.T) {
	// 2x2 grid: row-major counts across, col-major counts down.
	type cell struct{ row, col int }
	rowMajor := map[cell]int{{0, 0}: 0, {0, 1}: 1, {1, 0}: 2, {1, 1}: 3}
	colMajor := map[cell]int{{0, 0}: 0, {1, 0}: 1, {0, 1}: 2, {1, 1}: 3}

	for c, want := range rowMajor {
		if got := tagIndex(RowMajor, 2, 2, c.row, c.col); got != want {
			t.Errorf("tagIndex(RowMajor, %d,%d) = %d, want %d", c.row, c.col, got, want)
		}
	}
	for c, want := range colMajor {
		if got := tagIndex(ColMajor, 2, 2, c.row, c.col); got != want {
			t.Errorf("tagIndex(ColMajor, %d,%d) = %d, want %d", c.row, c.col, got, want)
		}
	}
}
