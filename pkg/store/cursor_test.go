package store

import (
	"testing"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/layout"
)

func gridState(rows, cols int, order layout.Order) *State {
	return &State{Rows: rows, Cols: cols, Order: order}
}

func TestAdvanceRowMajor(t *testing.T) {
	s := newTestStore(t)
	st := gridState(2, 3, layout.RowMajor)

	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for i, w := range want {
		row, col, err := s.Advance(9, st)
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
		if row != w[0] || col != w[1] {
			t.Errorf("Advance %d = (%d,%d), want (%d,%d)", i, row, col, w[0], w[1])
		}
	}

	// The seventh advance runs off the grid and the cursor stays dead.
	_, _, err := s.Advance(9, st)
	if errors.GetCode(err) != errors.ErrCodeNoMorePanels {
		t.Fatalf("Advance past end: %v", err)
	}
	_, _, _, err = s.Cursor(9)
	if errors.GetCode(err) != errors.ErrCodeNoMorePanels {
		t.Errorf("Cursor after exhaustion: %v", err)
	}
	_, _, err = s.Advance(9, st)
	if errors.GetCode(err) != errors.ErrCodeNoMorePanels {
		t.Errorf("Advance after exhaustion: %v", err)
	}
}

func TestAdvanceColMajor(t *testing.T) {
	s := newTestStore(t)
	st := gridState(2, 3, layout.ColMajor)

	want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	for i, w := range want {
		row, col, err := s.Advance(1, st)
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
		if row != w[0] || col != w[1] {
			t.Errorf("Advance %d = (%d,%d), want (%d,%d)", i, row, col, w[0], w[1])
		}
	}
	if _, _, err := s.Advance(1, st); errors.GetCode(err) != errors.ErrCodeNoMorePanels {
		t.Errorf("Advance past end: %v", err)
	}
}

func TestCursorUninitialized(t *testing.T) {
	s := newTestStore(t)
	_, _, ok, err := s.Cursor(5)
	if err != nil {
		t.Fatalf("Cursor: %v", err)
	}
	if ok {
		t.Error("ok = true for untouched figure")
	}
}

func TestSetExplicit(t *testing.T) {
	s := newTestStore(t)
	st := gridState(2, 3, layout.RowMajor)

	if err := s.SetExplicit(6, 1, 2, st); err != nil {
		t.Fatalf("SetExplicit: %v", err)
	}
	row, col, ok, err := s.Cursor(6)
	if err != nil || !ok {
		t.Fatalf("Cursor: ok=%v err=%v", ok, err)
	}
	if row != 1 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", row, col)
	}

	for _, bad := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		if err := s.SetExplicit(6, bad[0], bad[1], st); errors.GetCode(err) != errors.ErrCodeInvalidPanel {
			t.Errorf("SetExplicit(%v): %v", bad, err)
		}
	}

	// Advancing continues from the explicit position, and exhaustion is
	// terminal even for explicit addressing.
	row, col, err = s.Advance(6, st)
	if err == nil {
		t.Fatalf("Advance from last panel: got (%d,%d)", row, col)
	}
	if err := s.SetExplicit(6, 0, 0, st); errors.GetCode(err) != errors.ErrCodeNoMorePanels {
		t.Errorf("SetExplicit on exhausted cursor: %v", err)
	}
}

func TestSetIndex(t *testing.T) {
	s := newTestStore(t)
	st := gridState(2, 3, layout.RowMajor)

	row, col, err := s.SetIndex(8, 4, st)
	if err != nil {
		t.Fatalf("SetIndex: %v", err)
	}
	if row != 1 || col != 1 {
		t.Errorf("SetIndex(4) = (%d,%d), want (1,1)", row, col)
	}

	for _, bad := range []int{-1, 6, 100} {
		if _, _, err := s.SetIndex(8, bad, st); errors.GetCode(err) != errors.ErrCodeInvalidPanel {
			t.Errorf("SetIndex(%d): %v", bad, err)
		}
	}
}
