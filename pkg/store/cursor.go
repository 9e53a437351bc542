package store

import (
	"fmt"
	"os"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/layout"
)

// exhausted is the cursor marker written after advancing past the last
// panel. The state is terminal: only a fresh begin reinstates a cursor.
const exhausted = -1

// Cursor returns the current panel for the figure. ok is false when no
// panel has been selected yet in this figure's lifecycle.
func (s *Store) Cursor(fig int) (row, col int, ok bool, err error) {
	data, err := os.ReadFile(s.cursorPath(fig))
	if os.IsNotExist(err) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, errors.Wrap(errors.ErrCodeIO, err, "read cursor for figure %d", fig)
	}
	if n, _ := fmt.Sscanf(string(data), "%d %d", &row, &col); n != 2 {
		return 0, 0, false, errors.New(errors.ErrCodeIO, "malformed cursor for figure %d", fig)
	}
	if row == exhausted {
		return 0, 0, false, errors.New(errors.ErrCodeNoMorePanels,
			"all panels of figure %d have been used", fig)
	}
	return row, col, true, nil
}

func (s *Store) writeCursor(fig, row, col int) error {
	data := fmt.Sprintf("%d %d\n", row, col)
	if err := os.WriteFile(s.cursorPath(fig), []byte(data), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write cursor for figure %d", fig)
	}
	return nil
}

// Advance moves the cursor to the next panel in the figure's numbering
// order, or to the first panel when none has been selected yet. Advancing
// past the last panel marks the cursor exhausted and fails; the only way
// back is a fresh begin.
func (s *Store) Advance(fig int, st *State) (row, col int, err error) {
	row, col, ok, err := s.Cursor(fig)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		if err := s.writeCursor(fig, 0, 0); err != nil {
			return 0, 0, err
		}
		return 0, 0, nil
	}

	if st.Order == layout.ColMajor {
		row++
		if row == st.Rows {
			row, col = 0, col+1
		}
		if col == st.Cols {
			row = exhausted
		}
	} else {
		col++
		if col == st.Cols {
			col, row = 0, row+1
		}
		if row == st.Rows {
			row = exhausted
		}
	}

	if row == exhausted {
		if err := s.writeCursor(fig, exhausted, exhausted); err != nil {
			return 0, 0, err
		}
		return 0, 0, errors.New(errors.ErrCodeNoMorePanels,
			"all %d panels of figure %d have been used", st.Rows*st.Cols, fig)
	}
	if err := s.writeCursor(fig, row, col); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// SetExplicit moves the cursor directly to (row, col), range-checked
// against the figure's grid. An exhausted cursor stays exhausted.
func (s *Store) SetExplicit(fig, row, col int, st *State) error {
	if _, _, _, err := s.Cursor(fig); err != nil {
		return err
	}
	if row < 0 || row >= st.Rows || col < 0 || col >= st.Cols {
		return errors.New(errors.ErrCodeInvalidPanel,
			"panel (%d,%d) outside the %dx%d grid of figure %d", row, col, st.Rows, st.Cols, fig)
	}
	return s.writeCursor(fig, row, col)
}

// SetIndex moves the cursor to the panel with the given row-major linear
// index.
func (s *Store) SetIndex(fig, idx int, st *State) (row, col int, err error) {
	if idx < 0 || idx >= st.Rows*st.Cols {
		return 0, 0, errors.New(errors.ErrCodeInvalidPanel,
			"panel index %d outside the %dx%d grid of figure %d", idx, st.Rows, st.Cols, fig)
	}
	row, col = idx/st.Cols, idx%st.Cols
	return row, col, s.SetExplicit(fig, row, col, st)
}
