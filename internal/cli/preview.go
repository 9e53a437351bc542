package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/panelgrid/pkg/layout"
	"github.com/matzehuels/panelgrid/pkg/store"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// previewModel is the bubbletea model behind show --interactive: a grid of
// panels with one highlighted, moved by the arrow keys.
type previewModel struct {
	fig    int
	state  *store.State
	sel    int // linear row-major index of the highlighted panel
	chosen bool
}

func newPreviewModel(fig int, st *store.State) previewModel {
	return previewModel{fig: fig, state: st}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	row, col := m.sel/m.state.Cols, m.sel%m.state.Cols
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "left", "h":
		if col > 0 {
			col--
		}
	case "right", "l":
		if col < m.state.Cols-1 {
			col++
		}
	case "up", "k":
		if row > 0 {
			row--
		}
	case "down", "j":
		if row < m.state.Rows-1 {
			row++
		}
	case "tab":
		// Cycle in the figure's numbering order.
		next := (tagOrderIndex(m.state, row, col) + 1) % len(m.state.Panels)
		row, col = tagOrderPos(m.state, next)
	}
	m.sel = row*m.state.Cols + col
	return m, nil
}

func (m previewModel) View() string {
	p := &m.state.Panels[m.sel]
	header := StyleTitle.Render(fmt.Sprintf("Figure %d", m.fig))
	detail := StyleDim.Render(fmt.Sprintf("panel (%d,%d)  origin %s,%s  size %sx%s",
		p.Row, p.Col,
		units.Format(p.Origin.X), units.Format(p.Origin.Y),
		units.Format(p.Size.W), units.Format(p.Size.H)))
	help := StyleDim.Render("arrows move · tab cycles · enter selects · q quits")
	return header + "\n\n" + renderGrid(m.state, m.sel) + "\n\n" + detail + "\n" + help + "\n"
}

// tagOrderIndex maps a grid position to its place in the numbering order.
func tagOrderIndex(st *store.State, row, col int) int {
	if st.Order == layout.ColMajor {
		return col*st.Rows + row
	}
	return row*st.Cols + col
}

// tagOrderPos is the inverse of tagOrderIndex.
func tagOrderPos(st *store.State, k int) (row, col int) {
	if st.Order == layout.ColMajor {
		return k % st.Rows, k / st.Rows
	}
	return k / st.Cols, k % st.Cols
}
