package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/store"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// previewWidth is the character width the proportional preview scales the
// figure to.
const previewWidth = 64

// showCommand creates the show command that previews a saved layout.
func (c *CLI) showCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Preview the active figure's panel grid in the terminal",
		Long: `Draw a proportional preview of the active figure's panel grid plus a
per-panel geometry table. The preview shows proportions and tags only, not
plot contents. With --interactive the preview becomes navigable: arrow
keys move the highlighted panel through the grid, enter prints the set
command addressing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "navigate the grid with the arrow keys")
	return cmd
}

func (c *CLI) runShow(interactive bool) error {
	s, fig, err := c.newStore()
	if err != nil {
		return err
	}
	st, err := s.Load(fig)
	if err != nil {
		return err
	}

	if interactive {
		final, err := tea.NewProgram(newPreviewModel(fig, st)).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(previewModel); ok && m.chosen {
			p := st.Panels[m.sel]
			printNextStep("Address this panel", fmt.Sprintf("%s set %d,%d", appName, p.Row, p.Col))
		}
		return nil
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Figure %d: %dx%d grid", fig, st.Rows, st.Cols)))
	printNewline()
	fmt.Println(renderGrid(st, -1))
	printNewline()
	for i := range st.Panels {
		p := &st.Panels[i]
		line := fmt.Sprintf("(%d,%d)  origin %s,%s  size %sx%s",
			p.Row, p.Col,
			units.Format(p.Origin.X), units.Format(p.Origin.Y),
			units.Format(p.Size.W), units.Format(p.Size.H))
		if code := p.Frame.String(); code != "" {
			line += "  frame " + code
		}
		if p.Tag.Text != "" && p.Tag.Text != "-" {
			line += "  tag " + p.Tag.Text
		}
		printDetail("%s", line)
	}
	return nil
}

// renderGrid draws the panels as bordered boxes scaled to the figure
// proportions. selected highlights one panel index, -1 highlights none.
func renderGrid(st *store.State, selected int) string {
	scale := float64(previewWidth) / st.Dim.W

	rows := make([]string, 0, st.Rows)
	for r := 0; r < st.Rows; r++ {
		cells := make([]string, 0, st.Cols)
		for col := 0; col < st.Cols; col++ {
			p := &st.Panels[r*st.Cols+col]

			// Terminal cells are roughly twice as tall as wide.
			w := max(4, int(math.Round(p.Size.W*scale)))
			h := max(1, int(math.Round(p.Size.H*scale*0.45)))

			style := stylePanelBox
			if p.Index == selected {
				style = stylePanelActive
			}
			label := p.Tag.Text
			if label == "-" || label == "" {
				label = fmt.Sprintf("%d,%d", p.Row, p.Col)
			}
			box := style.
				Border(lipgloss.NormalBorder()).
				Width(w).
				Height(h).
				Align(lipgloss.Center, lipgloss.Center).
				Render(label)
			cells = append(cells, box)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, " ")...))
	}
	return strings.Join(rows, "\n")
}

// interleave inserts sep between the items.
func interleave(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
