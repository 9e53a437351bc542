package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// statusCommand creates the status command, a read-only session inspector.
func (c *CLI) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active figure's layout and cursor without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus()
		},
	}
}

func (c *CLI) runStatus() error {
	s, fig, err := c.newStore()
	if err != nil {
		return err
	}
	st, err := s.Load(fig)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Figure %d", fig)))
	printKeyValue("grid", fmt.Sprintf("%dx%d (%s)", st.Rows, st.Cols, st.Order))
	printKeyValue("dimension", fmt.Sprintf("%sc x %sc", units.Format(st.Dim.W), units.Format(st.Dim.H)))
	if st.Heading != "" {
		printKeyValue("heading", st.Heading)
	}
	printKeyValue("tags", map[bool]string{true: "on", false: "off"}[st.Tagged])

	row, col, ok, err := s.Cursor(fig)
	switch {
	case errors.Is(err, errors.ErrCodeNoMorePanels):
		printKeyValue("cursor", "exhausted")
	case err != nil:
		return err
	case !ok:
		printKeyValue("cursor", "not started")
	default:
		printKeyValue("cursor", fmt.Sprintf("panel (%d,%d)", row, col))
	}
	return nil
}
