package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/units"
)

// endCommand creates the end command that tears the figure session down.
func (c *CLI) endCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Finish the figure and remove its session state",
		Long: `Finish the active figure: report the overall dimension the grid resolved
to and remove every per-figure session file. After end, set and a repeated
end fail until a fresh begin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnd()
		},
	}
}

func (c *CLI) runEnd() error {
	s, fig, err := c.newStore()
	if err != nil {
		return err
	}
	st, err := s.Load(fig)
	if err != nil {
		return err
	}
	if err := s.Delete(fig); err != nil {
		return err
	}

	printSuccess("Figure %d finished: %d panels in %sc x %sc",
		fig, len(st.Panels), units.Format(st.Dim.W), units.Format(st.Dim.H))
	return nil
}
