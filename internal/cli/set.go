package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// setCommand creates the set command that moves the panel cursor.
func (c *CLI) setCommand() *cobra.Command {
	var (
		tag       string
		clearance string
	)

	cmd := &cobra.Command{
		Use:   "set [row,col | index]",
		Short: "Move the panel cursor and report the active panel",
		Long: `Move the figure's panel cursor. Without an argument the cursor advances to
the next panel in the figure's numbering order; "row,col" or a linear index
addresses a panel directly. The active panel's geometry is printed so a
driving script can position its plot calls.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			return c.runSet(cmd, ref, tag, clearance)
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "A", "", "override this panel's tag text; '-' suppresses it")
	cmd.Flags().StringVar(&clearance, "clearance", "", "extra per-side gap inside this panel: 1, 2 or 4 lengths")

	return cmd
}

func (c *CLI) runSet(cmd *cobra.Command, ref, tag, clearance string) error {
	s, fig, err := c.newStore()
	if err != nil {
		return err
	}
	st, err := s.Load(fig)
	if err != nil {
		return err
	}

	var row, col int
	if ref == "" {
		if row, col, err = s.Advance(fig, st); err != nil {
			return err
		}
	} else {
		r, cl, idx, isPair, err := parsePanelRef(ref)
		if err != nil {
			return err
		}
		if isPair {
			if err := s.SetExplicit(fig, r, cl, st); err != nil {
				return err
			}
			row, col = r, cl
		} else {
			if row, col, err = s.SetIndex(fig, idx, st); err != nil {
				return err
			}
		}
	}

	panel := &st.Panels[row*st.Cols+col]

	tagText := panel.Tag.Text
	if cmd.Flags().Changed("tag") {
		if !st.Tagged {
			return errors.New(errors.ErrCodeInvalidTag,
				"figure %d was not started with tagging, cannot override a tag", fig)
		}
		tagText = tag
	}

	// An extra clearance shrinks the plottable area of this panel only;
	// the stored record stays untouched.
	origin := panel.Origin
	size := panel.Size
	if clearance != "" {
		gaps, err := parseSides(clearance)
		if err != nil {
			return err
		}
		origin.X += gaps[0]
		origin.Y += gaps[2]
		size.W -= gaps[0] + gaps[1]
		size.H -= gaps[2] + gaps[3]
		if size.W <= 0 || size.H <= 0 {
			return errors.New(errors.ErrCodeNonPositiveDim,
				"clearance leaves panel (%d,%d) with no plottable area", row, col)
		}
	}

	printSuccess("Panel (%d,%d) of figure %d", row, col, fig)
	printKeyValue("origin", fmt.Sprintf("%sc, %sc",
		units.Format(st.Origin.X+origin.X), units.Format(st.Origin.Y+origin.Y)))
	printKeyValue("size", fmt.Sprintf("%sc x %sc", units.Format(size.W), units.Format(size.H)))
	if code := panel.Frame.String(); code != "" {
		printKeyValue("frame", code)
	}
	if tagText != "" && tagText != "-" {
		printKeyValue("tag", tagText)
	}
	if panel.LabelX != "" {
		printKeyValue("x label", panel.LabelX)
	}
	if panel.LabelY != "" {
		printKeyValue("y label", panel.LabelY)
	}
	return nil
}
