// Package cli implements the panelgrid command-line interface.
//
// The commands mirror the lifecycle of a figure: begin computes and
// persists the panel grid, set advances or addresses the panel cursor,
// end tears the session down. show and status inspect a saved layout
// without touching it. All commands share one session directory so the
// state survives across the separate process invocations a driving
// script issues.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/buildinfo"
	"github.com/matzehuels/panelgrid/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "panelgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// SessionDir overrides the session directory; empty means the
	// environment-resolved default.
	SessionDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Panelgrid lays out grids of plot panels",
		Long: `Panelgrid computes the geometry of an NxM grid of plot panels inside a
composite figure: panel origins and sizes, frame annotation sides, axis
labels and automatic panel tags. The layout is persisted per figure so a
driving script can begin a grid, address panels one set call at a time,
and tear everything down with end.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.beginCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.endCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.statusCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// sessionDir resolves the directory all session files live in.
func (c *CLI) sessionDir() string {
	if c.SessionDir != "" {
		return c.SessionDir
	}
	return store.SessionDir()
}

// newStore opens the layout store for the active session.
func (c *CLI) newStore() (*store.Store, int, error) {
	dir := c.sessionDir()
	s, err := store.New(dir, c.Logger)
	if err != nil {
		return nil, 0, err
	}
	return s, store.CurrentFigure(dir), nil
}
