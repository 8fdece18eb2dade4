// Package cli implements the hclust command-line interface.
//
// The CLI clusters either a TOML dataset (see package dataset) or randomly
// generated elements and prints the merge hierarchy. It is built using cobra
// and logs through charmbracelet/log; --verbose switches to debug level,
// which also logs every merge.
//
// # Commands
//
//   - cluster: cluster the elements of a dataset file
//   - random: cluster random points or random quantized distances
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected via ldflags at build time.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "hclust",
		Short:        "hclust builds single-linkage dendrograms",
		Long:         `hclust clusters elements agglomeratively: it repeatedly merges the closest pair until one root remains and reports the resulting merge tree.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.clusterCommand())
	root.AddCommand(c.randomCommand())

	return root
}
