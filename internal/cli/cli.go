// Package cli implements the gir command-line interface.
//
// # Commands
//
//   - maze:   generate (and optionally solve) a random grid maze
//   - search: breadth-first search through the AoC 2016 day 13 office, with
//     an optional terminal animation of the explored generations
//   - dot:    export a maze or office graph in Graphviz DOT format
//
// # Configuration
//
// Defaults can be kept in a TOML file passed with --config; flags given on
// the command line override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "gir"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version. Overridden at build time via ldflags.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
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
		Short:        "gir generates, searches and exports small graphs",
		Long:         `gir is a playground for generic graph stores: it carves mazes out of spanning trees, runs breadth-first searches and exports the results as Graphviz DOT.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				cfg, err := LoadConfig(c.configPath)
				if err != nil {
					return err
				}
				c.Config = cfg
				c.Logger.Debug("loaded config", "path", c.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with default settings")

	root.AddCommand(c.mazeCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.dotCommand())

	return root
}
