// Package cli implements the vsepr command-line interface.
//
// The commands replay placement scripts against a molecule builder, and expose
// the element, bond length and guideline lookups. All commands support
// --verbose (-v) for debug-level logging; the logger travels in the command's
// context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	chem "github.com/rmera/vsepr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	v        *viper.Viper
	config   string  // path to the config file
	bindErrs []error // flags that could not be bound to their settings
}

// New creates a new CLI instance that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), v: newViper()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vsepr",
		Short:         "vsepr builds molecules atom by atom, following VSEPR geometry",
		Long:          `vsepr places atoms near existing ones, bonds them to their neighbours and snaps them to the ideal electron-domain directions of the atoms they bond to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.readConfig(); err != nil {
				return err
			}
			if c.v.GetBool(keyVerbose) {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP(keyVerbose, "v", false, "enable verbose logging")
	flags.String(keyElements, "", "TOML file with element and bond length overrides")
	flags.StringVar(&c.config, "config", "", "TOML config file with default settings")
	c.bound(keyVerbose, c.v.BindPFlag(keyVerbose, flags.Lookup(keyVerbose)))
	c.bound(keyElements, c.v.BindPFlag(keyElements, flags.Lookup(keyElements)))

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.guideCommand())
	root.AddCommand(c.bondLengthCommand())
	root.AddCommand(c.elementsCommand())

	return root
}

// loadTable returns the table set with --elements (or its config equivalents),
// or the default one.
func (c *CLI) loadTable(l *log.Logger) (*chem.Table, error) {
	path := c.v.GetString(keyElements)
	if path == "" {
		return chem.DefaultTable(), nil
	}
	t, err := chem.ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	l.Debug("loaded element table", "path", path, "elements", len(t.Symbols()))
	return t, nil
}
