// Package cli implements the cipherstack command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/internal/config"
	"github.com/cipherstack/cipherstack/pkg/buildinfo"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "cipherstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Cipherstack layers classical ciphers into a single transform",
		Long: `Cipherstack encrypts and decrypts text through an ordered stack of classical
cipher layers: shift, mono- and polyalphabetic substitution, zig-zag and
columnar transposition, a simplified Feistel block cipher and Playfair-style
digraph substitution. Encryption applies the layers top to bottom; decryption
undoes them bottom to top.

It is a teaching tool. None of these ciphers is secure.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.encryptCommand())
	root.AddCommand(c.decryptCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	r := pipeline.NewRunner(c.Logger)
	r.MaxInput = c.Config.MaxInput
	return r
}
