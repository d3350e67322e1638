// Package cli provides the command-line interface for tincture.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/version"
)

// app carries the state resolved once per invocation and shared by the
// subcommands.
type app struct {
	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "tincture",
		Short: "Accessible colour contrast checking and fixing",
		Long: `Tincture checks foreground/background colour pairs against the WCAG 2.x
contrast thresholds and suggests the nearest accessible replacement for
pairs that fail, adjusting only perceptual lightness so the hue is kept.

Check a single pair, fix it, or build the full contrast matrix for a palette.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	config.BindLevelFlag(rootCmd.PersistentFlags())
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newFixCmd(a))
	rootCmd.AddCommand(newMatrixCmd(a))
	rootCmd.AddCommand(newHexCmd())

	return rootCmd
}

// setup resolves configuration (defaults, .env, environment, flags) and
// builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), logLevel(cfg, verbose, quiet))
	a.logger.Debug("configuration resolved",
		"level", cfg.Level,
		"algorithm", cfg.Algorithm,
		"precision", cfg.Precision,
		"max_iterations", cfg.MaxIterations,
		"workers", cfg.Workers)

	return nil
}

// newLogger creates the process logger.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tincture",
		Output: w,
		Level:  level,
	})
}

// logLevel picks the log level: the configured level (warn when unset),
// lowered to debug by --verbose or raised to error by --quiet.
func logLevel(cfg config.Config, verbose, quiet bool) hclog.Level {
	level := cfg.LogLevelOr(hclog.Warn)
	if verbose && level > hclog.Debug {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}
	return level
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		// Version output must not depend on a valid environment.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
