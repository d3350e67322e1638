package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/contrast"
	"github.com/jmylchreest/tincture/internal/hexcolour"
)

// errUnreachable is returned by fix when no lightness reaches the target.
var errUnreachable = errors.New("no accessible foreground found")

func newFixCmd(a *app) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "fix <foreground> <background>",
		Short: "Find the nearest accessible foreground for a background",
		Long: `Search for the foreground colour closest in perceptual lightness to the
given one that reaches the target contrast against the background. Hue and
chroma are kept; only OKLCH lightness changes.

The target defaults to the ratio required by --level (4.5 for AA, 7 for AAA).
A pair that already passes is printed unchanged. The command exits non-zero
when no lightness in the sRGB gamut reaches the target.

Examples:
  # Darken light grey text until it passes AA on white
  tincture fix d1d5db ffffff

  # Require a custom ratio
  tincture fix --target 5.5 '#3b82f6' '#fff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			return a.runFix(cmd.OutOrStdout(), args[0], args[1], target, quiet)
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "target contrast ratio (1-21, default: from --level)")
	config.BindSearchFlags(cmd.Flags())

	return cmd
}

func (a *app) runFix(w io.Writer, fgArg, bgArg string, target float64, quiet bool) error {
	if _, err := colour.ParseHex(fgArg); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := colour.ParseHex(bgArg); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	if target == 0 {
		target = a.cfg.Level.TargetRatio()
	}
	if target < 1 || target > 21 {
		return fmt.Errorf("target ratio must be between 1 and 21, got %v", target)
	}

	bg := hexcolour.MustNormalize(bgArg)
	fixed, ok := a.cfg.Fixer(a.logger).FindFix(fgArg, bgArg, target)
	if !ok {
		return fmt.Errorf("%w: %.2f:1 on %s", errUnreachable, target, hexcolour.FormatForDisplay(bg))
	}

	if quiet {
		fmt.Fprintln(w, hexcolour.FormatForDisplay(fixed))
		return nil
	}

	fmt.Fprintf(w, "%s (%.2f:1 on %s, was %.2f:1)\n",
		hexcolour.FormatForDisplay(fixed),
		contrast.Ratio(fixed, bg),
		hexcolour.FormatForDisplay(bg),
		contrast.Ratio(fgArg, bg))

	return nil
}
