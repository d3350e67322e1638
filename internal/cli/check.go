package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/contrast"
	"github.com/jmylchreest/tincture/internal/hexcolour"
)

// checkReport is the structured output of the check command.
type checkReport struct {
	Level           contrast.Level `json:"level" yaml:"level"`
	contrast.Result `yaml:",inline"`
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Check the contrast of a colour pair",
		Long: `Compute the WCAG 2.x contrast ratio of a foreground colour on a background
colour and report which thresholds it meets. If the pair fails the target
level, the nearest passing foreground is suggested.

Colours are hex values with or without '#', in 3 or 6 digit form.

Examples:
  # Check grey text on white
  tincture check 767676 ffffff

  # Check against AAA and print JSON
  tincture check --level AAA --format json '#555' '#fff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	config.BindSearchFlags(cmd.Flags())
	config.BindOutputFlags(cmd.Flags())

	return cmd
}

func (a *app) runCheck(w io.Writer, fgArg, bgArg string) error {
	if _, err := colour.ParseHex(fgArg); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := colour.ParseHex(bgArg); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	level := a.cfg.Level
	r := a.cfg.Calculator(a.logger).BuildResult("foreground", fgArg, "background", bgArg, level)

	if a.cfg.Format != config.FormatTable {
		return writeStructured(w, a.cfg.Format, checkReport{Level: level, Result: r})
	}

	profile := previewProfile(a.cfg.Preview, w)
	fg := hexcolour.FormatForDisplay(r.ForegroundHex)
	bg := hexcolour.FormatForDisplay(r.BackgroundHex)
	fmt.Fprintf(w, "%s on %s: %.2f:1\n\n", swatch(profile, fg, r.ForegroundHex, r.BackgroundHex), bg, r.Ratio)

	t := NewTable([]string{"CRITERION", "THRESHOLD", "RESULT"})
	t.AddRow([]string{"AA", formatRatio(contrast.ThresholdAA), passFail(r.PassesAA)})
	t.AddRow([]string{"AAA", formatRatio(contrast.ThresholdAAA), passFail(r.PassesAAA)})
	t.AddRow([]string{"AA large text", formatRatio(contrast.ThresholdAALarge), passFail(r.PassesAALarge)})
	t.AddRow([]string{"UI component", formatRatio(contrast.ThresholdUIComponent), passFail(r.PassesUIComponent)})
	fmt.Fprint(w, t.Render())

	if r.Passes(level) {
		return nil
	}

	fmt.Fprintln(w)
	if r.HasSuggestion() {
		sugg := hexcolour.FormatForDisplay(r.Suggestion)
		fmt.Fprintf(w, "Suggested foreground for %s: %s (%.2f:1)\n",
			level, swatch(profile, sugg, r.Suggestion, r.BackgroundHex), contrast.Ratio(r.Suggestion, r.BackgroundHex))
	} else {
		fmt.Fprintf(w, "No lightness adjustment of %s reaches %s on %s\n", fg, level, bg)
	}

	return nil
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
