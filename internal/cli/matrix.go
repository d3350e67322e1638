package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/contrast"
	"github.com/jmylchreest/tincture/internal/hexcolour"
	"github.com/jmylchreest/tincture/internal/matrix"
	"github.com/jmylchreest/tincture/internal/palette"
)

// matrixReport is the structured output of the matrix command.
type matrixReport struct {
	Level   contrast.Level    `json:"level" yaml:"level"`
	Colours []matrix.Entry    `json:"colours" yaml:"colours"`
	Results []contrast.Result `json:"results" yaml:"results"`
	Summary matrix.Summary    `json:"summary" yaml:"summary"`
}

type matrixOptions struct {
	palettePath string
	colours     []string
	onlyFailing bool
}

func newMatrixCmd(a *app) *cobra.Command {
	var opts matrixOptions

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build the contrast matrix for a palette",
		Long: `Compute the contrast of every colour on every other colour in a palette,
summarise how many pairs pass the target level and suggest fixes for the
pairs that fail.

Colours come from a palette file (--palette) and/or --colour flags. Palette
files may be plain text (one "hex" or "id=hex" per line), JSON, YAML or TOML,
optionally compressed with xz or gzip. --colour entries with an id that is
already in the file replace that colour.

Examples:
  # Matrix for a few colours given on the command line
  tincture matrix -c text=1f2937 -c muted=d1d5db -c surface=fff

  # Palette file, AAA, only failing pairs
  tincture matrix --palette theme.yaml --level AAA --only-failing

  # Machine-readable output
  tincture matrix --palette theme.json.xz --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMatrix(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.palettePath, "palette", "p", "", "palette file (text, json, yaml, toml; .xz/.gz allowed)")
	cmd.Flags().StringArrayVarP(&opts.colours, "colour", "c", nil, "colour as id=hex or hex (repeatable)")
	cmd.Flags().BoolVar(&opts.onlyFailing, "only-failing", false, "only report pairs that fail the target level")
	config.BindSearchFlags(cmd.Flags())
	config.BindOutputFlags(cmd.Flags())
	config.BindWorkersFlag(cmd.Flags())

	return cmd
}

func (a *app) runMatrix(w io.Writer, opts matrixOptions) error {
	colours, err := palette.Resolve(opts.palettePath, opts.colours)
	if err != nil {
		return err
	}

	level := a.cfg.Level
	b := &matrix.Builder{
		Calculator: a.cfg.Calculator(a.logger),
		Workers:    a.cfg.Workers,
		Logger:     a.logger,
	}
	results := b.Build(colours, level)
	summary := matrix.Summarize(results, level)
	failing := matrix.Failing(results, level)

	if a.cfg.Format != config.FormatTable {
		report := matrixReport{Level: level, Colours: colours, Results: results, Summary: summary}
		if opts.onlyFailing {
			report.Results = failing
		}
		return writeStructured(w, a.cfg.Format, report)
	}

	profile := previewProfile(a.cfg.Preview, w)

	if !opts.onlyFailing {
		fmt.Fprint(w, renderGrid(colours, results, level, profile))
		fmt.Fprintln(w)
	}

	if len(failing) > 0 {
		fmt.Fprint(w, renderFailing(failing, profile))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d of %d pairs pass %s (%d%%)\n",
		summary.Passing, summary.Total, level, summary.PercentagePassing)

	return nil
}

// renderGrid lays the matrix out with foregrounds as rows and backgrounds as
// columns. Self-pairs show "-" and failing cells are marked with ✗.
func renderGrid(colours []matrix.Entry, results []contrast.Result, level contrast.Level, profile termenv.Profile) string {
	n := len(colours)
	headers := make([]string, 0, n+1)
	headers = append(headers, "FG \\ BG")
	for _, c := range colours {
		headers = append(headers, c.ID)
	}

	t := NewTable(headers)
	for i, fg := range colours {
		row := make([]string, 0, n+1)
		row = append(row, fg.ID)
		for j := range colours {
			row = append(row, gridCell(results[i*n+j], level))
		}
		t.AddRow(row)
	}

	if profileEnabled(profile) {
		t.SetStyle(func(row, col int, padded string) string {
			if row < 0 || col == 0 {
				return padded
			}
			r := results[row*n+col-1]
			return swatch(profile, padded, r.ForegroundHex, r.BackgroundHex)
		})
	}

	return t.Render()
}

func gridCell(r contrast.Result, level contrast.Level) string {
	switch {
	case r.IsSelfPair():
		return "-"
	case r.Passes(level):
		return fmt.Sprintf("%.2f", r.Ratio)
	default:
		return fmt.Sprintf("%.2f ✗", r.Ratio)
	}
}

// renderFailing lists failing pairs with their suggested replacements.
func renderFailing(failing []contrast.Result, profile termenv.Profile) string {
	t := NewTable([]string{"FOREGROUND", "BACKGROUND", "RATIO", "SUGGESTION", "NEW RATIO"})
	for _, r := range failing {
		sugg, newRatio := "none", "-"
		if r.HasSuggestion() {
			sugg = hexcolour.FormatForDisplay(r.Suggestion)
			newRatio = formatRatio(contrast.Ratio(r.Suggestion, r.BackgroundHex))
		}
		t.AddRow([]string{
			fmt.Sprintf("%s %s", r.ForegroundID, hexcolour.FormatForDisplay(r.ForegroundHex)),
			fmt.Sprintf("%s %s", r.BackgroundID, hexcolour.FormatForDisplay(r.BackgroundHex)),
			formatRatio(r.Ratio),
			sugg,
			newRatio,
		})
	}

	if profileEnabled(profile) {
		t.SetStyle(func(row, col int, padded string) string {
			if row < 0 || col != 3 || !failing[row].HasSuggestion() {
				return padded
			}
			r := failing[row]
			return swatch(profile, padded, r.Suggestion, r.BackgroundHex)
		})
	}

	return t.Render()
}
