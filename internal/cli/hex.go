package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/hexcolour"
)

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <value>...",
		Short: "Validate and normalise hex colours",
		Long: `Validate hex colour values and print their canonical form along with the
sRGB channels and OKLCH coordinates. Exits non-zero if any value is invalid.

Examples:
  tincture hex '#abc' 1f2937`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHex(cmd.OutOrStdout(), args)
		},
	}
}

func runHex(w io.Writer, values []string) error {
	t := NewTable([]string{"INPUT", "HEX", "RGB", "OKLCH"})
	invalid := 0

	for _, v := range values {
		rgb, err := colour.ParseHex(v)
		if err != nil {
			invalid++
			t.AddRow([]string{v, "invalid"})
			continue
		}

		o := colour.ToOKLCH(rgb)
		t.AddRow([]string{
			v,
			hexcolour.FormatForDisplay(rgb.Hex()),
			rgb.String(),
			fmt.Sprintf("oklch(%.4f %.4f %.2f)", o.L, o.C, o.H),
		})
	}

	fmt.Fprint(w, t.Render())

	if invalid > 0 {
		return fmt.Errorf("%d of %d values are not valid hex colours", invalid, len(values))
	}
	return nil
}
