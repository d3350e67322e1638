package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tincture/internal/config"
)

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// previewProfile returns the colour profile for swatches written to w.
// Auto mode colours only terminals and honours NO_COLOR through termenv.
func previewProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.PreviewNever:
		return termenv.Ascii
	case config.PreviewAlways:
		return termenv.TrueColor
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// swatch renders text in fg over bg. Both colours are canonical hex.
func swatch(p termenv.Profile, text, fgHex, bgHex string) string {
	if !profileEnabled(p) {
		return text
	}
	return p.String(text).
		Foreground(p.Color("#" + fgHex)).
		Background(p.Color("#" + bgHex)).
		String()
}

// profileEnabled reports whether p emits any colour.
func profileEnabled(p termenv.Profile) bool {
	return p != termenv.Ascii
}
