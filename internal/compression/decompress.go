// Package compression transparently decompresses palette files based on
// their extension.
package compression

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/tincture/internal/security"
)

// Format identifies a compression wrapper.
type Format string

const (
	None  Format = ""
	Gzip  Format = "gzip"
	Xz    Format = "xz"
	Bzip2 Format = "bzip2"
)

var extensions = map[string]Format{
	".gz":  Gzip,
	".xz":  Xz,
	".bz2": Bzip2,
}

// FromPath returns the compression implied by the file extension.
func FromPath(path string) Format {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// TrimExt strips a recognised compression extension from path, so
// "palette.json.xz" becomes "palette.json".
func TrimExt(path string) string {
	if FromPath(path) == None {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// NewReader wraps r to decompress format. The decompressed stream fails
// with security.ErrLimitExceeded once it grows past maxBytes.
func NewReader(r io.Reader, format Format, maxBytes int64) (io.Reader, error) {
	var dr io.Reader

	switch format {
	case None:
		dr = r
	case Gzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		dr = gzr
	case Xz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		dr = xzr
	case Bzip2:
		dr = bzip2.NewReader(r)
	default:
		return nil, fmt.Errorf("unsupported compression %q", format)
	}

	return security.NewLimitedReader(dr, maxBytes), nil
}

// ReadFile reads path, decompressing it according to its extension, and
// returns at most maxBytes of content.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified palette file, intended to be read
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := NewReader(f, FromPath(path), maxBytes)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}
