// Package security provides guards for reading untrusted input.
package security

import (
	"errors"
	"io"
)

// ErrLimitExceeded is returned once a LimitedReader's source holds more
// bytes than allowed.
var ErrLimitExceeded = errors.New("size limit exceeded")

// LimitedReader wraps an io.Reader and fails when the source is larger than
// the limit. Unlike io.LimitReader it reports the overflow instead of
// silently truncating, so decompression bombs surface as errors.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a new LimitedReader allowing at most maxBytes.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// Read implements io.Reader. A source of exactly the limit reads cleanly
// to io.EOF.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if l.Remaining <= 0 {
		// Probe for one more byte to tell "exactly at the limit" from "over".
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, ErrLimitExceeded
		}
		if err == nil {
			err = io.ErrNoProgress
		}
		return 0, err
	}

	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
