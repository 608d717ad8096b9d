// Package sampleio holds the output formats for benchmark samples.  Each
// subpackage provides a Writer with Write and Close methods; anyio selects
// one by format name.
package sampleio

import "io"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
