// Package display rewrites a block of status lines in place on a
// terminal.  Updates happen only when Update is called; there is no
// background refresh, so nothing competes with the caller for the CPU.
package display

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
)

type Display struct {
	live *uilive.Writer
}

func New(w io.Writer) *Display {
	live := uilive.New()
	live.Out = w
	return &Display{live: live}
}

// Update replaces the displayed block with the formatted text.
func (d *Display) Update(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(d.live, format, args...); err != nil {
		return err
	}
	return d.live.Flush()
}
