package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/chronos-tachyon/go-charstream"
)

// ColorMode selects whether Terminal output is colored.
type ColorMode uint8

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Terminal writes one human-readable line per event, in the form
//
//	name:line:column: warning: message
//
// The name prefix is omitted when empty.
type Terminal struct {
	mu   sync.Mutex
	w    io.Writer
	name string

	loc  *color.Color
	warn *color.Color
}

// NewTerminal returns a Terminal writing to w.  name, usually the input
// file, prefixes every line.
func NewTerminal(w io.Writer, name string, mode ColorMode) *Terminal {
	t := &Terminal{
		w:    w,
		name: name,
		loc:  color.New(color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
	}
	if useColor(w, mode) {
		t.loc.EnableColor()
		t.warn.EnableColor()
	} else {
		t.loc.DisableColor()
		t.warn.DisableColor()
	}
	return t
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// Report fulfills the charstream.Reporter interface.  Write errors are
// ignored.
func (t *Terminal) Report(ev charstream.Event) {
	loc := fmt.Sprintf("%d:%d:", ev.Pos.Line, ev.Pos.Column)
	if t.name != "" {
		loc = t.name + ":" + loc
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s %s %s\n", t.loc.Sprint(loc), t.warn.Sprint("warning:"), ev.Message())
}
