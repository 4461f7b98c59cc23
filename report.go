package charstream

import (
	"fmt"
)

// EventKind classifies a diagnostic raised while decoding.
type EventKind uint8

const (
	// EncodingMismatch: a byte order mark contradicted the configured
	// encoding.  The stream switched to Event.Detected.
	EncodingMismatch EventKind = iota + 1

	// InvalidUTF8: a malformed UTF-8 sequence was replaced by RuneError.
	InvalidUTF8

	// WindowsChars: a byte in 0x80-0x9F was read as Windows-1252.
	WindowsChars

	// InvalidUTF16: an unpaired surrogate was replaced by RuneError.
	InvalidUTF16
)

var eventKindNames = map[EventKind]string{
	EncodingMismatch: "encoding mismatch",
	InvalidUTF8:      "invalid UTF-8",
	WindowsChars:     "Windows characters",
	InvalidUTF16:     "invalid UTF-16",
}

func (kind EventKind) String() string {
	if name, found := eventKindNames[kind]; found {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(kind))
}

// Event is a non-fatal diagnostic.
type Event struct {
	Kind EventKind

	// Pos is the position of the offending character.
	Pos Position

	// Expected and Detected are set for EncodingMismatch.
	Expected Encoding
	Detected Encoding

	// Value is the raw value that was replaced or remapped: the
	// accumulated value of a bad UTF-8 sequence, the surrogate of a bad
	// UTF-16 unit, or the original Windows-1252 byte.
	Value rune

	// Replaced is true when RuneError was substituted.
	Replaced bool
}

// Message describes the event without its position.
func (ev Event) Message() string {
	switch ev.Kind {
	case EncodingMismatch:
		return fmt.Sprintf("%s: specified %v but found %v", ev.Kind, ev.Expected, ev.Detected)
	case WindowsChars:
		return fmt.Sprintf("%s: byte %#02x", ev.Kind, ev.Value)
	default:
		s := fmt.Sprintf("%s: value %#x", ev.Kind, ev.Value)
		if ev.Replaced {
			s += " replaced"
		}
		return s
	}
}

func (ev Event) String() string {
	return fmt.Sprintf("%v: %s", ev.Pos, ev.Message())
}

// Reporter receives diagnostics.  It is called synchronously from the
// goroutine reading the Stream.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report fulfills the Reporter interface.
func (fn ReporterFunc) Report(ev Event) { fn(ev) }

type discard struct{}

func (discard) Report(Event) {}
