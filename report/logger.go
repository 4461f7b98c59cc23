package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronos-tachyon/go-charstream"
)

// Logger returns a Reporter that writes each event to log as a Warn record.
func Logger(log *slog.Logger) charstream.Reporter {
	return charstream.ReporterFunc(func(ev charstream.Event) {
		log.LogAttrs(context.Background(), slog.LevelWarn, ev.Kind.String(), Attrs(ev)...)
	})
}

// Attrs returns the structured attributes describing ev.
func Attrs(ev charstream.Event) []slog.Attr {
	attrs := []slog.Attr{
		slog.Int("line", ev.Pos.Line),
		slog.Int("column", ev.Pos.Column),
		slog.Int("offset", ev.Pos.Offset),
	}
	switch ev.Kind {
	case charstream.EncodingMismatch:
		attrs = append(attrs,
			slog.String("expected", ev.Expected.String()),
			slog.String("detected", ev.Detected.String()))
	default:
		attrs = append(attrs, slog.String("value", fmt.Sprintf("%#x", ev.Value)))
		if ev.Replaced {
			attrs = append(attrs, slog.Bool("replaced", true))
		}
	}
	return attrs
}
