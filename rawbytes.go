package charstream

import (
	"errors"
	"io"
	"log/slog"
)

// rawCursor reads the source one byte at a time.  Bytes handed back with
// unread are returned again, most recent first, before the source is read.
type rawCursor struct {
	src    io.ByteReader
	log    *slog.Logger
	held   pushback[byte]
	offset int
	eof    bool
	err    error
}

func (rc *rawCursor) init(src io.ByteReader, log *slog.Logger) {
	*rc = rawCursor{src: src, log: log}
}

// next returns the next byte, or false once the source is exhausted.  A
// failing source counts as exhausted; the first non-EOF error is kept.
func (rc *rawCursor) next() (byte, bool) {
	if b, ok := rc.held.pop(); ok {
		rc.offset++
		return b, true
	}
	if rc.eof {
		return 0, false
	}
	b, err := rc.src.ReadByte()
	if err != nil {
		rc.eof = true
		if !errors.Is(err, io.EOF) {
			rc.err = err
			rc.log.Debug("byte source failed", "offset", rc.offset, "error", err)
		}
		return 0, false
	}
	rc.offset++
	return b, true
}

// unread pushes b back so that the following next returns it.
func (rc *rawCursor) unread(b byte) {
	rc.held.push(b)
	rc.offset--
}
