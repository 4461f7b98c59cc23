package charstream

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidRune is returned by WriteRune for code points that have no
// well-formed UTF-8 encoding.
var ErrInvalidRune = errors.New("charstream: invalid code point")

const (
	// RuneError is substituted for every malformed input sequence.
	RuneError = '\uFFFD'

	// MaxRune is the largest Unicode code point.
	MaxRune = 0x10FFFF

	// UTF8Max is the longest byte sequence EncodeRune can produce.
	UTF8Max = 6

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	byteSwapped  = 0xFFFE
	notAChar     = 0xFFFF
)

// byteSource is what the UTF-8 decoder pulls continuation bytes from.
type byteSource interface {
	next() (byte, bool)
	unread(byte)
}

type sliceSource struct {
	p []byte
	i int
}

func (s *sliceSource) next() (byte, bool) {
	if s.i >= len(s.p) {
		return 0, false
	}
	b := s.p[s.i]
	s.i++
	return b, true
}

func (s *sliceSource) unread(byte) { s.i-- }

// isCodePoint reports whether r is a Unicode scalar value other than the
// noncharacters U+FFFE and U+FFFF.
func isCodePoint(r rune) bool {
	switch {
	case r < 0 || r > MaxRune:
		return false
	case r >= surrogateMin && r <= surrogateMax:
		return false
	case r == byteSwapped || r == notAChar:
		return false
	}
	return true
}

// DecodeRune decodes the UTF-8 sequence at the start of p.  It returns the
// decoded value, the number of bytes that make up the sequence, and whether
// the sequence is well formed.
//
// A malformed sequence ends at the first byte that is not a continuation
// byte; that byte is not counted in size.  For a malformed sequence r holds
// whatever value was accumulated and should be replaced by RuneError.
func DecodeRune(p []byte) (r rune, size int, ok bool) {
	if len(p) == 0 {
		return RuneError, 0, false
	}
	src := &sliceSource{p: p, i: 1}
	return decodeUTF8(p[0], src)
}

// decodeUTF8 decodes one sequence whose first byte has already been read.
// Continuation bytes come from src; a byte that turns out not to belong to
// the sequence is handed back to src.
func decodeUTF8(first byte, src byteSource) (rune, int, bool) {
	var seq [UTF8Max]byte
	var n rune
	var size int
	bad := false

	seq[0] = first
	switch {
	case first <= 0x7F:
		n, size = rune(first), 1
	case first&0xE0 == 0xC0:
		n, size = rune(first&0x1F), 2
	case first&0xF0 == 0xE0:
		n, size = rune(first&0x0F), 3
	case first&0xF8 == 0xF0:
		n, size = rune(first&0x07), 4
	case first&0xFC == 0xF8:
		n, size, bad = rune(first&0x03), 5, true
	case first&0xFE == 0xFC:
		n, size, bad = rune(first&0x01), 6, true
	default:
		n, size, bad = rune(first), 1, true
	}

	for i := 1; i < size; i++ {
		b, ok := src.next()
		if !ok {
			size, bad = i, true
			break
		}
		if b&0xC0 != 0x80 {
			src.unread(b)
			size, bad = i, true
			break
		}
		seq[i] = b
		n = n<<6 | rune(b&0x3F)
	}

	if !bad && (!isCodePoint(n) || !wellFormed(n, seq[:size])) {
		bad = true
	}
	return n, size, !bad
}

// encodeUTF8 packs r using the original 1-6 byte UTF-8 scheme.  Only the
// forms that decodeUTF8 accepts are reported as ok.
func encodeUTF8(r rune) ([UTF8Max]byte, int, bool) {
	var buf [UTF8Max]byte
	c := uint32(r)
	switch {
	case r < 0:
		return buf, 0, false
	case c <= 0x7F:
		buf[0] = byte(c)
		return buf, 1, true
	case c <= 0x7FF:
		buf[0] = 0xC0 | byte(c>>6)
		buf[1] = 0x80 | byte(c&0x3F)
		return buf, 2, true
	case c <= 0xFFFF:
		buf[0] = 0xE0 | byte(c>>12)
		buf[1] = 0x80 | byte((c>>6)&0x3F)
		buf[2] = 0x80 | byte(c&0x3F)
		return buf, 3, isCodePoint(r)
	case c <= 0x1FFFFF:
		buf[0] = 0xF0 | byte(c>>18)
		buf[1] = 0x80 | byte((c>>12)&0x3F)
		buf[2] = 0x80 | byte((c>>6)&0x3F)
		buf[3] = 0x80 | byte(c&0x3F)
		return buf, 4, c <= MaxRune
	case c <= 0x3FFFFFF:
		buf[0] = 0xF8 | byte(c>>24)
		buf[1] = 0x80 | byte((c>>18)&0x3F)
		buf[2] = 0x80 | byte((c>>12)&0x3F)
		buf[3] = 0x80 | byte((c>>6)&0x3F)
		buf[4] = 0x80 | byte(c&0x3F)
		return buf, 5, false
	default:
		buf[0] = 0xFC | byte(c>>30)
		buf[1] = 0x80 | byte((c>>24)&0x3F)
		buf[2] = 0x80 | byte((c>>18)&0x3F)
		buf[3] = 0x80 | byte((c>>12)&0x3F)
		buf[4] = 0x80 | byte((c>>6)&0x3F)
		buf[5] = 0x80 | byte(c&0x3F)
		return buf, 6, false
	}
}

// EncodeRune writes the UTF-8 encoding of r into p, which must be large
// enough (UTF8Max bytes always suffice).  It returns the number of bytes
// written and whether the encoding is well formed.  Code points above
// MaxRune still get their 4-6 byte encoding, but are reported as not ok,
// as are surrogates, U+FFFE and U+FFFF.  Negative values write nothing.
func EncodeRune(p []byte, r rune) (int, bool) {
	buf, n, ok := encodeUTF8(r)
	copy(p[:n], buf[:n])
	return n, ok
}

// AppendRune appends the UTF-8 encoding of r to dst if it is well formed.
func AppendRune(dst []byte, r rune) ([]byte, bool) {
	buf, n, ok := encodeUTF8(r)
	if !ok {
		return dst, false
	}
	return append(dst, buf[:n]...), true
}

// WriteRune writes the UTF-8 encoding of r to w.  Nothing is written for
// code points that have no well-formed encoding.
func WriteRune(w io.Writer, r rune) (int, error) {
	buf, n, ok := encodeUTF8(r)
	if !ok {
		return 0, fmt.Errorf("%w: %#x", ErrInvalidRune, r)
	}
	return w.Write(buf[:n])
}
