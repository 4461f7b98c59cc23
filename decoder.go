package charstream

import (
	"fmt"
)

// decodeChar reads one character's worth of raw bytes and decodes it
// according to the active encoding.  It returns false at end of stream,
// including when the stream ends partway through a multi-byte character.
//
// Characters from the single-byte code pages come back as raw byte values;
// ReadChar applies the code page tables.
func (stream *Stream) decodeChar() (rune, bool) {
	if stream.lookingForBOM {
		stream.lookingForBOM = false
		if stream.enc.sniffsUTF8BOM() && stream.sniffBOM() && !stream.stripBOM {
			return BOM, true
		}
	}

	b, ok := stream.raw.next()
	if !ok {
		return EOF, false
	}

	switch stream.enc {
	case Raw, ASCII, Latin1, Win1252, MacRoman:
		return rune(b), true

	case ISO2022:
		return rune(stream.iso.step(b)), true

	case UTF16LE:
		return stream.decodeUTF16(b, false)

	case UTF16, UTF16BE:
		return stream.decodeUTF16(b, true)

	case UTF8:
		pos := stream.pos
		r, _, valid := decodeUTF8(b, &stream.raw)
		if !valid {
			stream.reporter.Report(Event{
				Kind:     InvalidUTF8,
				Pos:      pos,
				Value:    r,
				Replaced: true,
			})
			r = RuneError
		}
		return r, true

	case Big5, ShiftJIS:
		if b < 0x80 {
			return rune(b), true
		}
		trail, ok := stream.raw.next()
		if !ok {
			return EOF, false
		}
		return rune(b)<<8 | rune(trail), true

	default:
		panic(fmt.Sprintf("charstream: invalid encoding %d", uint8(stream.enc)))
	}
}

// unit16 completes one UTF-16 code unit whose first byte has been read.
func (stream *Stream) unit16(first byte, bigEndian bool) (rune, bool) {
	second, ok := stream.raw.next()
	if !ok {
		return EOF, false
	}
	if bigEndian {
		return rune(first)<<8 | rune(second), true
	}
	return rune(second)<<8 | rune(first), true
}

// decodeUTF16 decodes one UTF-16 character, joining surrogate pairs.  An
// unpaired surrogate is reported and replaced by RuneError; the unit that
// followed it is pushed back to be decoded on its own.  With
// splitSurrogates every unit is returned as read.
func (stream *Stream) decodeUTF16(first byte, bigEndian bool) (rune, bool) {
	u, ok := stream.unit16(first, bigEndian)
	if !ok {
		return EOF, false
	}
	if stream.splitSurrogates || u < surrogateMin || u > surrogateMax {
		return u, true
	}
	if u <= 0xDBFF {
		if b1, ok := stream.raw.next(); ok {
			b2, ok := stream.raw.next()
			if ok {
				u2 := rune(b1)<<8 | rune(b2)
				if !bigEndian {
					u2 = rune(b2)<<8 | rune(b1)
				}
				if u2 >= 0xDC00 && u2 <= surrogateMax {
					return 0x10000 + (u-0xD800)<<10 + (u2 - 0xDC00), true
				}
				stream.raw.unread(b2)
			}
			stream.raw.unread(b1)
		}
	}
	stream.reporter.Report(Event{
		Kind:     InvalidUTF16,
		Pos:      stream.pos,
		Value:    u,
		Replaced: true,
	})
	return RuneError, true
}
