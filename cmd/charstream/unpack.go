package main

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/chronos-tachyon/go-charstream"
)

// unpacker converts the two-byte characters that Big5 and Shift_JIS streams
// deliver packed as lead<<8|trail.
type unpacker struct {
	dec *encoding.Decoder
	buf [2]byte
}

// newUnpacker returns nil for encodings that need no unpacking.
func newUnpacker(enc charstream.Encoding) *unpacker {
	switch enc {
	case charstream.Big5:
		return &unpacker{dec: traditionalchinese.Big5.NewDecoder()}
	case charstream.ShiftJIS:
		return &unpacker{dec: japanese.ShiftJIS.NewDecoder()}
	}
	return nil
}

func (u *unpacker) unpack(ch rune) rune {
	if u == nil || ch <= 0xFF {
		return ch
	}
	u.buf[0] = byte(ch >> 8)
	u.buf[1] = byte(ch)
	out, err := u.dec.Bytes(u.buf[:])
	if err != nil {
		return charstream.RuneError
	}
	r, _, ok := charstream.DecodeRune(out)
	if !ok {
		return charstream.RuneError
	}
	return r
}
