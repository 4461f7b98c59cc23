package charstream

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEncoding is returned by ParseEncoding for unrecognized labels.
var ErrUnknownEncoding = errors.New("charstream: unknown encoding")

// Encoding identifies the character encoding of an input stream.
type Encoding uint8

const (
	// UTF8 is the default encoding.
	UTF8 Encoding = iota

	// Raw passes every byte through without any decoding.
	Raw

	// ASCII is 7-bit US-ASCII.  Stray bytes in 0x80-0x9F are treated as
	// Windows-1252.
	ASCII

	// Latin1 is ISO-8859-1.  Bytes in 0x80-0x9F are treated as
	// Windows-1252.
	Latin1

	// Win1252 is the Windows-1252 code page.
	Win1252

	// MacRoman is the classic Macintosh Roman code page.
	MacRoman

	// ISO2022 is a 7-bit ISO-2022 encoding such as ISO-2022-JP.  Escape
	// sequences are preserved and bytes of non-ASCII character sets are
	// returned with the high bit set.
	ISO2022

	// UTF16 is UTF-16 with unspecified byte order (big-endian unless a
	// byte order mark says otherwise).
	UTF16

	// UTF16LE is little-endian UTF-16.
	UTF16LE

	// UTF16BE is big-endian UTF-16.
	UTF16BE

	// Big5 is Big5.  Two-byte characters are returned as (lead<<8)|trail.
	Big5

	// ShiftJIS is Shift_JIS.  Two-byte characters are returned as
	// (lead<<8)|trail.
	ShiftJIS

	numEncodings
)

var encodingNames = [numEncodings]string{
	UTF8:     "utf-8",
	Raw:      "raw",
	ASCII:    "ascii",
	Latin1:   "latin1",
	Win1252:  "windows-1252",
	MacRoman: "macroman",
	ISO2022:  "iso-2022",
	UTF16:    "utf-16",
	UTF16LE:  "utf-16le",
	UTF16BE:  "utf-16be",
	Big5:     "big5",
	ShiftJIS: "shift_jis",
}

var encodingLabels = map[string]Encoding{
	"utf8":         UTF8,
	"utf-8":        UTF8,
	"raw":          Raw,
	"ascii":        ASCII,
	"us-ascii":     ASCII,
	"latin1":       Latin1,
	"latin-1":      Latin1,
	"iso-8859-1":   Latin1,
	"iso8859-1":    Latin1,
	"win1252":      Win1252,
	"windows-1252": Win1252,
	"cp1252":       Win1252,
	"mac":          MacRoman,
	"macroman":     MacRoman,
	"macintosh":    MacRoman,
	"iso2022":      ISO2022,
	"iso-2022":     ISO2022,
	"iso-2022-jp":  ISO2022,
	"utf16":        UTF16,
	"utf-16":       UTF16,
	"utf16le":      UTF16LE,
	"utf-16le":     UTF16LE,
	"utf16be":      UTF16BE,
	"utf-16be":     UTF16BE,
	"big5":         Big5,
	"shiftjis":     ShiftJIS,
	"shift_jis":    ShiftJIS,
	"shift-jis":    ShiftJIS,
	"sjis":         ShiftJIS,
}

// ParseEncoding returns the Encoding named by label.  Matching ignores case
// and surrounding whitespace.
func ParseEncoding(label string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if enc, found := encodingLabels[key]; found {
		return enc, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
}

// Encodings returns every supported Encoding.
func Encodings() []Encoding {
	out := make([]Encoding, 0, numEncodings)
	for enc := Encoding(0); enc < numEncodings; enc++ {
		out = append(out, enc)
	}
	return out
}

// String returns the canonical label of the encoding.
func (enc Encoding) String() string {
	if enc < numEncodings {
		return encodingNames[enc]
	}
	return fmt.Sprintf("Encoding(%d)", uint8(enc))
}

// Max returns the maximum number of bytes used by one character.
func (enc Encoding) Max() int {
	switch enc {
	case Raw, ASCII, Latin1, Win1252, MacRoman, ISO2022:
		return 1
	case Big5, ShiftJIS:
		return 2
	case UTF16, UTF16LE, UTF16BE:
		// a surrogate pair
		return 4
	case UTF8:
		return 4
	default:
		panic(fmt.Sprintf("charstream: invalid encoding %d", uint8(enc)))
	}
}

// predecoded reports whether characters produced by the decoder for this
// encoding are final and skip the code page remapping in ReadChar.
func (enc Encoding) predecoded() bool {
	switch enc {
	case Raw, UTF8, ISO2022, ShiftJIS, Big5:
		return true
	case ASCII, Latin1, Win1252, MacRoman, UTF16, UTF16LE, UTF16BE:
		return false
	default:
		panic(fmt.Sprintf("charstream: invalid encoding %d", uint8(enc)))
	}
}

// isUnicode reports whether the encoding belongs to the UTF-8/UTF-16
// family, whose streams are checked for any byte order mark.
func (enc Encoding) isUnicode() bool {
	switch enc {
	case UTF8, UTF16, UTF16LE, UTF16BE:
		return true
	default:
		return false
	}
}

// sniffsUTF8BOM reports whether a leading UTF-8 byte order mark overrides
// the encoding.  This holds for the Unicode family and for the single-byte
// ASCII-compatible code pages, where the mark is otherwise three bytes of
// garbage.
func (enc Encoding) sniffsUTF8BOM() bool {
	switch enc {
	case UTF8, UTF16, UTF16LE, UTF16BE, ASCII, Latin1, Win1252, MacRoman:
		return true
	case Raw, ISO2022, Big5, ShiftJIS:
		return false
	default:
		panic(fmt.Sprintf("charstream: invalid encoding %d", uint8(enc)))
	}
}
