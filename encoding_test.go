package charstream

import (
	"errors"
	"testing"
)

func TestParseEncoding(t *testing.T) {
	type testCase struct {
		label string
		enc   Encoding
	}
	testCases := []testCase{
		{"utf-8", UTF8},
		{"UTF8", UTF8},
		{" raw ", Raw},
		{"US-ASCII", ASCII},
		{"iso-8859-1", Latin1},
		{"cp1252", Win1252},
		{"Macintosh", MacRoman},
		{"iso-2022-jp", ISO2022},
		{"utf-16", UTF16},
		{"UTF-16LE", UTF16LE},
		{"utf16be", UTF16BE},
		{"big5", Big5},
		{"Shift_JIS", ShiftJIS},
		{"sjis", ShiftJIS},
	}
	for _, tc := range testCases {
		enc, err := ParseEncoding(tc.label)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.label, err)
			continue
		}
		if enc != tc.enc {
			t.Errorf("%q: expected %v, got %v", tc.label, tc.enc, enc)
		}
	}

	for _, label := range []string{"", "ebcdic", "utf-32"} {
		_, err := ParseEncoding(label)
		if !errors.Is(err, ErrUnknownEncoding) {
			t.Errorf("%q: expected ErrUnknownEncoding, got %v", label, err)
		}
	}
}

func TestEncoding_String(t *testing.T) {
	for _, enc := range Encodings() {
		name := enc.String()
		back, err := ParseEncoding(name)
		if err != nil {
			t.Errorf("%v: %v", enc, err)
			continue
		}
		if back != enc {
			t.Errorf("%q: expected %d, got %d", name, uint8(enc), uint8(back))
		}
	}
	if s := numEncodings.String(); s != "Encoding(12)" {
		t.Errorf("expected %q, got %q", "Encoding(12)", s)
	}
	if n := len(Encodings()); n != int(numEncodings) {
		t.Errorf("expected %d encodings, got %d", numEncodings, n)
	}
}

func TestEncoding_Max(t *testing.T) {
	expected := map[Encoding]int{
		UTF8:     4,
		Raw:      1,
		ASCII:    1,
		Latin1:   1,
		Win1252:  1,
		MacRoman: 1,
		ISO2022:  1,
		UTF16:    4,
		UTF16LE:  4,
		UTF16BE:  4,
		Big5:     2,
		ShiftJIS: 2,
	}
	for _, enc := range Encodings() {
		if n := enc.Max(); n != expected[enc] {
			t.Errorf("%v: expected %d, got %d", enc, expected[enc], n)
		}
	}
}
