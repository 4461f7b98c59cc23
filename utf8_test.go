package charstream

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRune(t *testing.T) {
	type testCase struct {
		name  string
		input string
		r     rune
		size  int
		ok    bool
	}
	testCases := []testCase{
		{"empty", "", RuneError, 0, false},
		{"ascii", "a", 'a', 1, true},
		{"nul", "\x00", 0, 1, true},
		{"two byte", "\xC3\xA9", 'é', 2, true},
		{"three byte", "\xE6\x97\xA5", '日', 3, true},
		{"four byte", "\xF0\x9F\x98\x80", 0x1F600, 4, true},
		{"max", "\xF4\x8F\xBF\xBF", MaxRune, 4, true},
		{"trailing bytes ignored", "ab", 'a', 1, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, size, ok := DecodeRune([]byte(tc.input))
			if r != tc.r || size != tc.size || ok != tc.ok {
				t.Errorf("expected (%#x, %d, %v), got (%#x, %d, %v)", tc.r, tc.size, tc.ok, r, size, ok)
			}
		})
	}
}

func TestDecodeRune_malformed(t *testing.T) {
	type testCase struct {
		name  string
		input string
		size  int
	}
	testCases := []testCase{
		{"overlong nul", "\xC0\x80", 2},
		{"overlong slash", "\xC1\xAF", 2},
		{"overlong three byte", "\xE0\x80\x80", 3},
		{"overlong four byte", "\xF0\x80\x80\x80", 4},
		{"surrogate", "\xED\xA0\x80", 3},
		{"byte swapped mark", "\xEF\xBF\xBE", 3},
		{"not a character", "\xEF\xBF\xBF", 3},
		{"above max", "\xF4\x90\x80\x80", 4},
		{"five byte", "\xF8\x88\x80\x80\x80", 5},
		{"six byte", "\xFC\x84\x80\x80\x80\x80", 6},
		{"lone continuation", "\x80", 1},
		{"invalid lead", "\xFF", 1},
		{"truncated", "\xC3", 1},
		{"truncated three byte", "\xE6\x97", 2},
		{"interrupted", "\xE6\x97a", 2},
		{"interrupted by lead", "\xC3\xC3\xA9", 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, size, ok := DecodeRune([]byte(tc.input))
			if ok {
				t.Errorf("%q: expected malformed", tc.input)
			}
			if size != tc.size {
				t.Errorf("%q: expected size %d, got %d", tc.input, tc.size, size)
			}
		})
	}
}

func TestEncodeRune_roundTrip(t *testing.T) {
	var p [UTF8Max]byte
	var want [utf8.UTFMax]byte
	for r := rune(0); r <= MaxRune; r++ {
		if !isCodePoint(r) {
			continue
		}
		n, ok := EncodeRune(p[:], r)
		if !ok {
			t.Fatalf("%#x: EncodeRune failed", r)
		}
		m := utf8.EncodeRune(want[:], r)
		if !bytes.Equal(p[:n], want[:m]) {
			t.Fatalf("%#x: expected % x, got % x", r, want[:m], p[:n])
		}
		back, size, ok := DecodeRune(p[:n])
		if !ok || back != r || size != n {
			t.Fatalf("%#x: decoded (%#x, %d, %v)", r, back, size, ok)
		}
	}
}

func TestEncodeRune_invalid(t *testing.T) {
	type testCase struct {
		r    rune
		size int
	}
	testCases := []testCase{
		{-1, 0},
		{0xD800, 3},
		{0xDFFF, 3},
		{0xFFFE, 3},
		{0xFFFF, 3},
		{0x110000, 4},
		{0x200000, 5},
		{0x4000000, 6},
	}
	for _, tc := range testCases {
		var p [UTF8Max]byte
		n, ok := EncodeRune(p[:], tc.r)
		if ok {
			t.Errorf("%#x: expected not ok", tc.r)
		}
		if n != tc.size {
			t.Errorf("%#x: expected size %d, got %d", tc.r, tc.size, n)
		}

		var buf bytes.Buffer
		written, err := WriteRune(&buf, tc.r)
		if !errors.Is(err, ErrInvalidRune) {
			t.Errorf("%#x: expected ErrInvalidRune, got %v", tc.r, err)
		}
		if written != 0 || buf.Len() != 0 {
			t.Errorf("%#x: wrote %d bytes", tc.r, buf.Len())
		}

		out, ok := AppendRune([]byte("x"), tc.r)
		if ok || string(out) != "x" {
			t.Errorf("%#x: AppendRune returned (%q, %v)", tc.r, out, ok)
		}
	}
}

func TestWriteRune(t *testing.T) {
	var buf bytes.Buffer
	for _, r := range "añ日\U0001F600" {
		if _, err := WriteRune(&buf, r); err != nil {
			t.Fatalf("%#x: %v", r, err)
		}
	}
	if buf.String() != "añ日\U0001F600" {
		t.Errorf("got %q", buf.String())
	}

	out, ok := AppendRune(nil, 'é')
	if !ok || string(out) != "é" {
		t.Errorf("AppendRune returned (%q, %v)", out, ok)
	}
}

func TestStream_invalidUTF8(t *testing.T) {
	var events []Event
	stream := New(strings.NewReader("a\xC3(b\xED\xA0\x80\xFF"), Options{Reporter: collect(&events)})
	actual := readAll(stream)
	expected := []Item{
		{Rune: 'a', Pos: At(0, 1, 1)},
		{Rune: RuneError, Pos: At(1, 1, 2)},
		{Rune: '(', Pos: At(2, 1, 3)},
		{Rune: 'b', Pos: At(3, 1, 4)},
		{Rune: RuneError, Pos: At(4, 1, 5)},
		{Rune: RuneError, Pos: At(7, 1, 6)},
	}
	compareItems(t, expected, actual)

	expectedEvents := []Event{
		{Kind: InvalidUTF8, Pos: At(1, 1, 2), Value: 0x03, Replaced: true},
		{Kind: InvalidUTF8, Pos: At(4, 1, 5), Value: 0xD800, Replaced: true},
		{Kind: InvalidUTF8, Pos: At(7, 1, 6), Value: 0xFF, Replaced: true},
	}
	if diff := cmp.Diff(expectedEvents, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestStream_malformedUTF8Resync(t *testing.T) {
	type testCase struct {
		name  string
		input string
		value rune
	}
	testCases := []testCase{
		{"overlong two byte", "\xC0\x80", 0},
		{"overlong three byte", "\xE0\x80\x80", 0},
		{"overlong four byte", "\xF0\x80\x80\x80", 0},
		{"above max", "\xF4\x90\x80\x80", 0x110000},
		{"surrogate", "\xED\xA0\x80", 0xD800},
		{"not a character", "\xEF\xBF\xBE", 0xFFFE},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var events []Event
			stream := New(strings.NewReader(tc.input+"\xC3\xA9"), Options{Reporter: collect(&events)})
			actual := readAll(stream)
			expected := []Item{
				{Rune: RuneError, Pos: At(0, 1, 1)},
				{Rune: 'é', Pos: At(len(tc.input), 1, 2)},
			}
			compareItems(t, expected, actual)

			expectedEvents := []Event{
				{Kind: InvalidUTF8, Pos: At(0, 1, 1), Value: tc.value, Replaced: true},
			}
			if diff := cmp.Diff(expectedEvents, events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
