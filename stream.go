package charstream

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// EOF is returned by ReadChar at end of stream.
const EOF rune = -1

// Options holds configurable parameters for a Stream.
type Options struct {
	// Encoding is the declared encoding of the input.  A byte order mark
	// at the start of the input may override it.
	//
	// Default is UTF8.
	//
	Encoding Encoding

	// TabSize is the distance between tab stops.  Tabs are expanded to
	// spaces.
	//
	// Default is 8.
	//
	TabSize int

	// BlockSize is the number of bytes to read at a time from sources
	// that are not already an io.ByteReader.
	//
	// Default is 4096.
	//
	BlockSize int

	// Reporter receives diagnostics.
	//
	// Default discards them.
	//
	Reporter Reporter

	// Logger receives debug logging.
	//
	// Default discards it.
	//
	Logger *slog.Logger

	// StripBOM drops a leading byte order mark instead of returning it as
	// the first character.
	StripBOM bool

	// SplitSurrogates makes UTF-16 decoding return every 16-bit unit on
	// its own, surrogates included, instead of joining surrogate pairs and
	// replacing unpaired surrogates with RuneError.
	SplitSurrogates bool
}

// Stream decodes characters from a byte stream for a markup tokenizer.  It
// normalizes line endings to '\n', expands tabs to spaces, strips control
// characters other than ESC, and tracks the line and column of the next
// character.  A Stream is not safe for concurrent use.
type Stream struct {
	// raw is the byte-level cursor over the source.
	raw rawCursor

	// reporter receives diagnostics.
	reporter Reporter

	// log receives debug logging.
	log *slog.Logger

	// enc is the active encoding.
	enc Encoding

	// tabSize is the distance between tab stops.
	tabSize int

	// stripBOM drops a leading byte order mark.
	stripBOM bool

	// splitSurrogates returns UTF-16 units unjoined.
	splitSurrogates bool

	// pos is the position of the next character.
	pos Position

	// lastColumn is the column before the latest character read, used by
	// UngetChar when no better record exists.
	lastColumn int

	// tabs is the number of spaces still owed for the latest tab.
	tabs int

	// chars holds characters handed back with UngetChar.
	chars pushback[savedChar]

	// history holds the position before each recently returned character.
	history pushback[Position]

	// peeked is a decoded character read past a carriage return.
	peeked    savedChar
	hasPeeked bool

	// lookingForBOM is true until the first character is decoded.
	lookingForBOM bool

	// iso is the ISO-2022 escape sequence state.
	iso iso2022State

	// endOfStream is latched once the source is exhausted.
	endOfStream bool
}

// savedChar is a character waiting to be returned again, together with the
// position that follows it.
type savedChar struct {
	value rune
	after Position
}

// New constructs a new Stream.
//
// "New(r, o)" is exactly equivalent to allocating a zero-valued Stream and
// calling "Init(r, o)" on it.
func New(r io.Reader, o Options) *Stream {
	stream := new(Stream)
	stream.Init(r, o)
	return stream
}

// Init initializes this Stream with the given io.Reader and Options.
func (stream *Stream) Init(r io.Reader, o Options) {
	if o.Encoding >= numEncodings {
		panic(fmt.Sprintf("invalid Encoding %d", uint8(o.Encoding)))
	}

	ts := o.TabSize
	if ts < 0 {
		panic("TabSize < 0")
	}
	if ts == 0 {
		ts = 8
	}

	bs := o.BlockSize
	if bs < 0 {
		panic("BlockSize < 0")
	}
	if bs == 0 {
		bs = 4096
	}

	rep := o.Reporter
	if rep == nil {
		rep = discard{}
	}

	log := o.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	src, ok := r.(io.ByteReader)
	if !ok {
		src = bufio.NewReaderSize(r, bs)
	}

	*stream = Stream{
		reporter:        rep,
		log:             log,
		enc:             o.Encoding,
		tabSize:         ts,
		stripBOM:        o.StripBOM,
		splitSurrogates: o.SplitSurrogates,
		pos:             MakePosition(),
		lastColumn:      1,
		lookingForBOM:   o.Encoding.sniffsUTF8BOM(),
	}
	stream.raw.init(src, log)
}

// Encoding returns the active encoding.  It differs from the configured one
// once a byte order mark has been found that says otherwise.
func (stream *Stream) Encoding() Encoding {
	return stream.enc
}

// TabSize returns the distance between tab stops.
func (stream *Stream) TabSize() int {
	return stream.tabSize
}

// Position returns the position of the next character.
func (stream *Stream) Position() Position {
	return stream.pos
}

// Line returns the line of the next character.
func (stream *Stream) Line() int {
	return stream.pos.Line
}

// Column returns the column of the next character.
func (stream *Stream) Column() int {
	return stream.pos.Column
}

// IsEndOfStream returns true once the source has been exhausted.  Characters
// pushed back with UngetChar may still be pending.
func (stream *Stream) IsEndOfStream() bool {
	return stream.endOfStream
}

// Err returns the I/O error, other than io.EOF, that ended the source, if
// any.  Decoding treats such an error as end of stream.
func (stream *Stream) Err() error {
	return stream.raw.err
}

// next returns the next decoded character, taking the character read past a
// carriage return first.
func (stream *Stream) next() (rune, bool) {
	if stream.hasPeeked {
		stream.hasPeeked = false
		stream.pos.Offset = stream.peeked.after.Offset
		return stream.peeked.value, true
	}
	r, ok := stream.decodeChar()
	stream.pos.Offset = stream.raw.offset
	if !ok {
		stream.endOfStream = true
	}
	return r, ok
}

// ReadChar returns the next character, or EOF.
func (stream *Stream) ReadChar() rune {
	if saved, ok := stream.chars.pop(); ok {
		if saved.value != EOF {
			stream.history.push(stream.pos)
		}
		stream.pos = saved.after
		return saved.value
	}

	before := stream.pos
	stream.lastColumn = stream.pos.Column

	if stream.tabs > 0 {
		stream.tabs--
		stream.pos.Column++
		stream.history.push(before)
		return ' '
	}

	for {
		at := stream.pos
		c, ok := stream.next()
		if !ok {
			return EOF
		}

		switch {
		case c == '\n':
			stream.pos.newline()

		case c == '\r':
			afterCR := stream.pos.Offset
			c2, ok := stream.next()
			if ok && c2 != '\n' {
				stream.peeked = savedChar{value: c2, after: Position{Offset: stream.pos.Offset}}
				stream.hasPeeked = true
				stream.pos.Offset = afterCR
			}
			stream.pos.newline()
			c = '\n'

		case c == '\t':
			stream.tabs = stream.pos.nextTabStop(stream.tabSize) - 1
			stream.pos.Column++
			c = ' '

		case c == esc:
			// kept for ISO-2022

		case c > 0 && c < 0x20:
			continue

		case stream.enc.predecoded():
			stream.pos.Column++

		default:
			if stream.enc == MacRoman {
				c = DecodeMacRoman(byte(c))
			}
			// typically smart quotes pasted from a word processor
			if c >= 0x80 && c < 0xA0 {
				stream.reporter.Report(Event{
					Kind:  WindowsChars,
					Pos:   at,
					Value: c,
				})
				c = DecodeWin1252(byte(c))
				if c == 0 {
					continue
				}
			}
			stream.pos.Column++
		}

		stream.history.push(before)
		return c
	}
}

// UngetChar pushes c back so that the next ReadChar returns it, and moves
// the position back to where it was before c was read.  Characters should
// be pushed back in the reverse of the order ReadChar returned them.  Up to
// PushbackSize characters can be pending; pushing more silently drops the
// one pushed back first.
func (stream *Stream) UngetChar(c rune) {
	after := stream.pos
	if c == EOF {
		stream.chars.push(savedChar{value: c, after: after})
		return
	}
	if prev, ok := stream.history.pop(); ok {
		stream.pos = prev
	} else {
		stream.pos.Column = stream.lastColumn
		if c == '\n' && stream.pos.Line > 1 {
			stream.pos.Line--
		}
	}
	stream.chars.push(savedChar{value: c, after: after})
}

// PeekChar returns the next character without consuming it.
func (stream *Stream) PeekChar() rune {
	c := stream.ReadChar()
	stream.UngetChar(c)
	return c
}

// Take consumes one character, advancing the stream only if the next
// character matches pred.
func (stream *Stream) Take(pred func(rune) bool) (rune, bool) {
	c := stream.ReadChar()
	if c != EOF && pred(c) {
		return c, true
	}
	stream.UngetChar(c)
	return 0, false
}

// TakeWhile consumes zero or more characters, advancing the stream so long
// as pred returns true for each new character.
//
// If max is negative, then the number of characters that can match is
// unbounded; otherwise, max is the upper limit on the number of characters
// matched.
func (stream *Stream) TakeWhile(max int, out []rune, pred func(rune) bool) []rune {
	count := 0
	for max < 0 || count < max {
		c := stream.ReadChar()
		if c == EOF || !pred(c) {
			stream.UngetChar(c)
			break
		}
		count++
		out = append(out, c)
	}
	return out
}

// TakeUntil consumes zero or more characters, advancing the stream until
// pred returns true for a character.
//
// If max is negative, then the number of characters that can match is
// unbounded; otherwise, max is the upper limit on the number of characters
// matched.
func (stream *Stream) TakeUntil(max int, out []rune, pred func(rune) bool) []rune {
	return stream.TakeWhile(max, out, func(r rune) bool { return !pred(r) })
}
