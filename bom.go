package charstream

// BOM is the byte order mark, as delivered by ReadChar.
const BOM = '\uFEFF'

const (
	bomBE = 0xFEFF
	bomLE = 0xFFFE
)

// sniffBOM looks for a byte order mark at the very start of the stream.  On
// a match the mark is consumed, the encoding it indicates becomes active,
// and sniffBOM returns true.  Otherwise every byte it read is pushed back.
//
// UTF-16 marks are only recognized when a Unicode encoding was configured;
// the UTF-8 mark is also recognized over the single-byte code pages.
func (stream *Stream) sniffBOM() bool {
	configured := stream.enc

	var got [3]byte
	n := 0
	read := func() bool {
		b, ok := stream.raw.next()
		if ok {
			got[n] = b
			n++
		}
		return ok
	}
	unreadAll := func() {
		for i := n - 1; i >= 0; i-- {
			stream.raw.unread(got[i])
		}
	}

	if !read() {
		return false
	}
	switch got[0] {
	case 0xEF, 0xFE, 0xFF:
	default:
		unreadAll()
		return false
	}
	if !read() {
		unreadAll()
		return false
	}

	if configured.isUnicode() {
		switch uint16(got[0])<<8 | uint16(got[1]) {
		case bomBE:
			stream.adopt(UTF16BE, configured == UTF16 || configured == UTF16BE)
			return true
		case bomLE:
			stream.adopt(UTF16LE, configured == UTF16 || configured == UTF16LE)
			return true
		}
	}

	if read() && got == [3]byte{0xEF, 0xBB, 0xBF} {
		stream.adopt(UTF8, configured == UTF8)
		return true
	}
	unreadAll()
	return false
}

// adopt switches to the encoding indicated by a byte order mark, reporting
// a mismatch unless the configured encoding agreed with it.
func (stream *Stream) adopt(enc Encoding, agreed bool) {
	if !agreed {
		stream.reporter.Report(Event{
			Kind:     EncodingMismatch,
			Pos:      stream.pos,
			Expected: stream.enc,
			Detected: enc,
		})
	}
	stream.log.Debug("byte order mark found", "configured", stream.enc, "encoding", enc)
	stream.enc = enc
}
