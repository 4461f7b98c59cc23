package charstream

const esc = 0x1B

// iso2022State tracks ISO-2022 designator escape sequences.  Designators
// are "ESC ( x" for ISO 646 variants, and "ESC $ x" or "ESC $ ( x" for
// multibyte character sets.
type iso2022State uint8

const (
	isoASCII iso2022State = iota
	isoEsc
	isoEscDollar
	isoEscDollarParen
	isoEscParen
	isoNonASCII
)

// step advances the state machine over b and returns the byte to deliver.
// Escape sequences pass through unchanged; bytes of a non-ASCII character
// set come back with the high bit set, to be cleared again on output.
func (st *iso2022State) step(b byte) byte {
	if b == esc {
		*st = isoEsc
		return b
	}
	switch *st {
	case isoEsc:
		switch b {
		case '$':
			*st = isoEscDollar
		case '(':
			*st = isoEscParen
		default:
			*st = isoASCII
		}
	case isoEscDollar:
		if b == '(' {
			*st = isoEscDollarParen
		} else {
			*st = isoNonASCII
		}
	case isoEscDollarParen:
		*st = isoNonASCII
	case isoEscParen:
		*st = isoASCII
	case isoNonASCII:
		b |= 0x80
	case isoASCII:
	}
	return b
}
