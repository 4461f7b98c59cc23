package charstream

// PushbackSize is the number of characters, and separately the number of
// raw bytes, that can be pushed back onto a Stream.  Pushing more drops the
// oldest entry.
const PushbackSize = 5

// pushback is a fixed-capacity LIFO.  When full, push discards the entry
// that was pushed first.
type pushback[T any] struct {
	buf [PushbackSize]T
	n   int
}

func (pb *pushback[T]) push(v T) {
	if pb.n == len(pb.buf) {
		copy(pb.buf[:], pb.buf[1:])
		pb.n--
	}
	pb.buf[pb.n] = v
	pb.n++
}

func (pb *pushback[T]) pop() (T, bool) {
	if pb.n == 0 {
		var zero T
		return zero, false
	}
	pb.n--
	v := pb.buf[pb.n]
	var zero T
	pb.buf[pb.n] = zero
	return v, true
}

func (pb *pushback[T]) len() int {
	return pb.n
}
