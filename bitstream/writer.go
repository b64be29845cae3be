package bitstream

// Writer assembles a bit stream into a byte buffer. It is the packing
// mirror of Reader.
type Writer struct {
	order Order
	buf   []byte
	v     uint32
	n     uint
}

// NewWriter creates a bit writer for the given bit order.
func NewWriter(order Order) *Writer { return &Writer{order: order} }

// WriteBits appends the count low-order bits of v to the stream. The
// count must not exceed 24 bits.
func (w *Writer) WriteBits(v uint32, count uint) {
	v &= 1<<count - 1
	if w.order == LSB {
		w.v |= v << w.n
		w.n += count
		for w.n >= 8 {
			w.buf = append(w.buf, byte(w.v))
			w.v >>= 8
			w.n -= 8
		}
		return
	}
	w.v = w.v<<count | v
	w.n += count
	for w.n >= 8 {
		w.buf = append(w.buf, byte(w.v>>(w.n-8)))
		w.n -= 8
		w.v &= 1<<w.n - 1
	}
}

// Flush pads the stream with zero bits up to the next byte boundary.
func (w *Writer) Flush() {
	if w.n == 0 {
		return
	}
	if w.order == LSB {
		w.buf = append(w.buf, byte(w.v))
	} else {
		w.buf = append(w.buf, byte(w.v<<(8-w.n)))
	}
	w.v, w.n = 0, 0
}

// Bytes returns the stream assembled so far. Call Flush first to
// include a trailing partial byte.
func (w *Writer) Bytes() []byte { return w.buf }
