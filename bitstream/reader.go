// Package bitstream supports bit-level reading and writing of byte
// streams in the two bit orders used by the LZW family of formats.
package bitstream

// Order specifies the packing order of bits within the bytes of a
// stream. LSB order fills the low-order bits of a byte first and is
// used by GIF; MSB order fills the high-order bits first and is used
// by TIFF and PDF.
type Order int

const (
	// LSB means least-significant bits first.
	LSB Order = iota
	// MSB means most-significant bits first.
	MSB
)

// Reader reads groups of bits from a sequence of byte chunks. The
// reader borrows the chunk it is reading from; Reset installs the next
// chunk while the bits of a partially consumed byte stay buffered, so
// a stream may be delivered in chunks of arbitrary size.
type Reader struct {
	order Order
	p     []byte
	off   int
	// unread bits of the most recently consumed byte
	v uint32
	n uint
}

// NewReader creates a bit reader for the given bit order.
func NewReader(order Order) *Reader { return &Reader{order: order} }

// Order returns the bit order of the reader.
func (r *Reader) Order() Order { return r.order }

// Reset installs p as the chunk to read from. Buffered bits of a
// partially consumed byte are kept; unread full bytes of the previous
// chunk are dropped.
func (r *Reader) Reset(p []byte) {
	r.p = p
	r.off = 0
}

// ReadBits reads up to count bits and returns them together with the
// number of bits actually read, which is less than count only if the
// current chunk is exhausted. A short read is not an error; the caller
// decides whether to resume after the next Reset. In LSB order the
// first bit read becomes the least significant bit of v, in MSB order
// the most significant of the count bits read.
func (r *Reader) ReadBits(count uint) (v uint32, n uint) {
	for n < count {
		if r.n == 0 {
			if r.off >= len(r.p) {
				return v, n
			}
			r.v = uint32(r.p[r.off])
			r.off++
			r.n = 8
		}
		k := count - n
		if k > r.n {
			k = r.n
		}
		if r.order == LSB {
			v |= (r.v & (1<<k - 1)) << n
			r.v >>= k
		} else {
			v = v<<k | r.v>>(r.n-k)
			r.v &= 1<<(r.n-k) - 1
		}
		r.n -= k
		n += k
	}
	return v, n
}
