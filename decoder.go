package lzw

import (
	"io"

	"github.com/uli-go/lzw/bitstream"
	"github.com/uli-go/lzw/xlog"
)

// Order is the bit packing order of the compressed stream.
type Order = bitstream.Order

const (
	// LSB means least-significant bits first, as used by GIF.
	LSB = bitstream.LSB
	// MSB means most-significant bits first, as used by TIFF and PDF.
	MSB = bitstream.MSB
)

// Limits for the initial code size. Streams of the GIF family use root
// code sizes between 2 and 8 bits.
const (
	minCodeSize = 2
	maxCodeSize = 8
)

// maxWidth is the ceiling for the effective code width. No code of the
// stream occupies more than 12 bits.
const maxWidth = 12

// invalidCode marks the absence of a previous code. It is larger than
// any code that can be read at the maximum width.
const invalidCode = 1 << maxWidth

// Decoder decompresses a variable-bit-width LZW code stream. The
// compressed stream may be supplied in chunks of arbitrary size across
// multiple Decode calls; a code cut by a chunk boundary is completed
// when the next chunk arrives.
//
// A Decoder serves a single compressed stream and must not be used
// concurrently.
type Decoder struct {
	br *bitstream.Reader

	initCodeSize uint
	codeSize     uint

	clearCode uint32
	endCode   uint32
	nextCode  uint32
	prev      uint32

	// dict[c] holds the decoded bytes for code c. Entries never share
	// storage; Reset drops the learned region.
	dict [][]byte

	// partially read code carried over between Decode calls
	rem     uint32
	remBits uint

	err error
}

// NewDecoder creates a decoder for a stream with the given root code
// size, which must be in the range [2,8], read in the given bit order.
func NewDecoder(initCodeSize int, order Order) (*Decoder, error) {
	if !(minCodeSize <= initCodeSize && initCodeSize <= maxCodeSize) {
		return nil, newError("initCodeSize out of range")
	}
	d := &Decoder{
		br:           bitstream.NewReader(order),
		initCodeSize: uint(initCodeSize),
		clearCode:    1 << uint(initCodeSize),
		dict:         make([][]byte, 1<<maxWidth),
	}
	d.endCode = d.clearCode + 1
	d.Reset()
	return d, nil
}

// Reset restores the dictionary to its root entries, a single-byte
// entry for every code representable in the root code size, and
// restores the code width and the next free slot. Reset is called
// implicitly by NewDecoder and on every clear code. A partially read
// code carried between Decode calls is not affected.
func (d *Decoder) Reset() {
	for c := d.endCode + 1; c < d.nextCode; c++ {
		d.dict[c] = nil
	}
	for c := uint32(0); c < d.clearCode; c++ {
		d.dict[c] = []byte{byte(c)}
	}
	d.codeSize = d.initCodeSize
	d.nextCode = d.endCode + 1
	d.prev = invalidCode
}

// Decode decompresses the next chunk of the compressed stream and
// returns the bytes decoded from it. The returned slice is owned by
// the caller; it may be empty if the chunk ended before a single code
// was completed. Once the end-of-information code has been read,
// Decode returns the remaining output together with io.EOF and ignores
// further input. A decoder that returned another error must be
// discarded.
func (d *Decoder) Decode(p []byte) (out []byte, err error) {
	if d.err != nil {
		return nil, d.err
	}
	d.br.Reset(p)
	for {
		width := d.codeSize + 1
		code, n := d.readCode(width)
		if n < width {
			// chunk exhausted; Decode resumes here on the next call
			return out, nil
		}
		switch {
		case code == d.clearCode:
			xlog.Printf(debug, "clear code, dict reset\n")
			d.Reset()
		case code == d.endCode:
			xlog.Printf(debug, "end of information\n")
			d.err = io.EOF
			return out, io.EOF
		case code < d.nextCode:
			v := d.dict[code]
			out = append(out, v...)
			d.extend(v[0])
			d.prev = code
		case code == d.nextCode && d.prev != invalidCode &&
			d.dict[d.prev] != nil:
			// the code refers to the entry it creates itself
			v := d.dict[d.prev]
			e := make([]byte, len(v)+1)
			copy(e, v)
			e[len(v)] = v[0]
			d.commit(e)
			out = append(out, e...)
			d.prev = code
		case code == d.nextCode:
			// previous code unresolvable; nothing to emit
			d.prev = code
		default:
			d.err = errInvalidCode
			return out, d.err
		}
	}
}

// readCode reads the next code of the given width, completing a code
// whose first bits arrived at the end of the previous chunk. If the
// chunk ends before the code is complete, the bits read so far are
// saved and n < width is returned.
func (d *Decoder) readCode(width uint) (code uint32, n uint) {
	if d.remBits > 0 {
		v, k := d.br.ReadBits(width - d.remBits)
		if d.br.Order() == LSB {
			code = d.rem | v<<d.remBits
		} else {
			code = d.rem<<k | v
		}
		if k < width-d.remBits {
			d.rem = code
			d.remBits += k
			return 0, d.remBits
		}
		d.rem, d.remBits = 0, 0
		return code, width
	}
	code, n = d.br.ReadBits(width)
	if n < width {
		d.rem, d.remBits = code, n
	}
	return code, n
}

// extend learns a new dictionary entry, the value of the previous code
// with b appended. It is skipped when the previous code has no
// resolvable value, as at stream start and right after a clear code.
func (d *Decoder) extend(b byte) {
	if d.prev == invalidCode {
		return
	}
	v := d.dict[d.prev]
	if v == nil {
		return
	}
	e := make([]byte, len(v)+1)
	copy(e, v)
	e[len(v)] = b
	d.commit(e)
}

// commit stores e at the next free slot and grows the code width when
// the slot just filled was the last one of the current code space. The
// width never exceeds maxWidth; a full dictionary stays full until the
// next clear code.
func (d *Decoder) commit(e []byte) {
	if d.nextCode >= 1<<maxWidth {
		return
	}
	d.dict[d.nextCode] = e
	d.nextCode++
	if d.nextCode == 1<<(d.codeSize+1) && d.codeSize+1 < maxWidth {
		d.codeSize++
		xlog.Printf(debug, "code width now %d bits\n", d.codeSize+1)
	}
}
