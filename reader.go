package lzw

import (
	"errors"
	"io"
)

// errUnexpectedEOF indicates an unexpected end of the compressed
// stream, before the end-of-information code.
var errUnexpectedEOF = errors.New("lzw: unexpected end of file")

// errClosed indicates that the reader has been closed.
var errClosed = errors.New("lzw: reader is closed")

// chunkSize is the size of the chunks read from the underlying reader.
const chunkSize = 4096

// Reader decompresses an LZW stream read from an underlying reader.
type Reader struct {
	r   io.Reader
	d   *Decoder
	buf []byte // decoded bytes not yet delivered
	p   []byte // chunk buffer
	err error
}

// NewReader creates a reader decompressing the LZW stream read from r.
// The order gives the bit packing order of the stream and litWidth its
// root code size in bits, which must be in the range [2,8].
func NewReader(r io.Reader, order Order, litWidth int) (*Reader, error) {
	if r == nil {
		return nil, errors.New("lzw: reader must be not nil")
	}
	d, err := NewDecoder(litWidth, order)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, d: d, p: make([]byte, chunkSize)}, nil
}

// Read provides the decompressed stream. After the end-of-information
// code io.EOF is returned; if the underlying reader is drained before
// that code has been read, Read reports an unexpected end of file.
func (r *Reader) Read(p []byte) (n int, err error) {
	for {
		if len(r.buf) > 0 {
			n = copy(p, r.buf)
			r.buf = r.buf[n:]
			return n, nil
		}
		if r.err != nil {
			return 0, r.err
		}
		k, rerr := r.r.Read(r.p)
		if k > 0 {
			out, derr := r.d.Decode(r.p[:k])
			r.buf = out
			if derr != nil {
				r.err = derr
				continue
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				rerr = errUnexpectedEOF
			}
			r.err = rerr
		}
	}
}

// Close releases the reference to the underlying reader. It does not
// verify that the end of the stream has been reached.
func (r *Reader) Close() error {
	if r.err == errClosed {
		return errClosed
	}
	r.err = errClosed
	r.r = nil
	r.buf = nil
	return nil
}
