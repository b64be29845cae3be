// Package lzw supports the decompression of variable-bit-width LZW
// streams as used by the GIF and TIFF family of formats.
//
// A stream can be decompressed through the Reader type, which wraps an
// io.Reader, or through the Decoder type directly. The Decoder is fed
// the compressed stream in chunks of arbitrary size and suspends and
// resumes in the middle of a code, so no buffering of the compressed
// payload is required.
package lzw
