package bitstream

import "testing"

func TestReadBitsLSB(t *testing.T) {
	r := NewReader(LSB)
	r.Reset([]byte{0xa9})
	tests := []struct {
		count uint
		v     uint32
		n     uint
	}{
		{1, 1, 1},
		{3, 4, 3},
		{4, 10, 4},
	}
	for i, tc := range tests {
		v, n := r.ReadBits(tc.count)
		if v != tc.v || n != tc.n {
			t.Fatalf("read %d: got (%d, %d); want (%d, %d)",
				i, v, n, tc.v, tc.n)
		}
	}
}

func TestReadBitsMSB(t *testing.T) {
	r := NewReader(MSB)
	r.Reset([]byte{0xa9})
	tests := []struct {
		count uint
		v     uint32
		n     uint
	}{
		{1, 1, 1},
		{3, 2, 3},
		{4, 9, 4},
	}
	for i, tc := range tests {
		v, n := r.ReadBits(tc.count)
		if v != tc.v || n != tc.n {
			t.Fatalf("read %d: got (%d, %d); want (%d, %d)",
				i, v, n, tc.v, tc.n)
		}
	}
}

func TestReadBitsShort(t *testing.T) {
	r := NewReader(LSB)
	r.Reset([]byte{0xff})
	if v, n := r.ReadBits(12); v != 0xff || n != 8 {
		t.Fatalf("got (%#x, %d); want (0xff, 8)", v, n)
	}
	if v, n := r.ReadBits(3); v != 0 || n != 0 {
		t.Fatalf("got (%d, %d); want (0, 0)", v, n)
	}
	r.Reset([]byte{0x0f})
	if v, n := r.ReadBits(4); v != 0xf || n != 4 {
		t.Fatalf("got (%#x, %d); want (0xf, 4)", v, n)
	}
}

func TestReadBitsAcrossChunksLSB(t *testing.T) {
	r := NewReader(LSB)
	r.Reset([]byte{0xa9})
	if v, n := r.ReadBits(4); v != 9 || n != 4 {
		t.Fatalf("got (%d, %d); want (9, 4)", v, n)
	}
	// the high nibble of 0xa9 stays buffered across the Reset
	r.Reset([]byte{0xff})
	if v, n := r.ReadBits(8); v != 0xfa || n != 8 {
		t.Fatalf("got (%#x, %d); want (0xfa, 8)", v, n)
	}
}

func TestReadBitsAcrossChunksMSB(t *testing.T) {
	r := NewReader(MSB)
	r.Reset([]byte{0xa9})
	if v, n := r.ReadBits(4); v != 0xa || n != 4 {
		t.Fatalf("got (%#x, %d); want (0xa, 4)", v, n)
	}
	r.Reset([]byte{0xff})
	if v, n := r.ReadBits(8); v != 0x9f || n != 8 {
		t.Fatalf("got (%#x, %d); want (0x9f, 8)", v, n)
	}
}

func TestResetDropsUnreadBytes(t *testing.T) {
	r := NewReader(LSB)
	r.Reset([]byte{0xaa, 0xbb})
	if v, n := r.ReadBits(8); v != 0xaa || n != 8 {
		t.Fatalf("got (%#x, %d); want (0xaa, 8)", v, n)
	}
	r.Reset([]byte{0xcc})
	if v, n := r.ReadBits(8); v != 0xcc || n != 8 {
		t.Fatalf("got (%#x, %d); want (0xcc, 8)", v, n)
	}
}
