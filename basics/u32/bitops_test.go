package u32

import "testing"

func TestRotL(t *testing.T) {
	tests := [...]struct {
		x uint32
		k uint
		z uint32
	}{
		{0x12345678, 0, 0x12345678},
		{0x12345678, 32, 0x12345678},
		{0x80000001, 1, 0x00000003},
		{0x12345678, 4, 0x23456781},
		{0x12345678, 13, 0x8acf0246},
		{0xdeadbeef, 31, 0xef56df77},
	}
	for _, c := range tests {
		z := RotL(c.x, c.k)
		if z != c.z {
			t.Errorf("RotL(%#08x, %d) = %#08x; want %#08x",
				c.x, c.k, z, c.z)
		}
	}
}

func TestLE(t *testing.T) {
	p := []byte{0x78, 0x56, 0x34, 0x12, 0xff}
	if x := LE(p); x != 0x12345678 {
		t.Fatalf("LE(%x) = %#08x; want %#08x", p, x, 0x12345678)
	}
}

func TestPutBE(t *testing.T) {
	var q [4]byte
	PutBE(q[:], 0xcafebabe)
	want := [4]byte{0xca, 0xfe, 0xba, 0xbe}
	if q != want {
		t.Fatalf("PutBE(%#08x) = % x; want % x", 0xcafebabe, q, want)
	}
}

func TestLEShort(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("LE on 3 bytes didn't panic")
		}
	}()
	LE([]byte{1, 2, 3})
}
