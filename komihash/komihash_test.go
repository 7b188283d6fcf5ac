package komihash

import (
	"bytes"
	"fmt"
	"testing"
)

// bulk returns the bytes 0, 1, 2, ... n-1 (mod 256).
func bulk(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestSum64Strings(t *testing.T) {
	tests := [...]struct {
		s    string
		seed uint64
		hash uint64
	}{
		{"This is a 32-byte testing string", 0, 0x05ad960802903a9d},
		{"The cat is out of the bag", 0, 0xd15723521d3c37b1},
		{"A 16-byte string", 0, 0x467caa28ea3da7a6},
		{"The new string", 0, 0xf18e67bc90c43233},
		{"7 chars", 0, 0x2c514f6e5dcb11cb},
		{"", 0, 0xb7683ea7430132b4},
		{"test1", 0, 0x4923a44ecfee1fef},

		{"This is a 32-byte testing string", 0x0123456789abcdef,
			0x6ce66a2e8d4979a5},
		{"The cat is out of the bag", 0x0123456789abcdef,
			0x5b1da0b43545d196},
		{"A 16-byte string", 0x0123456789abcdef, 0x26af914213d0c915},
		{"The new string", 0x0123456789abcdef, 0x62d9ca1b73250cb5},
		{"7 chars", 0x0123456789abcdef, 0x90ab7c9f831cd940},

		{"This is a 32-byte testing string", 256, 0x5f197b30bcec1e45},
		{"The cat is out of the bag", 256, 0xa761280322bb7698},
		{"A 16-byte string", 256, 0x11c31ccabaa524f1},
		{"The new string", 256, 0x3a43b7f58281c229},
		{"7 chars", 256, 0xcff90b0466b7e3a2},
	}
	for _, c := range tests {
		h := Sum64([]byte(c.s), c.seed)
		if h != c.hash {
			t.Errorf("Sum64(%q, %#x) = %#016x; want %#016x",
				c.s, c.seed, h, c.hash)
		}
	}
}

func TestSum64Bulk(t *testing.T) {
	tests := [...]struct {
		n    int
		hash uint64
	}{
		{3, 0x7a9717e9eea4be8b},
		{6, 0xa56469564c2ea0ff},
		{8, 0x00b4313a24431306},
		{12, 0x64c2ad96013f70fe},
		{20, 0x7a3888bc95545364},
		{31, 0xc77e02ed4b201b9a},
		{32, 0x256d74350303a1ba},
		{40, 0x59609c71697bb9df},
		{47, 0x36eb9e6a4c2c5e4b},
		{65, 0xaa1693cc349469e3},
		{100, 0x32fc13fb53105e42},
		{127, 0x42fc577583247703},
		{128, 0xce64d8a9bf390c81},
		{129, 0x89dbad2c6de7a2b0},
		{200, 0x181a24b642690f75},
		{256, 0xa9d9cde10342d965},
	}
	for _, c := range tests {
		h := Sum64(bulk(c.n), 0)
		if h != c.hash {
			t.Errorf("Sum64(bulk(%d), 0) = %#016x; want %#016x",
				c.n, h, c.hash)
		}
	}
}

func TestBytesEqualString(t *testing.T) {
	t1 := []byte{0x74, 0x65, 0x73, 0x74, 0x31}
	d1 := New(0)
	d1.Write(t1)
	d2 := New(0)
	d2.Write([]byte("test1"))
	if h1, h2 := d1.Sum64(), d2.Sum64(); h1 != h2 {
		t.Fatalf("hash of bytes %#016x != hash of string %#016x", h1, h2)
	}
}

func TestSeedSensitivity(t *testing.T) {
	for _, n := range []int{0, 5, 16, 40, 64, 200} {
		p := bulk(n)
		if Sum64(p, 1) == Sum64(p, 2) {
			t.Errorf("length %d: seeds 1 and 2 give the same hash", n)
		}
	}
}

func TestBranches(t *testing.T) {
	var buf bytes.Buffer
	debugOn(&buf)
	defer debugOff()
	tests := [...]struct {
		n     int
		trace string
	}{
		{0, "len=0 branch=short\n"},
		{15, "len=15 branch=short\n"},
		{16, "len=16 branch=medium\n"},
		{31, "len=31 branch=medium\n"},
		{32, "len=32 branch=tail\n"},
		{63, "len=63 branch=tail\n"},
		{64, "len=64 branch=bulk\nlen=0 branch=tail\n"},
		{65, "len=65 branch=bulk\nlen=1 branch=tail\n"},
	}
	for _, c := range tests {
		buf.Reset()
		Sum64(bulk(c.n), 0)
		var want bytes.Buffer
		for _, line := range bytes.SplitAfter([]byte(c.trace), []byte("\n")) {
			if len(line) > 0 {
				want.WriteString("komihash: ")
				want.Write(line)
			}
		}
		if got := buf.String(); got != want.String() {
			t.Errorf("length %d: trace %q; want %q",
				c.n, got, want.String())
		}
	}
}

func TestBoundariesDistinct(t *testing.T) {
	seen := make(map[uint64]int)
	for _, n := range []int{15, 16, 17, 31, 32, 33, 63, 64, 65} {
		h := Sum64(bulk(n), 0)
		if m, ok := seen[h]; ok {
			t.Errorf("lengths %d and %d share hash %#016x", m, n, h)
		}
		seen[h] = n
	}
}

func TestPadding(t *testing.T) {
	// The sentinel must separate messages that differ only in trailing
	// zero bytes.
	seen := make(map[uint64]int)
	for n := 0; n < 16; n++ {
		h := Sum64(make([]byte, n), 0)
		if m, ok := seen[h]; ok {
			t.Errorf("zero messages of length %d and %d collide", m, n)
		}
		seen[h] = n
	}
}

func BenchmarkSum64(b *testing.B) {
	for _, n := range []int{7, 31, 64, 1024} {
		p := bulk(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Sum64(p, 0)
			}
		})
	}
}
