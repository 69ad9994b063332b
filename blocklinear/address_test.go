package blocklinear

import "testing"

// gobOffsetReference is the row/run decomposition from the spec,
// written out the long way so gobOffset's bit-sliced form can be
// checked against it by exhaustion.
func gobOffsetReference(x, y int) int {
	return ((x%64)/32)*256 + ((y%8)/2)*64 + ((x%32)/16)*32 + (y%2)*16 + (x % 16)
}

func TestGobOffsetMatchesReference(t *testing.T) {
	for y := 0; y < GobHeight; y++ {
		for x := 0; x < GobWidth; x++ {
			got := gobOffset(x, y)
			want := gobOffsetReference(x, y)
			if got != want {
				t.Fatalf("gobOffset(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestGobOffsetRowBases(t *testing.T) {
	for y := 0; y < GobHeight; y++ {
		got := gobOffset(0, y)
		if got != gobRowBase[y] {
			t.Errorf("gobOffset(0,%d) = %d, want gobRowBase[%d] = %d", y, got, y, gobRowBase[y])
		}
	}
}

func TestGobOffsetCoversWholeGOB(t *testing.T) {
	seen := make(map[int]bool, GobSize)
	for y := 0; y < GobHeight; y++ {
		for x := 0; x < GobWidth; x++ {
			off := gobOffset(x, y)
			if off < 0 || off >= GobSize {
				t.Fatalf("gobOffset(%d,%d) = %d out of GOB bounds", x, y, off)
			}
			if seen[off] {
				t.Fatalf("gobOffset(%d,%d) = %d collides with an earlier pair", x, y, off)
			}
			seen[off] = true
		}
	}
	if len(seen) != GobSize {
		t.Fatalf("gobOffset only covers %d of %d byte positions", len(seen), GobSize)
	}
}

func TestWidthInGobs(t *testing.T) {
	cases := []struct{ widthBytes, want int }{
		{0, 0},
		{1, 1},
		{64, 1},
		{65, 2},
		{1024, 16},
	}
	for _, c := range cases {
		if got := widthInGobs(c.widthBytes); got != c.want {
			t.Errorf("widthInGobs(%d) = %d, want %d", c.widthBytes, got, c.want)
		}
	}
}
