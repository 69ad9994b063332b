package blocklinear

import "testing"

func TestDeswizzledMipSize(t *testing.T) {
	if got := DeswizzledMipSize(256, 256, 1, 4); got != 262144 {
		t.Errorf("DeswizzledMipSize(256,256,1,4) = %d, want 262144", got)
	}
}

func TestSwizzledMipSize(t *testing.T) {
	cases := []struct {
		w, h, d, bh, bpp, want int
	}{
		{256, 256, 1, 16, 4, 262144},
		{64, 64, 1, 4, 16, 65536},
	}
	for _, c := range cases {
		got := SwizzledMipSize(c.w, c.h, c.d, c.bh, c.bpp)
		if got != c.want {
			t.Errorf("SwizzledMipSize(%d,%d,%d,bh=%d,bpp=%d) = %d, want %d",
				c.w, c.h, c.d, c.bh, c.bpp, got, c.want)
		}
	}
}

func TestSizeConsistency(t *testing.T) {
	descriptors := []Descriptor{
		{Width: 256, Height: 256, Depth: 1, BytesPerPixel: 4, BlockDim: BlockDim{1, 1, 1}, MipCount: 1, LayerCount: 1},
		{Width: 65, Height: 65, Depth: 1, BytesPerPixel: 4, BlockDim: BlockDim{1, 1, 1}, MipCount: 1, LayerCount: 1, BlockHeightOverride: 2},
		{Width: 128, Height: 128, Depth: 1, BytesPerPixel: 16, BlockDim: BlockDim{4, 4, 1}, MipCount: 10, LayerCount: 6},
		{Width: 32, Height: 32, Depth: 8, BytesPerPixel: 4, BlockDim: BlockDim{1, 1, 1}, MipCount: 3, LayerCount: 1},
	}
	for _, d := range descriptors {
		swz := d.SwizzledSize()
		deswz := d.DeswizzledSize()
		if swz < deswz {
			t.Errorf("%+v: SwizzledSize() = %d < DeswizzledSize() = %d", d, swz, deswz)
		}
	}
}

func TestCubemapMipchainSize(t *testing.T) {
	// BC7 cubemap with a full mip chain: layer_count=6, mipmap_count=10,
	// W=H=128, bpp=16, block_dim=4x4x1.
	d := Descriptor{
		Width: 128, Height: 128, Depth: 1,
		BytesPerPixel: 16,
		BlockDim:      BlockDim{4, 4, 1},
		MipCount:      10,
		LayerCount:    6,
	}

	perLayer := 0
	for _, p := range d.planMips() {
		perLayer += p.swzSize
	}
	aligned := AlignLayerSize(perLayer, d.Height, d.Depth, d.blockHeightMip0(), 1)
	want := aligned*(d.LayerCount-1) + perLayer

	if got := d.SwizzledSize(); got != want {
		t.Errorf("SwizzledSize() = %d, want %d (aligned-per-layer sum)", got, want)
	}
}

func TestAlignLayerSize(t *testing.T) {
	got := AlignLayerSize(100, 256, 1, 16, 1)
	blockOfGobs := MipBlockHeight(256, 16) * MipBlockDepth(1, 1) * GobSize
	if got%blockOfGobs != 0 {
		t.Errorf("AlignLayerSize(100,...) = %d is not a multiple of %d", got, blockOfGobs)
	}
	if got < 100 {
		t.Errorf("AlignLayerSize(100,...) = %d rounded down", got)
	}
}

func TestDivRoundUpAndRoundUp(t *testing.T) {
	cases := []struct{ a, b, wantDiv, wantRound int }{
		{0, 64, 0, 0},
		{1, 64, 1, 64},
		{64, 64, 1, 64},
		{65, 64, 2, 128},
	}
	for _, c := range cases {
		if got := DivRoundUp(c.a, c.b); got != c.wantDiv {
			t.Errorf("DivRoundUp(%d,%d) = %d, want %d", c.a, c.b, got, c.wantDiv)
		}
		if got := RoundUp(c.a, c.b); got != c.wantRound {
			t.Errorf("RoundUp(%d,%d) = %d, want %d", c.a, c.b, got, c.wantRound)
		}
	}
}
