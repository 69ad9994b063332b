package dump

import (
	"strings"
	"testing"

	"github.com/nintenstudio/CTegra-Swizzle/blocklinear"
)

func TestBuildPlanMatchesSurfaceSize(t *testing.T) {
	d := blocklinear.Descriptor{
		Width: 128, Height: 128, Depth: 1,
		BytesPerPixel: 16,
		BlockDim:      blocklinear.BlockDim{Width: 4, Height: 4, Depth: 1},
		MipCount:      10,
		LayerCount:    6,
	}

	plan := BuildPlan(d)
	if len(plan.Mips) != d.MipCount {
		t.Fatalf("len(plan.Mips) = %d, want %d", len(plan.Mips), d.MipCount)
	}

	swzSum := 0
	for _, m := range plan.Mips {
		swzSum += m.SwizzledSize
	}
	wantStride := blocklinear.AlignLayerSize(swzSum, d.Height, d.Depth, blockHeightMip0(d), 1)
	if plan.LayerStride != wantStride {
		t.Fatalf("plan.LayerStride = %d, want %d", plan.LayerStride, wantStride)
	}

	total := plan.LayerStride*(d.LayerCount-1) + swzSum
	if total != d.SwizzledSize() {
		t.Fatalf("plan-derived total %d != Descriptor.SwizzledSize() %d", total, d.SwizzledSize())
	}
}

func TestFprintIncludesHeader(t *testing.T) {
	d := blocklinear.Descriptor{
		Width: 64, Height: 64, Depth: 1,
		BytesPerPixel: 4,
		BlockDim:      blocklinear.BlockDim{Width: 1, Height: 1, Depth: 1},
		MipCount:      1,
		LayerCount:    1,
	}
	out := Fprint(BuildPlan(d))
	if !strings.Contains(out, "surface 64x64x1 bpp=4") {
		t.Fatalf("Fprint output missing header, got: %q", out)
	}
}
