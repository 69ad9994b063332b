// Package dump renders a surface descriptor's per-mip layout plan for
// humans: block height/depth, linear and swizzled sizes, and running
// offsets. It is adapted from the god_of_war_browser debug dump helper
// that wraps go-spew for pretty-printing parsed asset structures; here
// it drives go-spew over a plan this package builds itself rather than
// over arbitrary values, since the audience is always the same shape
// of data (a per-mip, per-layer swizzle plan).
package dump

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/nintenstudio/CTegra-Swizzle/blocklinear"
)

var config = newConfig()

func newConfig() *spew.ConfigState {
	c := spew.NewDefaultConfig()
	c.DisableCapacities = true
	c.DisablePointerAddresses = true
	return c
}

// MipEntry describes one mip level's resolved geometry within a plan.
type MipEntry struct {
	Mip                     int
	Width, Height, Depth    int
	BlockHeight, BlockDepth int
	LinearSize, SwizzledSize int
	LinearOffset, SwizzledOffset int
}

// Plan is the full per-mip layout of one array layer of a surface.
type Plan struct {
	Descriptor  blocklinear.Descriptor
	LayerStride int // byte distance between consecutive layers in the swizzled buffer
	Mips        []MipEntry
}

// BuildPlan walks the same geometry blocklinear.SwizzleSurface uses
// internally and records it for inspection, without touching any
// buffer.
func BuildPlan(d blocklinear.Descriptor) Plan {
	plan := Plan{Descriptor: d}

	linOff, swzOff := 0, 0
	for mip := 0; mip < d.MipCount; mip++ {
		mw := mipDimPublicEquivalent(d.Width, d.BlockDim.Width, mip)
		mh := mipDimPublicEquivalent(d.Height, d.BlockDim.Height, mip)
		md := mipDimPublicEquivalent(d.Depth, d.BlockDim.Depth, mip)

		bhMip0 := blockHeightMip0(d)
		bdMip0 := blocklinear.BlockDepth(d.Depth)
		bh := blocklinear.MipBlockHeight(mh, bhMip0)
		bd := blocklinear.MipBlockDepth(md, bdMip0)

		linSize := blocklinear.DeswizzledMipSize(mw, mh, md, d.BytesPerPixel)
		swzSize := blocklinear.SwizzledMipSize(mw, mh, md, bh, d.BytesPerPixel)

		plan.Mips = append(plan.Mips, MipEntry{
			Mip: mip,
			Width: mw, Height: mh, Depth: md,
			BlockHeight: bh, BlockDepth: bd,
			LinearSize: linSize, SwizzledSize: swzSize,
			LinearOffset: linOff, SwizzledOffset: swzOff,
		})

		linOff += linSize
		swzOff += swzSize
	}

	if d.LayerCount > 1 {
		plan.LayerStride = blocklinear.AlignLayerSize(swzOff, d.Height, d.Depth, blockHeightMip0(d), 1)
	} else {
		plan.LayerStride = swzOff
	}

	return plan
}

func blockHeightMip0(d blocklinear.Descriptor) int {
	if d.BlockHeightOverride != 0 {
		return d.BlockHeightOverride
	}
	if d.Depth == 1 {
		return blocklinear.BlockHeightMip0(blocklinear.DivRoundUp(d.Height, d.BlockDim.Height))
	}
	return 1
}

func mipDimPublicEquivalent(dim, blockDim, mip int) int {
	px := dim >> uint(mip)
	if px < 1 {
		px = 1
	}
	v := blocklinear.DivRoundUp(px, blockDim)
	if v < 1 {
		v = 1
	}
	return v
}

// Sdump renders plan with the same go-spew configuration the teacher's
// utils.Dump family uses: no pointer addresses, no capacities, just the
// shape of the data.
func Sdump(plan Plan) string {
	return config.Sdump(plan)
}

// Fprint returns a short human table followed by the full go-spew dump.
func Fprint(plan Plan) string {
	s := fmt.Sprintf("surface %dx%dx%d bpp=%d mips=%d layers=%d layerStride=%d\n",
		plan.Descriptor.Width, plan.Descriptor.Height, plan.Descriptor.Depth,
		plan.Descriptor.BytesPerPixel, plan.Descriptor.MipCount, plan.Descriptor.LayerCount,
		plan.LayerStride)
	for _, m := range plan.Mips {
		s += fmt.Sprintf("  mip %2d: %4dx%4dx%-4d bh=%-2d bd=%-2d linear=%8d@%-10d swizzled=%8d@%-10d\n",
			m.Mip, m.Width, m.Height, m.Depth, m.BlockHeight, m.BlockDepth,
			m.LinearSize, m.LinearOffset, m.SwizzledSize, m.SwizzledOffset)
	}
	return s + Sdump(plan)
}
