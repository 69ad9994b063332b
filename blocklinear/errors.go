package blocklinear

import (
	"errors"
	"fmt"
)

// ErrNotEnoughData is returned by the swizzle/deswizzle operations when
// the supplied source buffer is shorter than the size the descriptor
// requires. It is reported before any output is produced.
var ErrNotEnoughData = errors.New("blocklinear: not enough data in source buffer")

var validBlockHeights = map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true, 32: true}

// invalid descriptors are programmer errors; the spec leaves their
// behavior undefined, so we panic rather than return a value a careless
// caller might ignore.

func validateBlockHeight(bh int) {
	if !validBlockHeights[bh] {
		panic(fmt.Sprintf("blocklinear: invalid block height %d, must be one of 1,2,4,8,16,32", bh))
	}
}

func validateDescriptor(d Descriptor) {
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 {
		panic("blocklinear: width, height and depth must be positive")
	}
	if d.BytesPerPixel <= 0 {
		panic("blocklinear: bytes per pixel must be positive")
	}
	if d.MipCount <= 0 {
		panic("blocklinear: mip count must be at least 1")
	}
	if d.LayerCount <= 0 {
		panic("blocklinear: layer count must be at least 1")
	}
	if d.BlockDim.Width <= 0 || d.BlockDim.Height <= 0 || d.BlockDim.Depth <= 0 {
		panic("blocklinear: block dimensions must be positive")
	}
	if d.BlockHeightOverride != 0 {
		validateBlockHeight(d.BlockHeightOverride)
	}
}
