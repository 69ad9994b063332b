// Command blinfo prints the swizzled/deswizzled size and per-mip
// block-height/block-depth table for a surface descriptor, without
// touching any buffer. It exists for quickly sanity-checking a
// container format's dimensions against this library's sizing
// functions before wiring up the real convert path.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nintenstudio/CTegra-Swizzle/blocklinear"
	"github.com/nintenstudio/CTegra-Swizzle/internal/dump"
)

func main() {
	var (
		width, height, depth int
		bpp                  int
		blockW, blockH, blockD int
		mips, layers         int
		blockHeightOverride  int
	)

	flag.IntVar(&width, "width", 0, "mip-0 width in pixels")
	flag.IntVar(&height, "height", 0, "mip-0 height in pixels")
	flag.IntVar(&depth, "depth", 1, "mip-0 depth in pixels (1 for 2D)")
	flag.IntVar(&bpp, "bpp", 0, "bytes per pixel, or per compressed block for BCn formats")
	flag.IntVar(&blockW, "block-width", 1, "compressed block width in pixels")
	flag.IntVar(&blockH, "block-height-px", 1, "compressed block height in pixels")
	flag.IntVar(&blockD, "block-depth-px", 1, "compressed block depth in pixels")
	flag.IntVar(&mips, "mips", 1, "mipmap count")
	flag.IntVar(&layers, "layers", 1, "array layer count")
	flag.IntVar(&blockHeightOverride, "block-height", 0, "explicit mip-0 block height (1,2,4,8,16,32); 0 to infer")
	flag.Parse()

	if width <= 0 || height <= 0 || bpp <= 0 {
		fmt.Fprintln(os.Stderr, "blinfo: -width, -height and -bpp are required")
		os.Exit(2)
	}

	d := blocklinear.Descriptor{
		Width: width, Height: height, Depth: depth,
		BytesPerPixel:       bpp,
		BlockDim:            blocklinear.BlockDim{Width: blockW, Height: blockH, Depth: blockD},
		MipCount:            mips,
		LayerCount:          layers,
		BlockHeightOverride: blockHeightOverride,
	}

	plan := dump.BuildPlan(d)
	fmt.Print(dump.Fprint(plan))

	log.Printf("deswizzled size = %d, swizzled size = %d", d.DeswizzledSize(), d.SwizzledSize())
}
