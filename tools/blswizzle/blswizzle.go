// Command blswizzle converts raw texture surface buffers between the
// linear and block-linear layouts. It is the external collaborator
// spec.md §1 deliberately keeps out of the core: the core never reads
// a file or parses a flag, this command does both.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/nintenstudio/CTegra-Swizzle/blocklinear"
	"github.com/nintenstudio/CTegra-Swizzle/internal/dump"
)

func main() {
	var (
		jobPath   string
		in, out   string
		direction string
		dumpPlan  bool

		width, height, depth int
		bpp                  int
		blockW, blockH, blockD int
		mips, layers         int
		blockHeightOverride  int
	)

	flag.StringVar(&jobPath, "job", "", "path to a YAML job file describing one or more conversions")
	flag.StringVar(&in, "in", "", "input buffer path (ignored if -job is set)")
	flag.StringVar(&out, "out", "", "output buffer path (ignored if -job is set)")
	flag.StringVar(&direction, "direction", "swizzle", "swizzle or deswizzle (ignored if -job is set)")
	flag.BoolVar(&dumpPlan, "dump", false, "print the per-mip layout plan before converting")

	flag.IntVar(&width, "width", 0, "mip-0 width in pixels")
	flag.IntVar(&height, "height", 0, "mip-0 height in pixels")
	flag.IntVar(&depth, "depth", 1, "mip-0 depth in pixels (1 for 2D)")
	flag.IntVar(&bpp, "bpp", 0, "bytes per pixel, or per compressed block for BCn formats")
	flag.IntVar(&blockW, "block-width", 1, "compressed block width in pixels")
	flag.IntVar(&blockH, "block-height-px", 1, "compressed block height in pixels")
	flag.IntVar(&blockD, "block-depth-px", 1, "compressed block depth in pixels")
	flag.IntVar(&mips, "mips", 1, "mipmap count")
	flag.IntVar(&layers, "layers", 1, "array layer count")
	flag.IntVar(&blockHeightOverride, "block-height", 0, "explicit mip-0 block height; 0 to infer")
	flag.Parse()

	var jobs []surfaceJob
	if jobPath != "" {
		jf, err := loadJobFile(jobPath)
		if err != nil {
			log.Fatal(err)
		}
		jobs = jf.Jobs
	} else {
		if in == "" || out == "" || width <= 0 || height <= 0 || bpp <= 0 {
			fmt.Fprintln(os.Stderr, "blswizzle: -job, or all of -in -out -width -height -bpp, are required")
			os.Exit(2)
		}
		jobs = []surfaceJob{{
			In: in, Out: out, Direction: direction,
			Width: width, Height: height, Depth: depth,
			BytesPerPixel:       bpp,
			MipCount:            mips,
			LayerCount:          layers,
			BlockHeightOverride: blockHeightOverride,
		}}
		jobs[0].BlockDim.Width, jobs[0].BlockDim.Height, jobs[0].BlockDim.Depth = blockW, blockH, blockD
	}

	for i, j := range jobs {
		if err := runJob(j, dumpPlan); err != nil {
			log.Fatalf("job %d (%s -> %s): %v", i, j.In, j.Out, err)
		}
	}
}

func printPlan(d blocklinear.Descriptor) {
	fmt.Print(dump.Fprint(dump.BuildPlan(d)))
}

func runJob(j surfaceJob, dumpPlan bool) error {
	d := j.descriptor()

	if dumpPlan {
		printPlan(d)
	}

	src, err := os.ReadFile(j.In)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", j.In)
	}

	var result []byte
	switch j.Direction {
	case "", "swizzle":
		result, err = blocklinear.SwizzleSurface(d, src)
	case "deswizzle":
		result, err = blocklinear.DeswizzleSurface(d, src)
	default:
		return errors.Errorf("unknown direction %q, want swizzle or deswizzle", j.Direction)
	}
	if err != nil {
		return errors.Wrap(err, "convert")
	}

	if err := os.WriteFile(j.Out, result, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %q", j.Out)
	}

	log.Printf("%s: %s -> %s (%d bytes -> %d bytes)", j.Direction, j.In, j.Out, len(src), len(result))
	return nil
}
