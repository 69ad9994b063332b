package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nintenstudio/CTegra-Swizzle/blocklinear"
)

// jobFile is the on-disk shape of a -job YAML file: one or more
// surfaces to convert in a single invocation. Mirrors the
// god_of_war_browser twk package's habit of round-tripping structured
// data through yaml.v3 rather than a bespoke text format.
type jobFile struct {
	Jobs []surfaceJob `yaml:"jobs"`
}

type surfaceJob struct {
	In        string `yaml:"in"`
	Out       string `yaml:"out"`
	Direction string `yaml:"direction"` // "swizzle" or "deswizzle"

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`

	BytesPerPixel int `yaml:"bpp"`
	BlockDim      struct {
		Width, Height, Depth int
	} `yaml:"block_dim"`
	MipCount            int `yaml:"mips"`
	LayerCount          int `yaml:"layers"`
	BlockHeightOverride int `yaml:"block_height,omitempty"`
}

func (j surfaceJob) descriptor() blocklinear.Descriptor {
	bd := blocklinear.BlockDim{Width: j.BlockDim.Width, Height: j.BlockDim.Height, Depth: j.BlockDim.Depth}
	if bd.Width == 0 {
		bd.Width = 1
	}
	if bd.Height == 0 {
		bd.Height = 1
	}
	if bd.Depth == 0 {
		bd.Depth = 1
	}
	depth := j.Depth
	if depth == 0 {
		depth = 1
	}
	mips := j.MipCount
	if mips == 0 {
		mips = 1
	}
	layers := j.LayerCount
	if layers == 0 {
		layers = 1
	}

	return blocklinear.Descriptor{
		Width: j.Width, Height: j.Height, Depth: depth,
		BytesPerPixel:       j.BytesPerPixel,
		BlockDim:            bd,
		MipCount:            mips,
		LayerCount:          layers,
		BlockHeightOverride: j.BlockHeightOverride,
	}
}

func loadJobFile(path string) (jobFile, error) {
	var jf jobFile
	raw, err := os.ReadFile(path)
	if err != nil {
		return jf, errors.Wrapf(err, "failed to read job file %q", path)
	}
	if err := yaml.Unmarshal(raw, &jf); err != nil {
		return jf, errors.Wrapf(err, "failed to parse job file %q", path)
	}
	return jf, nil
}
