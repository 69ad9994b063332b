package blocklinear

// BlockHeightMip0 derives the mip-0 block height (in GOBs) from a
// surface's height in rows, following the NVIDIA driver's padding
// heuristic: taller surfaces get taller blocks, up to 16.
func BlockHeightMip0(heightRows int) int {
	h := heightRows + heightRows/2
	switch {
	case h >= 128:
		return 16
	case h >= 64:
		return 8
	case h >= 32:
		return 4
	case h >= 16:
		return 2
	default:
		return 1
	}
}

// MipBlockHeight derives the block height of a mip level that started
// at bhMip0, halving it while the mip is too short to justify the
// padding a taller block would add. The result never exceeds bhMip0 and
// is always 1 once mipHeightRows drops to 8 or below.
func MipBlockHeight(mipHeightRows, bhMip0 int) int {
	bh := bhMip0
	for mipHeightRows <= (bh/2)*GobHeight && bh > 1 {
		bh /= 2
	}
	return bh
}

// BlockDepth derives the block depth (in GOBs) for a surface of the
// given pixel depth. Mirrors BlockHeightMip0's rounding (depth +
// depth/2) with thresholds in slices rather than rows; block depth
// tops out at 16.
func BlockDepth(depth int) int {
	d := depth + depth/2
	switch {
	case d >= 16:
		return 16
	case d >= 8:
		return 8
	case d >= 4:
		return 4
	case d >= 2:
		return 2
	default:
		return 1
	}
}

// MipBlockDepth derives the block depth of a mip level that started at
// bdMip0, halving it while the mip's depth is too shallow to need it.
func MipBlockDepth(mipDepth, bdMip0 int) int {
	bd := bdMip0
	for mipDepth <= bd/2 && bd > 1 {
		bd /= 2
	}
	return bd
}
