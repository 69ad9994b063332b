package blocklinear

// DivRoundUp returns ceil(a/b) for positive a and b.
func DivRoundUp(a, b int) int {
	return (a + b - 1) / b
}

// RoundUp rounds a up to the nearest multiple of b.
func RoundUp(a, b int) int {
	return DivRoundUp(a, b) * b
}

// DeswizzledMipSize returns the byte size of one mip level in the
// linear (tightly packed) layout.
func DeswizzledMipSize(mipWidth, mipHeight, mipDepth, bpp int) int {
	return mipWidth * mipHeight * mipDepth * bpp
}

// SwizzledMipSize returns the byte size of one mip level in the
// block-linear layout, given the mip's own block height.
func SwizzledMipSize(mipWidth, mipHeight, mipDepth, blockHeight, bpp int) int {
	wInGobs := widthInGobs(mipWidth * bpp)
	hInGobs := DivRoundUp(mipHeight, blockHeight*GobHeight) * blockHeight
	bd := BlockDepth(mipDepth)
	dInGobs := RoundUp(mipDepth, bd)
	return wInGobs * hInGobs * dInGobs * GobSize
}

// AlignLayerSize rounds size up to the byte granularity one array layer
// must be padded to: a whole number of blocks, where the block's own
// height/depth (in GOBs) are derived from H, D and bhMip0 the same way
// a mip level's are. depthInGobs is always 1 for the surfaces this
// library drives (see spec Open Question 1: sparse tile width is
// unsupported, and Open Question 2: true 3D array textures are
// unverified upstream).
func AlignLayerSize(size, heightRows, depth, bhMip0, depthInGobs int) int {
	gobH := MipBlockHeight(heightRows, bhMip0)
	gobD := MipBlockDepth(depth, depthInGobs)
	blockOfGobs := gobH * gobD * GobSize
	return RoundUp(size, blockOfGobs)
}
