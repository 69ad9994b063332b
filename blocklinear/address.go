package blocklinear

// A GOB (Group Of Bytes) is the atomic tile of the block-linear layout:
// 64 bytes wide, 8 rows tall.
const (
	GobWidth  = 64
	GobHeight = 8
	GobSize   = GobWidth * GobHeight
)

// gobRowBase holds, for each row y in [0,8) of a GOB, the byte offset
// within the GOB at which that row's first 16-byte run starts. The
// remaining three 16-byte runs of the row sit at rowBase+32, +256 and
// +288 — see gobOffset.
var gobRowBase = [GobHeight]int{0, 16, 64, 80, 128, 144, 192, 208}

// gobOffset returns the position of byte (x,y) within a single GOB,
// for 0<=x<64 and 0<=y<8. This is the bit-sliced form of the Tegra
// Z-order curve; it is equivalent to (and verified by exhaustion
// against) the row/run decomposition recorded in gobRowBase.
func gobOffset(x, y int) int {
	return ((x & 0x20) << 3) | ((y & 0x6) << 5) | ((x & 0x10) << 1) | ((y & 1) << 4) | (x & 0xF)
}

// widthInGobs returns how many whole GOBs are needed to cover
// widthBytes bytes of a row.
func widthInGobs(widthBytes int) int {
	return DivRoundUp(widthBytes, GobWidth)
}

// blockSizeBytes is the byte size of one block: blockHeight*blockDepth
// GOBs stacked vertically and along depth, one GOB wide.
func blockSizeBytes(blockHeight, blockDepth int) int {
	return GobSize * blockHeight * blockDepth
}

// sliceSize is the byte size of one Z-slice of the swizzled buffer.
func sliceSize(blockHeight, blockDepth, widthInGobs, heightRows int) int {
	heightInBlocks := DivRoundUp(heightRows, blockHeight*GobHeight)
	return heightInBlocks * blockSizeBytes(blockHeight, blockDepth) * widthInGobs
}

// gobAddressZ returns the byte offset contributed by the z coordinate.
func gobAddressZ(z, blockHeight, blockDepth, sliceSz int) int {
	return (z/blockDepth)*sliceSz + (z%blockDepth)*GobSize*blockHeight
}

// gobAddressY returns the byte offset contributed by the y coordinate.
func gobAddressY(y, blockHeight, blockSize, widthInGobs int) int {
	blockHeightBytes := blockHeight * GobHeight
	return (y/blockHeightBytes)*blockSize*widthInGobs + ((y%blockHeightBytes)/GobHeight)*GobSize
}

// gobAddressX returns the byte offset contributed by the x coordinate
// (in bytes, not pixels).
func gobAddressX(x, blockSize int) int {
	return (x / GobWidth) * blockSize
}
