package blocklinear

// forceSlowPath routes every GOB copy through copyGOBSlow, bypassing
// copyGOBFast. It exists so tests can exercise the spec's fast/slow
// equivalence property directly; see SetForceSlowPath.
var forceSlowPath bool

// SetForceSlowPath forces transformMip to use the per-byte GOB copy
// path even for complete, in-bounds GOBs. It is meant for tests only —
// production callers should leave it at the default (false).
func SetForceSlowPath(force bool) {
	forceSlowPath = force
}

// transformMip drives the address arithmetic and GOB primitives over
// one full mip level, in either direction. width, height and depth are
// already reduced to block units (1x1x1 for uncompressed formats).
// lin and swz hold at least DeswizzledMipSize / SwizzledMipSize bytes;
// bytes past those sizes are not touched.
func transformMip(width, height, depth, bpp, blockHeight, blockDepth int, lin, swz []byte, toSwizzled bool) {
	widthBytes := width * bpp
	wInGobs := widthInGobs(widthBytes)
	blockSize := blockSizeBytes(blockHeight, blockDepth)
	sliceSz := sliceSize(blockHeight, blockDepth, wInGobs, height)

	for z := 0; z < depth; z++ {
		zAddr := gobAddressZ(z, blockHeight, blockDepth, sliceSz)
		linZOff := z * width * height * bpp

		for y := 0; y < height; y += GobHeight {
			yAddr := zAddr + gobAddressY(y, blockHeight, blockSize, wInGobs)
			linYOff := linZOff + y*widthBytes

			for x := 0; x < widthBytes; x += GobWidth {
				gobAddr := yAddr + gobAddressX(x, blockSize)
				linOff := linYOff + x

				if !forceSlowPath && x+GobWidth < widthBytes && y+GobHeight < height {
					copyGOBFast(lin, swz, linOff, widthBytes, gobAddr, toSwizzled)
				} else {
					copyGOBSlow(lin, swz, linOff, widthBytes, gobAddr, toSwizzled, widthBytes, height, x, y)
				}
			}
		}
	}
}
