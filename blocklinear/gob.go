package blocklinear

// copyGOBFast copies one complete 64x8 GOB between a linear buffer
// window (row-major, stride linStride bytes, starting at linOff) and
// the swizzled buffer at byte offset gobAddr. The caller guarantees the
// full GOB lies inside the linear image region; copyGOBSlow handles the
// edge tiles where that doesn't hold.
func copyGOBFast(lin, swz []byte, linOff, linStride, gobAddr int, toSwizzled bool) {
	for y := 0; y < GobHeight; y++ {
		linRow := lin[linOff+y*linStride : linOff+y*linStride+GobWidth]
		rowBase := gobRowBase[y]
		swzRow := swz[gobAddr+rowBase : gobAddr+rowBase+304]

		if toSwizzled {
			copy(swzRow[0:16], linRow[0:16])
			copy(swzRow[32:48], linRow[16:32])
			copy(swzRow[256:272], linRow[32:48])
			copy(swzRow[288:304], linRow[48:64])
		} else {
			copy(linRow[0:16], swzRow[0:16])
			copy(linRow[16:32], swzRow[32:48])
			copy(linRow[32:48], swzRow[256:272])
			copy(linRow[48:64], swzRow[288:304])
		}
	}
}

// copyGOBSlow copies a partial GOB byte by byte, skipping any position
// that falls outside the [0,widthBytes) x [0,height) image region. x0,y0
// are the GOB's origin within the mip in byte/row coordinates.
func copyGOBSlow(lin, swz []byte, linOff, linStride, gobAddr int, toSwizzled bool, widthBytes, height, x0, y0 int) {
	for y := 0; y < GobHeight; y++ {
		if y0+y >= height {
			continue
		}
		for x := 0; x < GobWidth; x++ {
			if x0+x >= widthBytes {
				continue
			}
			linIdx := linOff + y*linStride + x
			swzIdx := gobAddr + gobOffset(x, y)
			if toSwizzled {
				swz[swzIdx] = lin[linIdx]
			} else {
				lin[linIdx] = swz[swzIdx]
			}
		}
	}
}
