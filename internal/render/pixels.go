package render

import "image/color"

// rgba is a color flattened to the byte order expected by WritePixels.
type rgba [4]byte

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA converts board cells (0 dead, non-zero alive) into RGBA
// pixels in buf, one pixel per cell.
func fillCellsRGBA(buf []byte, cells []uint8, on, off color.Color) {
	alive, dead := toRGBA(on), toRGBA(off)
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = alive
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
