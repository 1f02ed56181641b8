package surface

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
)

// EncodePNG writes the elevation field as an 8-bit grayscale heightmap,
// normalized to the grid's current elevation range.
func (g *Grid) EncodePNG(w io.Writer) error {
	min, max, _ := g.Stats()
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			v := (g.At(i, j) - min) / span * 255
			img.SetGray(i, j, color.Gray{Y: uint8(v)})
		}
	}
	return png.Encode(w, img)
}

// WriteRaw dumps the elevation field as little-endian float64s, row-major,
// for downstream tooling.
func (g *Grid) WriteRaw(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, g.Elevation)
}
