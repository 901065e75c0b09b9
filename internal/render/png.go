package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/SeamusWaldron/cubelets"
)

const backgroundHex = "#1e1e1e"

// PNGOptions control Image and SavePNG.
type PNGOptions struct {
	StickerSize int // pixels per sticker
	Palette     Palette
	Highlight   cubelets.Highlight
}

// Origin returns the pixel position of the top-left corner of the sticker
// at (row, col) of the 12x9 sticker grid.
func (o PNGOptions) Origin(row, col int) (x, y float64) {
	size := float64(o.StickerSize)
	return size/2 + float64(col)*size, size/2 + float64(row)*size
}

// Image draws the net.
func Image(n cubelets.Net, opts PNGOptions) image.Image {
	if opts.StickerSize <= 0 {
		opts.StickerSize = 40
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette
	}

	size := float64(opts.StickerSize)
	width := 4*cubelets.Size*opts.StickerSize + opts.StickerSize
	height := 3*cubelets.Size*opts.StickerSize + opts.StickerSize

	dc := gg.NewContext(width, height)
	dc.SetHexColor(backgroundHex)
	dc.Clear()

	inset := size / 16
	for row := 0; row < 3*cubelets.Size; row++ {
		for col := 0; col < 4*cubelets.Size; col++ {
			face, index, ok := FaceletAt(row, col)
			if !ok {
				continue
			}
			fl := n[face][index]
			x, y := opts.Origin(row, col)

			dc.DrawRectangle(x+inset, y+inset, size-2*inset, size-2*inset)
			dc.SetHexColor(palette(fl.Color))
			dc.Fill()

			if opts.Highlight.Has(fl.CubeletID) {
				dc.SetLineWidth(size / 10)
				dc.SetHexColor("#ff00ff")
				dc.DrawRectangle(x+2*inset, y+2*inset, size-4*inset, size-4*inset)
				dc.Stroke()
			}
		}
	}

	return dc.Image()
}

// SavePNG writes the net to path as a PNG.
func SavePNG(path string, n cubelets.Net, opts PNGOptions) error {
	img := Image(n, opts)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}
