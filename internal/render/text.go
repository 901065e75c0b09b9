// Package render draws the facelet net as styled terminal text or as a PNG.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubelets"
)

// Palette maps a sticker color to "#rrggbb".
type Palette func(cubelets.Color) string

// DefaultPalette uses the built-in sticker colors.
func DefaultPalette(c cubelets.Color) string {
	return c.Hex()
}

// Cursor points at one facelet of the net.
type Cursor struct {
	Face  cubelets.Face
	Index int // 0..8, row-major as seen from outside
}

// Row and Col return the cursor position in the 12x9 sticker grid.
func (c Cursor) Row() int {
	return cubelets.NetLayout[c.Face].Row*cubelets.Size + c.Index/cubelets.Size
}

func (c Cursor) Col() int {
	return cubelets.NetLayout[c.Face].Col*cubelets.Size + c.Index%cubelets.Size
}

// TextOptions control Text.
type TextOptions struct {
	Palette   Palette
	Highlight cubelets.Highlight
	Cursor    *Cursor
	Plain     bool // no colors, letters only
}

var (
	gapCell = "   "

	highlightMark = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorMark    = lipgloss.NewStyle().Bold(true).Blink(true)
)

// Text renders the net as a cross, three characters per sticker. Stickers
// of highlighted cubelets are wrapped in parentheses and the cursor
// sticker in brackets.
func Text(n cubelets.Net, opts TextOptions) string {
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette
	}

	var b strings.Builder
	for row := 0; row < 3*cubelets.Size; row++ {
		line := make([]string, 0, 4*cubelets.Size)
		for col := 0; col < 4*cubelets.Size; col++ {
			face, index, ok := FaceletAt(row, col)
			if !ok {
				line = append(line, gapCell)
				continue
			}
			line = append(line, cell(n[face][index], face, index, palette, opts))
		}
		b.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func cell(fl cubelets.Facelet, face cubelets.Face, index int, palette Palette, opts TextOptions) string {
	left, right := " ", " "
	isCursor := opts.Cursor != nil && opts.Cursor.Face == face && opts.Cursor.Index == index
	isHighlight := opts.Highlight.Has(fl.CubeletID)
	switch {
	case isCursor:
		left, right = "[", "]"
	case isHighlight:
		left, right = "(", ")"
	}
	text := left + fl.Color.String() + right
	if opts.Plain {
		return text
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(palette(fl.Color)))
	switch {
	case isCursor:
		style = style.Inherit(cursorMark)
	case isHighlight:
		style = style.Inherit(highlightMark)
	}
	return style.Render(text)
}

// FaceletAt maps a position in the 12x9 sticker grid to the facelet it
// shows. ok is false for the empty corners of the cross.
func FaceletAt(row, col int) (face cubelets.Face, index int, ok bool) {
	block := cubelets.NetCell{Row: row / cubelets.Size, Col: col / cubelets.Size}
	for _, f := range cubelets.Faces {
		if cubelets.NetLayout[f] == block {
			return f, (row%cubelets.Size)*cubelets.Size + col%cubelets.Size, true
		}
	}
	return 0, 0, false
}
