package graphics

import "image/color"

// Palette maps the popup's palette indices to colors.
var Palette = buildPalette()

// Named palette entries. Player colors start at 64 in steps of 8.
var paletteEntries = map[int]color.RGBA{
	0:  {0, 0, 0, 255},
	1:  {140, 110, 70, 255},  // Roads
	2:  {60, 60, 60, 255},    // Grid
	3:  {240, 240, 240, 255}, // Flags
	30: {80, 160, 80, 255},   // Slide bars
	31: {0, 208, 64, 255},    // Green text and minimap cursor
	40: {72, 136, 48, 255},   // Grass
	44: {136, 120, 104, 255}, // Mountain
	48: {40, 72, 168, 255},   // Water
	64: {220, 40, 40, 255},
	72: {232, 224, 64, 255},
	80: {56, 104, 232, 255},
	88: {232, 232, 232, 255},
}

func buildPalette() [256]color.RGBA {
	var p [256]color.RGBA
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{v, v, v, 255}
	}
	for i, c := range paletteEntries {
		p[i] = c
	}
	return p
}

// Color returns the palette color of index i. Indices outside 0..255
// wrap.
func Color(i int) color.RGBA {
	return Palette[i&0xff]
}
