package ansimarkup

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the standard 256-color palette: 16 named colors (0-15), 216
// color cube (16-231), 24 grayscale shades (232-255).
var Palette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 16-231 (color cube) and 232-255 (grayscale) are generated in init.
}

// baseNames maps the 16 ANSI color names to their palette indices. These are
// the only names used for reverse lookups, so converting markup to ANSI and
// back reproduces the same tag.
var baseNames = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,

	"brightblack":   8,
	"brightred":     9,
	"brightgreen":   10,
	"brightyellow":  11,
	"brightblue":    12,
	"brightmagenta": 13,
	"brightcyan":    14,
	"brightwhite":   15,
}

// baseIndexNames is the reverse of baseNames, built in init.
var baseIndexNames map[uint8]string

func init() {
	// Generate the 6x6x6 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j] = color.RGBA{gray, gray, gray, 255}
	}

	baseIndexNames = make(map[uint8]string, len(baseNames))
	for name, index := range baseNames {
		if _, ok := baseIndexNames[index]; !ok {
			baseIndexNames[index] = name
		}
	}
}

// ColorIndex resolves a color name to a palette index. The 16 ANSI names map
// to indices 0-15; any other name known to tcell's W3C color table resolves
// to the nearest palette entry.
func ColorIndex(name string) (uint8, bool) {
	if index, ok := baseNames[name]; ok {
		return index, true
	}

	c, ok := tcell.ColorNames[name]
	if !ok {
		return 0, false
	}
	hex := c.Hex()
	if hex < 0 {
		return 0, false
	}
	rgba := color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
	return nearestPaletteIndex(rgba), true
}

// PaletteName is the reverse of ColorIndex for the 16 exact ANSI entries.
// Cube and grayscale indices have no name.
func PaletteName(index uint8) (string, bool) {
	name, ok := baseIndexNames[index]
	return name, ok
}

// nearestPaletteIndex finds the palette entry closest to target in Lab
// space. Indices 0-15 are skipped: their RGB values vary by terminal theme,
// so matching against them would be guesswork.
func nearestPaletteIndex(target color.RGBA) uint8 {
	want, _ := colorful.MakeColor(target)

	best := 16
	bestDist := math.MaxFloat64
	for i := 16; i < len(Palette); i++ {
		entry, _ := colorful.MakeColor(Palette[i])
		if dist := want.DistanceLab(entry); dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return uint8(best)
}
