package state

import (
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the accent colors offered to the user.
var Palette = []string{"#ff6b6b", "#4ecdc4", "#45b7d1"}

// DefaultColor is selected when the palette first appears.
const DefaultColor = "#ff6b6b"

// ParseColor decodes a "#rrggbb" or "#rgb" string. Anything else, including
// colors that arrived through an import, reports false.
func ParseColor(s string) (color.NRGBA, bool) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
