package util

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a decoded 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// FallbackGray is returned for any colour string that does not decode.
var FallbackGray = RGB{R: 128, G: 128, B: 128}

// DecodeHexColor parses "#rrggbb" or "rrggbb". Anything else yields FallbackGray.
func DecodeHexColor(s string) RGB {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return FallbackGray
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return FallbackGray
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Hex renders the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance approximates perceived brightness in the 0..255 range.
func (c RGB) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
