package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#1a2b3c", RGB{26, 43, 60}},
		{"1a2b3c", RGB{26, 43, 60}},
		{"#40c463", RGB{64, 196, 99}},
		{"#EBEDF0", RGB{235, 237, 240}},
		{"zz0000", FallbackGray},
		{"abc", FallbackGray},
		{"", FallbackGray},
		{"#", FallbackGray},
		{"##1a2b3c", FallbackGray},
		{"+1a2b3c", FallbackGray},
		{"1a2b3c4", FallbackGray},
		{" 1a2b3", FallbackGray},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeHexColor(tc.in))
		})
	}
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#40c463", RGB{64, 196, 99}.Hex())
	assert.Equal(t, "#808080", FallbackGray.Hex())
}

func TestRGBLuminanceOrdering(t *testing.T) {
	dark := DecodeHexColor("#216e39")
	light := DecodeHexColor("#ebedf0")
	assert.Less(t, dark.Luminance(), light.Luminance())
}
