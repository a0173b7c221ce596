package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 10, G: 20, B: 30, A: 40}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	assert.Equal(t, []byte{1, 2, 3, 4, 10, 20, 30, 40, 10, 20, 30, 40}, buf)

	fillPaletteRGBA(buf, []uint8{0, 1, 9}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestBinaryPalette(t *testing.T) {
	p := BinaryPalette(color.White, color.Black)
	assert.Equal(t, []color.RGBA{{A: 0xff}, {R: 0xff, G: 0xff, B: 0xff, A: 0xff}}, p)
}
