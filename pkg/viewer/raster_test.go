package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestRasterFillCoversInterior(t *testing.T) {
	r := newRaster(10, 10, Background)
	r.fill(screenPoint{0, 0, 1}, screenPoint{10, 0, 1}, screenPoint{0, 10, 1}, red)

	assert.Equal(t, red, r.img.RGBAAt(1, 1))
	assert.Equal(t, Background, r.img.RGBAAt(9, 9))
	assert.Equal(t, 1.0, r.depth[1*10+1])
}

func TestRasterFillAcceptsBothWindings(t *testing.T) {
	r := newRaster(10, 10, Background)
	r.fill(screenPoint{0, 0, 1}, screenPoint{0, 10, 1}, screenPoint{10, 0, 1}, red)
	assert.Equal(t, red, r.img.RGBAAt(1, 1))
}

func TestRasterFillKeepsNearest(t *testing.T) {
	r := newRaster(10, 10, Background)
	near := [3]screenPoint{{0, 0, 1}, {10, 0, 1}, {0, 10, 1}}
	far := [3]screenPoint{{0, 0, 5}, {10, 0, 5}, {0, 10, 5}}

	r.fill(near[0], near[1], near[2], red)
	r.fill(far[0], far[1], far[2], blue)
	assert.Equal(t, red, r.img.RGBAAt(2, 2))

	r = newRaster(10, 10, Background)
	r.fill(far[0], far[1], far[2], blue)
	r.fill(near[0], near[1], near[2], red)
	assert.Equal(t, red, r.img.RGBAAt(2, 2))
}

func TestRasterFillIgnoresDegenerate(t *testing.T) {
	r := newRaster(10, 10, Background)
	r.fill(screenPoint{0, 0, 1}, screenPoint{5, 5, 1}, screenPoint{9, 9, 1}, red)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, Background, r.img.RGBAAt(x, y))
		}
	}
}

func TestRasterFillClipsToImage(t *testing.T) {
	r := newRaster(4, 4, Background)
	r.fill(screenPoint{-20, -20, 1}, screenPoint{40, -20, 1}, screenPoint{-20, 40, 1}, red)
	assert.Equal(t, red, r.img.RGBAAt(3, 3))
}

func TestRasterLine(t *testing.T) {
	r := newRaster(10, 10, Background)
	r.line(screenPoint{x: 1, y: 1}, screenPoint{x: 8, y: 8}, blue)
	for i := 1; i <= 8; i++ {
		assert.Equal(t, blue, r.img.RGBAAt(i, i))
	}
	assert.Equal(t, Background, r.img.RGBAAt(1, 8))

	// endpoints outside the image are clipped per pixel
	r.line(screenPoint{x: -5, y: 2}, screenPoint{x: 20, y: 2}, red)
	assert.Equal(t, red, r.img.RGBAAt(0, 2))
	assert.Equal(t, red, r.img.RGBAAt(9, 2))
}
