package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel position plus view depth
type screenPoint struct {
	x, y, z float64
}

// raster is a colour buffer with a matching depth buffer
type raster struct {
	img   *image.RGBA
	depth []float64
}

func newRaster(width, height int, background color.RGBA) *raster {
	r := &raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	for i := 0; i < len(r.img.Pix); i += 4 {
		copy(r.img.Pix[i:i+4], []uint8{background.R, background.G, background.B, background.A})
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
	return r
}

// edge is twice the signed area of (a, b, p)
func edge(a, b screenPoint, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fill draws a solid triangle, keeping the nearest fragment per pixel.
// Pixel centres are sampled; both windings are accepted.
func (r *raster) fill(a, b, c screenPoint, col color.RGBA) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}

	w, h := r.img.Rect.Dx(), r.img.Rect.Dy()
	minX := max(0, int(math.Floor(min(a.x, b.x, c.x))))
	maxX := min(w-1, int(math.Ceil(max(a.x, b.x, c.x))))
	minY := max(0, int(math.Floor(min(a.y, b.y, c.y))))
	maxY := min(h-1, int(math.Ceil(max(a.y, b.y, c.y))))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			wa := edge(b, c, px, py) / area
			wb := edge(c, a, px, py) / area
			wc := edge(a, b, px, py) / area
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}

			z := wa*a.z + wb*b.z + wc*c.z
			idx := y*w + x
			if z < r.depth[idx] {
				r.depth[idx] = z
				r.img.SetRGBA(x, y, col)
			}
		}
	}
}

// line draws an unshaded segment over everything using Bresenham's algorithm
func (r *raster) line(a, b screenPoint, col color.RGBA) {
	x0, y0 := int(a.x), int(a.y)
	x1, y1 := int(b.x), int(b.y)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	bounds := r.img.Rect
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(bounds) {
			r.img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
