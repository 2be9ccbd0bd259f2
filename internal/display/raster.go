/*
 * MIT License
 *
 * Copyright (c) 2026 Nguyen Thanh Phuong
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package display

import (
	"image"
	"math"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Primitive rasterizers for a 1-bit buffer. Pixels outside the buffer are
// dropped and drawn pixels are only ever turned on.

func setPixel(buf *image1bit.VerticalLSB, x, y int) {
	if image.Pt(x, y).In(buf.Rect) {
		buf.SetBit(x, y, image1bit.On)
	}
}

// rasterLine is Bresenham's algorithm over all octants.
func rasterLine(buf *image1bit.VerticalLSB, p0, p1 image.Point) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	x, y := p0.X, p0.Y
	e := dx + dy
	for {
		setPixel(buf, x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func rasterRect(buf *image1bit.VerticalLSB, r image.Rectangle) {
	r = r.Intersect(buf.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.SetBit(x, y, image1bit.On)
		}
	}
}

// rasterArc turns on every pixel of the bounding square whose centre lies
// within half a pixel of the circle and whose angle falls inside the sweep.
func rasterArc(buf *image1bit.VerticalLSB, topLeft image.Point, diameter int, startDeg, sweepDeg float64) {
	radius := float64(diameter-1) / 2
	cx := float64(topLeft.X) + radius
	cy := float64(topLeft.Y) + radius

	for y := topLeft.Y; y < topLeft.Y+diameter; y++ {
		for x := topLeft.X; x < topLeft.X+diameter; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if math.Abs(math.Hypot(dx, dy)-radius) >= 0.5 {
				continue
			}
			angle := math.Atan2(dy, dx) * 180 / math.Pi
			if inSweep(angle, startDeg, sweepDeg) {
				setPixel(buf, x, y)
			}
		}
	}
}

func inSweep(angle, start, sweep float64) bool {
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	if sweep >= 360 {
		return true
	}
	d := math.Mod(angle-start, 360)
	if d < 0 {
		d += 360
	}
	return d <= sweep
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
