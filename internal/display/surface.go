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
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Device is the part of a panel driver the surface needs.
// *ssd1306.Dev satisfies it.
type Device interface {
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Halt() error
}

// Geometry is the panel size in pixels.
type Geometry struct {
	Width  int
	Height int
}

// Size128x64 is the common 0.96" SSD1306 module.
var Size128x64 = Geometry{Width: 128, Height: 64}

// Rotation of the panel image.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate180
)

// Dependency injection point for testing
var newDevice = func(bus i2c.Bus, opts *ssd1306.Opts) (Device, error) {
	dev, err := ssd1306.NewI2C(bus, opts)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Surface is an off-screen 1-bit buffer bound to one panel.
// It is owned by a single goroutine for its whole life.
type Surface struct {
	dev    Device
	buf    *image1bit.VerticalLSB
	closed bool
}

// Open binds bus to addr, initializes the SSD1306 controller and returns a
// cleared surface.
func Open(bus i2c.Bus, addr uint16, geom Geometry, rot Rotation) (*Surface, error) {
	b, err := WithAddress(bus, addr)
	if err != nil {
		return nil, err
	}

	dev, err := newDevice(b, &ssd1306.Opts{
		W:       geom.Width,
		H:       geom.Height,
		Rotated: rot == Rotate180,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	s, err := NewSurface(dev, geom)
	if err != nil {
		_ = dev.Halt()
		return nil, err
	}
	return s, nil
}

// NewSurface allocates the buffer for dev, clears it and commits the blank
// frame so the panel starts from a known state.
func NewSurface(dev Device, geom Geometry) (*Surface, error) {
	if dev == nil {
		return nil, fmt.Errorf("%w: no device", ErrInit)
	}
	if geom.Width <= 0 || geom.Height <= 0 || geom.Height%8 != 0 {
		return nil, fmt.Errorf("%w: unsupported geometry %dx%d", ErrInit, geom.Width, geom.Height)
	}

	s := &Surface{
		dev: dev,
		buf: image1bit.NewVerticalLSB(image.Rect(0, 0, geom.Width, geom.Height)),
	}

	if err := dev.Draw(s.buf.Bounds(), s.buf, image.Point{}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClear, err)
	}
	return s, nil
}

// Bounds returns the drawable area.
func (s *Surface) Bounds() image.Rectangle {
	return s.buf.Bounds()
}

// Clear turns every pixel of the buffer off.
func (s *Surface) Clear() error {
	if s.closed {
		return fmt.Errorf("%w: %w", ErrClear, errClosed)
	}
	clear(s.buf.Pix)
	return nil
}

// DrawText renders text with its baseline starting at pos.
func (s *Surface) DrawText(text string, pos image.Point, f *Font) error {
	if s.closed {
		return fmt.Errorf("%w: %w", ErrWrite, errClosed)
	}
	if f == nil || f.face == nil {
		return fmt.Errorf("%w: no font for %q", ErrWrite, text)
	}

	d := font.Drawer{
		Dst:  s.buf,
		Src:  image.NewUniform(image1bit.On),
		Face: f.face,
		Dot:  fixed.P(pos.X, pos.Y),
	}
	d.DrawString(text)
	return nil
}

// DrawLine draws a 1px line including both end points.
func (s *Surface) DrawLine(start, end image.Point) error {
	if s.closed {
		return fmt.Errorf("%w: %w", ErrWrite, errClosed)
	}
	rasterLine(s.buf, start, end)
	return nil
}

// DrawFilledRect fills size.X by size.Y pixels from topLeft. A zero size draws nothing.
func (s *Surface) DrawFilledRect(topLeft, size image.Point) error {
	if s.closed {
		return fmt.Errorf("%w: %w", ErrWrite, errClosed)
	}
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: negative rectangle size %v", ErrWrite, size)
	}
	rasterRect(s.buf, image.Rectangle{Min: topLeft, Max: topLeft.Add(size)})
	return nil
}

// DrawArc strokes part of the circle inscribed in the diameter-sized square at
// topLeft. Angles are in degrees, clockwise from 3 o'clock.
func (s *Surface) DrawArc(topLeft image.Point, diameter int, startDeg, sweepDeg float64) error {
	if s.closed {
		return fmt.Errorf("%w: %w", ErrWrite, errClosed)
	}
	if diameter <= 0 {
		return fmt.Errorf("%w: arc diameter %d", ErrWrite, diameter)
	}
	rasterArc(s.buf, topLeft, diameter, startDeg, sweepDeg)
	return nil
}

// Flush sends the buffer to the panel.
func (s *Surface) Flush() error {
	if s.closed {
		return fmt.Errorf("%w: %w", ErrFlush, errClosed)
	}
	if err := s.dev.Draw(s.buf.Bounds(), s.buf, image.Point{}); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	return nil
}

// Pixels returns a copy of the buffer in SSD1306 page layout.
func (s *Surface) Pixels() []byte {
	return append([]byte(nil), s.buf.Pix...)
}

// Close halts the panel. Further calls on the surface fail.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.dev.Halt(); err != nil {
		return fmt.Errorf("failed to halt display: %w", err)
	}
	return nil
}
