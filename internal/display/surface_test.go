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
	"errors"
	"image"
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// fakeDevice records every frame it receives.
type fakeDevice struct {
	frames  [][]byte
	drawErr error
	halted  bool
}

func (d *fakeDevice) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	buf, ok := src.(*image1bit.VerticalLSB)
	if !ok {
		return errors.New("unexpected image type")
	}
	d.frames = append(d.frames, append([]byte(nil), buf.Pix...))
	return nil
}

func (d *fakeDevice) Halt() error {
	d.halted = true
	return nil
}

// fakeBus records the address of every transaction.
type fakeBus struct {
	addrs []uint16
}

func (b *fakeBus) String() string                  { return "fake-i2c" }
func (b *fakeBus) SetSpeed(physic.Frequency) error { return nil }
func (b *fakeBus) Tx(addr uint16, _, _ []byte) error {
	b.addrs = append(b.addrs, addr)
	return nil
}

func newTestSurface(t *testing.T) (*Surface, *fakeDevice) {
	t.Helper()
	dev := &fakeDevice{}
	s, err := NewSurface(dev, Size128x64)
	require.NoError(t, err)
	return s, dev
}

func onPixels(pix []byte) int {
	n := 0
	for _, b := range pix {
		n += bits.OnesCount8(b)
	}
	return n
}

func TestNewSurface_CommitsBlankFrame(t *testing.T) {
	s, dev := newTestSurface(t)

	require.Len(t, dev.frames, 1)
	assert.Len(t, dev.frames[0], 128*64/8)
	assert.Zero(t, onPixels(dev.frames[0]))
	assert.Equal(t, image.Rect(0, 0, 128, 64), s.Bounds())
}

func TestNewSurface_Errors(t *testing.T) {
	_, err := NewSurface(&fakeDevice{drawErr: errors.New("nack")}, Size128x64)
	assert.ErrorIs(t, err, ErrClear)

	_, err = NewSurface(nil, Size128x64)
	assert.ErrorIs(t, err, ErrInit)

	_, err = NewSurface(&fakeDevice{}, Geometry{Width: 128, Height: 30})
	assert.ErrorIs(t, err, ErrInit)
}

func TestOpen(t *testing.T) {
	orig := newDevice
	defer func() { newDevice = orig }()

	t.Run("Success", func(t *testing.T) {
		dev := &fakeDevice{}
		bus := &fakeBus{}
		var gotOpts ssd1306.Opts
		newDevice = func(b i2c.Bus, opts *ssd1306.Opts) (Device, error) {
			gotOpts = *opts
			// The driver always addresses 0x3C; the bus must redirect it.
			require.NoError(t, b.Tx(0x3C, []byte{0x00}, nil))
			return dev, nil
		}

		s, err := Open(bus, 0x3D, Size128x64, Rotate180)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.Equal(t, 128, gotOpts.W)
		assert.Equal(t, 64, gotOpts.H)
		assert.True(t, gotOpts.Rotated)
		assert.Equal(t, []uint16{0x3D}, bus.addrs)
		assert.Len(t, dev.frames, 1)
	})

	t.Run("Init Error", func(t *testing.T) {
		newDevice = func(i2c.Bus, *ssd1306.Opts) (Device, error) {
			return nil, errors.New("no ack from 0x3C")
		}
		_, err := Open(&fakeBus{}, 0x3C, Size128x64, Rotate0)
		assert.ErrorIs(t, err, ErrInit)
	})

	t.Run("Initial Clear Error", func(t *testing.T) {
		dev := &fakeDevice{drawErr: errors.New("bus write failed")}
		newDevice = func(i2c.Bus, *ssd1306.Opts) (Device, error) { return dev, nil }
		_, err := Open(&fakeBus{}, 0x3C, Size128x64, Rotate0)
		assert.ErrorIs(t, err, ErrClear)
		assert.True(t, dev.halted)
	})

	t.Run("Address Error", func(t *testing.T) {
		_, err := Open(&fakeBus{}, 0x3C0, Size128x64, Rotate0)
		assert.ErrorIs(t, err, ErrAddress)
	})
}

func TestWithAddress(t *testing.T) {
	_, err := WithAddress(nil, 0x3C)
	assert.ErrorIs(t, err, ErrAddress)

	b, err := WithAddress(&fakeBus{}, 0x3C)
	require.NoError(t, err)
	assert.Equal(t, "fake-i2c@0x3C", b.String())
}

func TestSurface_DrawIsInvisibleUntilFlush(t *testing.T) {
	s, dev := newTestSurface(t)

	require.NoError(t, s.DrawFilledRect(image.Pt(0, 0), image.Pt(8, 8)))
	assert.Len(t, dev.frames, 1, "drawing must not touch the device")

	require.NoError(t, s.Flush())
	require.Len(t, dev.frames, 2)
	assert.Equal(t, 64, onPixels(dev.frames[1]))
}

func TestSurface_Clear(t *testing.T) {
	s, _ := newTestSurface(t)

	require.NoError(t, s.DrawLine(image.Pt(0, 0), image.Pt(127, 63)))
	require.NotZero(t, onPixels(s.Pixels()))

	require.NoError(t, s.Clear())
	assert.Zero(t, onPixels(s.Pixels()))
}

func TestSurface_FlushError(t *testing.T) {
	s, dev := newTestSurface(t)
	dev.drawErr = errors.New("i2c write failed")

	err := s.Flush()
	assert.ErrorIs(t, err, ErrFlush)
}

func TestSurface_Closed(t *testing.T) {
	s, dev := newTestSurface(t)
	require.NoError(t, s.Close())
	assert.True(t, dev.halted)
	require.NoError(t, s.Close(), "close is idempotent")

	assert.ErrorIs(t, s.Clear(), ErrClear)
	assert.ErrorIs(t, s.DrawText("x", image.Pt(0, 9), FontSmall), ErrWrite)
	assert.ErrorIs(t, s.DrawLine(image.Pt(0, 0), image.Pt(1, 1)), ErrWrite)
	assert.ErrorIs(t, s.DrawFilledRect(image.Pt(0, 0), image.Pt(1, 1)), ErrWrite)
	assert.ErrorIs(t, s.DrawArc(image.Pt(0, 0), 9, 0, 245), ErrWrite)
	assert.ErrorIs(t, s.Flush(), ErrFlush)
}

func TestSurface_InvalidDraws(t *testing.T) {
	s, _ := newTestSurface(t)

	assert.ErrorIs(t, s.DrawText("x", image.Pt(0, 9), nil), ErrWrite)
	assert.ErrorIs(t, s.DrawFilledRect(image.Pt(0, 0), image.Pt(-1, 4)), ErrWrite)
	assert.ErrorIs(t, s.DrawArc(image.Pt(0, 0), 0, 0, 245), ErrWrite)
}

func TestSurface_DrawLine(t *testing.T) {
	s, _ := newTestSurface(t)

	// Runs one pixel past the right edge; the overflow is clipped.
	require.NoError(t, s.DrawLine(image.Pt(0, 12), image.Pt(128, 12)))

	assert.Equal(t, 128, onPixels(s.Pixels()))
	for x := 0; x < 128; x++ {
		assert.Equal(t, image1bit.On, s.buf.BitAt(x, 12), "x=%d", x)
	}

	require.NoError(t, s.Clear())
	require.NoError(t, s.DrawLine(image.Pt(5, 5), image.Pt(1, 1)))
	assert.Equal(t, 5, onPixels(s.Pixels()))
	assert.Equal(t, image1bit.On, s.buf.BitAt(3, 3))
}

func TestSurface_DrawFilledRect(t *testing.T) {
	s, _ := newTestSurface(t)

	require.NoError(t, s.DrawFilledRect(image.Pt(26, 19), image.Pt(37, 4)))
	assert.Equal(t, 37*4, onPixels(s.Pixels()))
	assert.Equal(t, image1bit.On, s.buf.BitAt(26, 19))
	assert.Equal(t, image1bit.On, s.buf.BitAt(62, 22))
	assert.Equal(t, image1bit.Off, s.buf.BitAt(63, 22))

	require.NoError(t, s.Clear())
	require.NoError(t, s.DrawFilledRect(image.Pt(26, 39), image.Pt(0, 4)))
	assert.Zero(t, onPixels(s.Pixels()))
}

func TestSurface_DrawArc(t *testing.T) {
	s, _ := newTestSurface(t)
	topLeft := image.Pt(119, 0)
	box := image.Rect(119, 0, 128, 9)

	require.NoError(t, s.DrawArc(topLeft, 9, 0, 360))
	full := onPixels(s.Pixels())
	assert.NotZero(t, full)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if s.buf.BitAt(x, y) == image1bit.On {
				assert.True(t, image.Pt(x, y).In(box), "pixel (%d,%d) outside the arc box", x, y)
			}
		}
	}
	// Leftmost and rightmost points of the circle sit on the centre row.
	assert.Equal(t, image1bit.On, s.buf.BitAt(119, 4))
	assert.Equal(t, image1bit.On, s.buf.BitAt(127, 4))

	require.NoError(t, s.Clear())
	require.NoError(t, s.DrawArc(topLeft, 9, 0, 245))
	partial := onPixels(s.Pixels())
	assert.Less(t, partial, full)
	assert.NotZero(t, partial)

	// Advancing the start angle moves the gap.
	first := s.Pixels()
	require.NoError(t, s.Clear())
	require.NoError(t, s.DrawArc(topLeft, 9, 36, 245))
	assert.NotEqual(t, first, s.Pixels())

	// A full turn of start angle lands on the same pixels.
	require.NoError(t, s.Clear())
	require.NoError(t, s.DrawArc(topLeft, 9, 360, 245))
	assert.Equal(t, first, s.Pixels())
}

func TestInSweep(t *testing.T) {
	assert.True(t, inSweep(10, 0, 245))
	assert.True(t, inSweep(245, 0, 245))
	assert.False(t, inSweep(-90, 0, 245)) // 270°
	assert.True(t, inSweep(-90, 180, 245))
	assert.True(t, inSweep(-10, 0, -20))
	assert.True(t, inSweep(123, 0, 720))
}

func TestSurface_DrawText(t *testing.T) {
	s, _ := newTestSurface(t)

	require.NoError(t, s.DrawText("CPU", image.Pt(0, 24), FontSmall))
	assert.NotZero(t, onPixels(s.Pixels()))

	// Every lit pixel belongs to the text cell: left of x=3 glyph cells and
	// above the baseline plus descent.
	width := FontSmall.width("CPU")
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if s.buf.BitAt(x, y) == image1bit.On {
				assert.Less(t, x, width+1)
				assert.Less(t, y, 24+4)
				assert.Greater(t, y, 24-12)
			}
		}
	}
}

func TestSurface_TextComposesWithShapes(t *testing.T) {
	s, _ := newTestSurface(t)

	require.NoError(t, s.DrawFilledRect(image.Pt(0, 0), image.Pt(128, 64)))
	require.NoError(t, s.DrawText("100%", image.Pt(104, 24), FontSmall))
	assert.Equal(t, 128*64, onPixels(s.Pixels()), "text never turns pixels off")
}

func TestFontWidths(t *testing.T) {
	small := FontSmall.width("C")
	header := FontHeader.width("C")

	assert.Equal(t, 6, small)
	assert.InDelta(t, 7, header, 1)
	assert.Equal(t, 3*small, FontSmall.width("CPU"), "faces are monospaced")
	assert.Equal(t, 4*small, FontSmall.width("°C 1"))
}

// litRows renders the lit pixels of the top-left w x h region as '#' and '.'.
func litRows(s *Surface, w, h int) []string {
	rows := make([]string, h)
	for y := range h {
		var sb strings.Builder
		for x := range w {
			if s.buf.BitAt(x, y) == image1bit.On {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestSurface_DrawTextGlyphs(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{
			text: "CPU",
			want: []string{
				"..................",
				".###..####..#...#.",
				"#...#.#...#.#...#.",
				"#.....#...#.#...#.",
				"#.....####..#...#.",
				"#.....#.....#...#.",
				"#...#.#.....#...#.",
				".###..#......###..",
				"..................",
				"..................",
			},
		},
		{
			text: "48°C",
			want: []string{
				"........................",
				"...#...###...##....###..",
				"..##..#...#.#..#..#...#.",
				".#.#..#...#.#..#..#.....",
				"#..#...###...##...#.....",
				"#####.#...#.......#.....",
				"...#..#...#.......#...#.",
				"...#...###.........###..",
				"........................",
				"........................",
			},
		},
		{
			text: "gy",
			want: []string{
				"............",
				"............",
				"............",
				".####.#...#.",
				"#...#.#...#.",
				"#...#.#...#.",
				"#...#.#...#.",
				".####..####.",
				"....#.....#.",
				".###...###..",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s, _ := newTestSurface(t)
			require.NoError(t, s.DrawText(tt.text, image.Pt(0, 8), FontSmall))

			width := len(tt.want[0])
			assert.Equal(t, tt.want, litRows(s, width, 10))

			// Nothing outside the text cells.
			var lit int
			for _, row := range tt.want {
				lit += strings.Count(row, "#")
			}
			assert.Equal(t, lit, onPixels(s.Pixels()))
		})
	}
}

func TestFontSmall_Coverage(t *testing.T) {
	for r := rune(0x20); r < 0x7F; r++ {
		_, _, _, advance, ok := FontSmall.face.Glyph(fixed.P(0, 8), r)
		assert.True(t, ok, "glyph %q", r)
		assert.Equal(t, fixed.I(6), advance, "glyph %q", r)
	}

	_, _, _, _, ok := FontSmall.face.Glyph(fixed.P(0, 8), '°')
	assert.True(t, ok)

	// Unknown runes fall back to the replacement box.
	s, _ := newTestSurface(t)
	require.NoError(t, s.DrawText("λ", image.Pt(0, 8), FontSmall))
	assert.Equal(t, []string{
		"......",
		"#####.",
		"#...#.",
		"#...#.",
		"#...#.",
		"#...#.",
		"#...#.",
		"#####.",
		"......",
		"......",
	}, litRows(s, 6, 10))
}

func TestNewBitmapFace_Errors(t *testing.T) {
	tests := []struct {
		name   string
		glyphs []bitmapGlyph
	}{
		{name: "Wide row", glyphs: []bitmapGlyph{{'A', "######"}}},
		{name: "Narrow row", glyphs: []bitmapGlyph{{'A', "###"}}},
		{name: "Too many rows", glyphs: []bitmapGlyph{{'A', strings.Repeat("..... ", 10)}}},
		{name: "Out of order", glyphs: []bitmapGlyph{{'B', ""}, {'A', ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newBitmapFace(tt.glyphs)
			assert.Error(t, err)
		})
	}
}

func TestNewBitmapFace_Ranges(t *testing.T) {
	face, err := newBitmapFace([]bitmapGlyph{{'A', ""}, {'B', ""}, {'Z', ""}})
	require.NoError(t, err)
	require.Len(t, face.Ranges, 2)
	assert.Equal(t, rune('A'), face.Ranges[0].Low)
	assert.Equal(t, rune('C'), face.Ranges[0].High)
	assert.Equal(t, 0, face.Ranges[0].Offset)
	assert.Equal(t, 2, face.Ranges[1].Offset)
}

func TestSurface_Deterministic(t *testing.T) {
	s, _ := newTestSurface(t)

	paint := func() []byte {
		require.NoError(t, s.Clear())
		require.NoError(t, s.DrawText("raspberrypi", image.Pt(0, 9), FontHeader))
		require.NoError(t, s.DrawArc(image.Pt(119, 0), 9, 108, 245))
		require.NoError(t, s.DrawLine(image.Pt(0, 12), image.Pt(128, 12)))
		require.NoError(t, s.DrawFilledRect(image.Pt(26, 19), image.Pt(40, 4)))
		return s.Pixels()
	}

	assert.Equal(t, paint(), paint())
}
