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

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// Font is a monospaced face sized for the panel.
type Font struct {
	Name string
	face font.Face
}

// Built-in faces. FontSmall is a 1-bit bitmap with 6px cells, crisp at any
// position. FontHeader is Go Mono Bold at 12px, hinted to 7px cells.
var (
	FontSmall  = mustBitmapFont("fixed-6x10", glyphs5x7)
	FontHeader = mustFont("gomonobold-12", gomonobold.TTF, 12)
)

// newFont parses a TrueType/OpenType font and sizes it in pixels.
func newFont(name string, ttf []byte, sizePx float64) (*Font, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face %s: %w", name, err)
	}

	return &Font{Name: name, face: face}, nil
}

func mustFont(name string, ttf []byte, sizePx float64) *Font {
	f, err := newFont(name, ttf, sizePx)
	if err != nil {
		panic(err)
	}
	return f
}

func mustBitmapFont(name string, glyphs []bitmapGlyph) *Font {
	face, err := newBitmapFace(glyphs)
	if err != nil {
		panic(fmt.Errorf("failed to build font %s: %w", name, err))
	}
	return &Font{Name: name, face: face}
}

// width returns the advance of text in whole pixels.
func (f *Font) width(text string) int {
	return font.MeasureString(f.face, text).Round()
}

