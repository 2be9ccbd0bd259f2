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
	"image/color"
	"strings"

	"golang.org/x/image/font/basicfont"
)

// Cell geometry of the small bitmap face: 5x7 glyphs in 6x10 cells with the
// baseline under row 7 and two rows of descent.
const (
	glyphWidth   = 5
	glyphAdvance = 6
	glyphAscent  = 8
	glyphDescent = 2
)

// bitmapGlyph lists the rows of one glyph from row 1 of its cell downwards,
// separated by spaces. '#' is lit. Row 0 is always blank.
type bitmapGlyph struct {
	r    rune
	rows string
}

// glyphs5x7 covers printable ASCII, the degree sign and a replacement box.
// Runes must be ascending; consecutive runes share one range.
var glyphs5x7 = []bitmapGlyph{
	{' ', ""},
	{'!', "..#.. ..#.. ..#.. ..#.. ..#.. ..... ..#.."},
	{'"', ".#.#. .#.#. .#.#."},
	{'#', ".#.#. .#.#. ##### .#.#. ##### .#.#. .#.#."},
	{'$', "..#.. .#### #.#.. .###. ..#.# ####. ..#.."},
	{'%', "##... ##..# ...#. ..#.. .#... #..## ...##"},
	{'&', ".##.. #..#. #.#.. .#... #.#.# #..#. .##.#"},
	{'\'', "..#.. ..#.. .#..."},
	{'(', "...#. ..#.. .#... .#... .#... ..#.. ...#."},
	{')', ".#... ..#.. ...#. ...#. ...#. ..#.. .#..."},
	{'*', "..... ..#.. #.#.# .###. #.#.# ..#.. ....."},
	{'+', "..... ..#.. ..#.. ##### ..#.. ..#.. ....."},
	{',', "..... ..... ..... ..... ..... .##.. ..#.. .#..."},
	{'-', "..... ..... ..... ##### ..... ..... ....."},
	{'.', "..... ..... ..... ..... ..... .##.. .##.."},
	{'/', "..... ....# ...#. ..#.. .#... #.... ....."},
	{'0', ".###. #...# #..## #.#.# ##..# #...# .###."},
	{'1', "..#.. .##.. ..#.. ..#.. ..#.. ..#.. .###."},
	{'2', ".###. #...# ....# ...#. ..#.. .#... #####"},
	{'3', "##### ...#. ..#.. ...#. ....# #...# .###."},
	{'4', "...#. ..##. .#.#. #..#. ##### ...#. ...#."},
	{'5', "##### #.... ####. ....# ....# #...# .###."},
	{'6', "..##. .#... #.... ####. #...# #...# .###."},
	{'7', "##### ....# ...#. ..#.. .#... .#... .#..."},
	{'8', ".###. #...# #...# .###. #...# #...# .###."},
	{'9', ".###. #...# #...# .#### ....# ...#. .##.."},
	{':', "..... .##.. .##.. ..... .##.. .##.. ....."},
	{';', "..... .##.. .##.. ..... .##.. ..#.. .#..."},
	{'<', "...#. ..#.. .#... #.... .#... ..#.. ...#."},
	{'=', "..... ..... ##### ..... ##### ..... ....."},
	{'>', ".#... ..#.. ...#. ....# ...#. ..#.. .#..."},
	{'?', ".###. #...# ....# ...#. ..#.. ..... ..#.."},
	{'@', ".###. #...# ....# .##.# #.#.# #.#.# .###."},
	{'A', ".###. #...# #...# #...# ##### #...# #...#"},
	{'B', "####. #...# #...# ####. #...# #...# ####."},
	{'C', ".###. #...# #.... #.... #.... #...# .###."},
	{'D', "###.. #..#. #...# #...# #...# #..#. ###.."},
	{'E', "##### #.... #.... ####. #.... #.... #####"},
	{'F', "##### #.... #.... ####. #.... #.... #...."},
	{'G', ".###. #...# #.... #.### #...# #...# .####"},
	{'H', "#...# #...# #...# ##### #...# #...# #...#"},
	{'I', ".###. ..#.. ..#.. ..#.. ..#.. ..#.. .###."},
	{'J', "..### ...#. ...#. ...#. ...#. #..#. .##.."},
	{'K', "#...# #..#. #.#.. ##... #.#.. #..#. #...#"},
	{'L', "#.... #.... #.... #.... #.... #.... #####"},
	{'M', "#...# ##.## #.#.# #.#.# #...# #...# #...#"},
	{'N', "#...# #...# ##..# #.#.# #..## #...# #...#"},
	{'O', ".###. #...# #...# #...# #...# #...# .###."},
	{'P', "####. #...# #...# ####. #.... #.... #...."},
	{'Q', ".###. #...# #...# #...# #.#.# #..#. .##.#"},
	{'R', "####. #...# #...# ####. #.#.. #..#. #...#"},
	{'S', ".#### #.... #.... .###. ....# ....# ####."},
	{'T', "##### ..#.. ..#.. ..#.. ..#.. ..#.. ..#.."},
	{'U', "#...# #...# #...# #...# #...# #...# .###."},
	{'V', "#...# #...# #...# #...# #...# .#.#. ..#.."},
	{'W', "#...# #...# #...# #.#.# #.#.# #.#.# .#.#."},
	{'X', "#...# #...# .#.#. ..#.. .#.#. #...# #...#"},
	{'Y', "#...# #...# #...# .#.#. ..#.. ..#.. ..#.."},
	{'Z', "##### ....# ...#. ..#.. .#... #.... #####"},
	{'[', ".###. .#... .#... .#... .#... .#... .###."},
	{'\\', "..... #.... .#... ..#.. ...#. ....# ....."},
	{']', ".###. ...#. ...#. ...#. ...#. ...#. .###."},
	{'^', "..#.. .#.#. #...#"},
	{'_', "..... ..... ..... ..... ..... ..... #####"},
	{'`', ".#... ..#.. ...#."},
	{'a', "..... ..... .###. ....# .#### #...# .####"},
	{'b', "#.... #.... #.##. ##..# #...# #...# ####."},
	{'c', "..... ..... .###. #.... #.... #...# .###."},
	{'d', "....# ....# .##.# #..## #...# #...# .####"},
	{'e', "..... ..... .###. #...# ##### #.... .###."},
	{'f', "..##. .#..# .#... ###.. .#... .#... .#..."},
	{'g', "..... ..... .#### #...# #...# #...# .#### ....# .###."},
	{'h', "#.... #.... #.##. ##..# #...# #...# #...#"},
	{'i', "..#.. ..... .##.. ..#.. ..#.. ..#.. .###."},
	{'j', "...#. ..... ..##. ...#. ...#. ...#. ...#. #..#. .##.."},
	{'k', "#.... #.... #..#. #.#.. ##... #.#.. #..#."},
	{'l', ".##.. ..#.. ..#.. ..#.. ..#.. ..#.. .###."},
	{'m', "..... ..... ##.#. #.#.# #.#.# #...# #...#"},
	{'n', "..... ..... #.##. ##..# #...# #...# #...#"},
	{'o', "..... ..... .###. #...# #...# #...# .###."},
	{'p', "..... ..... ####. #...# #...# #...# ####. #.... #...."},
	{'q', "..... ..... .#### #...# #...# #...# .#### ....# ....#"},
	{'r', "..... ..... #.##. ##..# #.... #.... #...."},
	{'s', "..... ..... .###. #.... .###. ....# ####."},
	{'t', ".#... .#... ###.. .#... .#... .#..# ..##."},
	{'u', "..... ..... #...# #...# #...# #..## .##.#"},
	{'v', "..... ..... #...# #...# #...# .#.#. ..#.."},
	{'w', "..... ..... #...# #...# #.#.# #.#.# .#.#."},
	{'x', "..... ..... #...# .#.#. ..#.. .#.#. #...#"},
	{'y', "..... ..... #...# #...# #...# #...# .#### ....# .###."},
	{'z', "..... ..... ##### ...#. ..#.. .#... #####"},
	{'{', "...#. ..#.. ..#.. .#... ..#.. ..#.. ...#."},
	{'|', "..#.. ..#.. ..#.. ..#.. ..#.. ..#.. ..#.."},
	{'}', ".#... ..#.. ..#.. ...#. ..#.. ..#.. .#..."},
	{'~', "..... ..... .#... #.#.# ...#. ..... ....."},
	{'°', ".##.. #..#. #..#. .##.."},
	{'\ufffd', "##### #...# #...# #...# #...# #...# #####"},
}

// newBitmapFace packs glyphs into the vertical strip mask basicfont expects.
func newBitmapFace(glyphs []bitmapGlyph) (*basicfont.Face, error) {
	cellHeight := glyphAscent + glyphDescent
	mask := image.NewAlpha(image.Rect(0, 0, glyphWidth, len(glyphs)*cellHeight))

	var ranges []basicfont.Range
	for i, g := range glyphs {
		switch n := len(ranges); {
		case n > 0 && ranges[n-1].High == g.r:
			ranges[n-1].High++
		case n > 0 && ranges[n-1].High > g.r:
			return nil, fmt.Errorf("glyph %q is out of order", g.r)
		default:
			ranges = append(ranges, basicfont.Range{Low: g.r, High: g.r + 1, Offset: i})
		}

		rows := strings.Fields(g.rows)
		if len(rows) > cellHeight-1 {
			return nil, fmt.Errorf("glyph %q has %d rows, cell holds %d", g.r, len(rows), cellHeight-1)
		}
		for y, row := range rows {
			if len(row) != glyphWidth {
				return nil, fmt.Errorf("glyph %q row %d is %d wide", g.r, y, len(row))
			}
			for x := range glyphWidth {
				if row[x] == '#' {
					mask.SetAlpha(x, i*cellHeight+1+y, color.Alpha{A: 0xff})
				}
			}
		}
	}

	return &basicfont.Face{
		Advance: glyphAdvance,
		Width:   glyphWidth,
		Height:  cellHeight,
		Ascent:  glyphAscent,
		Descent: glyphDescent,
		Mask:    mask,
		Ranges:  ranges,
	}, nil
}
