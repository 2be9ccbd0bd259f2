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

// Package display turns an SSD1306 panel into a drawing surface with an
// off-screen 1-bit buffer and explicit flush semantics.
//
// Draw calls only touch the buffer. Nothing reaches the panel until Flush,
// which hands the whole buffer to the controller driver.
package display

import "errors"

// Failure kinds. Errors returned by this package wrap exactly one of these,
// so callers can test with errors.Is.
var (
	ErrAddress = errors.New("invalid display address")
	ErrInit    = errors.New("display initialization error")
	ErrClear   = errors.New("error clearing display")
	ErrWrite   = errors.New("error writing to screen")
	ErrFlush   = errors.New("error flushing display")
)

var errClosed = errors.New("surface is closed")
