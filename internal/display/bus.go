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

	"periph.io/x/conn/v3/i2c"
)

// addressedBus pins every transaction to one device address. The ssd1306
// driver always talks to 0x3C; this lets panels strapped to 0x3D work too.
type addressedBus struct {
	i2c.Bus
	addr uint16
}

// Tx implements i2c.Bus.
func (b *addressedBus) Tx(_ uint16, w, r []byte) error {
	return b.Bus.Tx(b.addr, w, r)
}

func (b *addressedBus) String() string {
	return fmt.Sprintf("%s@0x%02X", b.Bus.String(), b.addr)
}

// WithAddress returns a bus that sends every transaction to addr.
// Only 7-bit addresses are accepted.
func WithAddress(bus i2c.Bus, addr uint16) (i2c.Bus, error) {
	if bus == nil {
		return nil, fmt.Errorf("%w: no bus", ErrAddress)
	}
	if addr > 0x7F {
		return nil, fmt.Errorf("%w: 0x%X is not a 7-bit address", ErrAddress, addr)
	}
	return &addressedBus{Bus: bus, addr: addr}, nil
}
