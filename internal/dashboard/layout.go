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

package dashboard

import (
	"fmt"
	"image"
	"net/netip"

	"github.com/phuonguno98/unopanel/internal/display"
)

// Canvas is the drawing surface a page is painted on.
type Canvas interface {
	DrawText(text string, pos image.Point, f *display.Font) error
	DrawLine(start, end image.Point) error
	DrawFilledRect(topLeft, size image.Point) error
	DrawArc(topLeft image.Point, diameter int, startDeg, sweepDeg float64) error
}

// Metrics is the read side of the sampler.
type Metrics interface {
	Hostname() string
	IPAddress() netip.Addr
	Uptime() string
	CPUUsagePercent() float64
	MemoryUsagePercent() float64
	CPUTemperatureCelsius() float64
	RootDiskUsagePercent() (float64, bool)
}

// Pages is the number of page layouts in the rotation.
const Pages = 2

// Layout for a 128x64 panel.
const (
	panelWidth = 128

	spinnerDiameter = 9
	spinnerStep     = 36.0 // degrees per frame
	spinnerSweep    = 245.0

	headerBaseline = 9
	separatorY     = 12

	gaugeBarX      = 26
	gaugeBarMax    = 74
	gaugeBarHeight = 4
	gaugeValueX    = 104
	gaugeTextDrop  = 5

	footerBaseline = 58
	tempX          = 84
)

var gaugeRows = [...]int{19, 29, 39}

// RenderPage paints page (0: hostname header, 1: IP header) for the given
// animation frame. It stops at the first failed draw and returns its error.
func RenderPage(c Canvas, m Metrics, page, frame int) error {
	var header string
	switch page {
	case 0:
		header = m.Hostname()
	case 1:
		header = m.IPAddress().String()
	default:
		return fmt.Errorf("unknown page %d", page)
	}

	if err := renderHeader(c, header, frame); err != nil {
		return err
	}
	return renderSystemMonitor(c, m)
}

func renderHeader(c Canvas, title string, frame int) error {
	spinner := image.Pt(panelWidth-spinnerDiameter, 0)
	if err := c.DrawArc(spinner, spinnerDiameter, float64(frame)*spinnerStep, spinnerSweep); err != nil {
		return err
	}
	if err := c.DrawText(title, image.Pt(0, headerBaseline), display.FontHeader); err != nil {
		return err
	}
	return c.DrawLine(image.Pt(0, separatorY), image.Pt(panelWidth, separatorY))
}

func renderSystemMonitor(c Canvas, m Metrics) error {
	if err := renderGauge(c, gaugeRows[0], "CPU", FormatPercent(m.CPUUsagePercent()), m.CPUUsagePercent(), 100); err != nil {
		return err
	}
	if err := renderGauge(c, gaugeRows[1], "Mem", FormatPercent(m.MemoryUsagePercent()), m.MemoryUsagePercent(), 100); err != nil {
		return err
	}

	disk, ok := m.RootDiskUsagePercent()
	diskText := "N/A"
	if ok {
		diskText = FormatPercent(disk)
	} else {
		disk = 0
	}
	if err := renderGauge(c, gaugeRows[2], "Disk", diskText, disk, 100); err != nil {
		return err
	}

	if err := c.DrawText("Up: "+m.Uptime(), image.Pt(0, footerBaseline), display.FontSmall); err != nil {
		return err
	}
	return c.DrawText(FormatTemperature(m.CPUTemperatureCelsius()), image.Pt(tempX, footerBaseline), display.FontSmall)
}

// renderGauge draws one row: label, proportional bar and value text.
func renderGauge(c Canvas, top int, label, text string, value, maxValue float64) error {
	if err := c.DrawText(label, image.Pt(0, top+gaugeTextDrop), display.FontSmall); err != nil {
		return err
	}
	if err := c.DrawFilledRect(image.Pt(gaugeBarX, top), image.Pt(BarWidth(value, maxValue), gaugeBarHeight)); err != nil {
		return err
	}
	return c.DrawText(text, image.Pt(gaugeValueX, top+gaugeTextDrop), display.FontSmall)
}

// BarWidth returns floor(value/max × 74), bounded to [0, 74].
func BarWidth(value, maxValue float64) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	w := int(value / maxValue * gaugeBarMax)
	if w > gaugeBarMax {
		return gaugeBarMax
	}
	return w
}

// FormatPercent right-aligns a whole percentage in three columns, e.g. " 42%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%3.0f%%", v)
}

// FormatTemperature renders the footer temperature, e.g. "C: 48°C".
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("C: %2.0f°C", celsius)
}
