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

package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// Dependency injection point for testing
var sensorsTemperatures = host.SensorsTemperatures

// ThermalCollector reads the temperature of one named sensor.
type ThermalCollector struct {
	sensorKey string
}

// NewThermalCollector creates a collector for the sensor with the given key,
// e.g. "cpu_thermal" on a Raspberry Pi.
func NewThermalCollector(sensorKey string) *ThermalCollector {
	return &ThermalCollector{sensorKey: sensorKey}
}

// Collect returns the sensor temperature in °C and whether the sensor exists.
func (t *ThermalCollector) Collect() (celsius float64, ok bool, err error) {
	temps, err := sensorsTemperatures()
	// gopsutil returns partial readings together with warnings for
	// unreadable sensors, so only fail when nothing came back.
	if err != nil && len(temps) == 0 {
		return 0, false, fmt.Errorf("failed to read thermal sensors: %w", err)
	}

	for _, temp := range temps {
		if temp.SensorKey == t.sensorKey {
			return temp.Temperature, true, nil
		}
	}

	return 0, false, nil
}

// Name returns the collector name for logging purposes.
func (t *ThermalCollector) Name() string {
	return "Thermal"
}
