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
	"time"

	"github.com/phuonguno98/unopanel/pkg/metrics"
	"github.com/shirou/gopsutil/v3/cpu"
)

// Dependency injection point for testing
var cpuTimes = cpu.Times

// CPUCollector collects CPU utilization averaged across cores.
type CPUCollector struct {
	prevStats map[string]metrics.CPUTimeStats // Key: core name (cpu0, cpu1, ...)
}

// NewCPUCollector creates a new CPU collector instance.
func NewCPUCollector() *CPUCollector {
	return &CPUCollector{
		prevStats: make(map[string]metrics.CPUTimeStats),
	}
}

// Collect gathers per-core CPU times and returns the mean utilization
// percentage since the previous call. The first call only records a baseline
// and returns 0.
func (c *CPUCollector) Collect() (float64, error) {
	times, err := cpuTimes(true)
	if err != nil {
		return 0, fmt.Errorf("failed to get CPU stats: %w", err)
	}

	if len(times) == 0 {
		return 0, fmt.Errorf("no CPU time stats available")
	}

	now := time.Now()
	perCore := make([]float64, 0, len(times))

	for i := range times {
		t := &times[i]
		current := metrics.CPUTimeStats{
			User:      t.User + t.Nice,
			System:    t.System,
			Idle:      t.Idle,
			IOWait:    t.Iowait,
			Irq:       t.Irq,
			SoftIrq:   t.Softirq,
			Steal:     t.Steal,
			Guest:     t.Guest,
			GuestNice: t.GuestNice,
			Timestamp: now,
		}

		// A missing entry has a zero timestamp and yields 0 for this core.
		prev := c.prevStats[t.CPU]
		perCore = append(perCore, metrics.CalculateCPUUtilization(&prev, &current))
		c.prevStats[t.CPU] = current
	}

	return metrics.Mean(perCore), nil
}

// Name returns the collector name for logging purposes.
func (c *CPUCollector) Name() string {
	return "CPU"
}
