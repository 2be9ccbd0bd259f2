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

package metrics

import "fmt"

// CalculateCPUUtilization calculates CPU utilization percentage from two CPU time snapshots.
// Formula: 100 * (1 - ΔIdle / ΔTotal)
func CalculateCPUUtilization(prev, current *CPUTimeStats) float64 {
	if prev.Timestamp.IsZero() {
		return 0.0
	}

	prevTotal := prev.User + prev.System + prev.Idle + prev.IOWait + prev.Irq + prev.SoftIrq + prev.Steal
	currentTotal := current.User + current.System + current.Idle + current.IOWait + current.Irq + current.SoftIrq + current.Steal

	deltaTotal := currentTotal - prevTotal
	deltaIdle := current.Idle - prev.Idle

	if deltaTotal <= 0 {
		return 0.0
	}

	return ClampPercent(100.0 * (1.0 - deltaIdle/deltaTotal))
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ClampPercent bounds v to [0, 100].
func ClampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// UsagePercent calculates used/total as a percentage.
// Formula: (Used / Total) × 100, 0 when total is zero.
func UsagePercent(used, total uint64) float64 {
	if total == 0 {
		return 0.0
	}
	return ClampPercent(float64(used) / float64(total) * 100.0)
}

// FormatUptime renders seconds since boot as "1d25h0m" or "3h4m5s".
//
// Once a full day has elapsed the hours field carries total elapsed hours,
// not hours within the current day.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds / 3600
	minutes := (seconds / 60) % 60

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds%60)
}
