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

import (
	"net/netip"
	"time"
)

// Snapshot holds the most recent host readings shown on the panel.
type Snapshot struct {
	Timestamp     time.Time
	CPU           float64    // Mean per-core CPU utilization percentage
	Memory        float64    // RAM utilization percentage
	RootDisk      float64    // Root filesystem utilization percentage
	RootDiskOK    bool       // False when no filesystem is mounted at the root path
	Temperature   float64    // CPU temperature in °C (0 if sensor missing)
	UptimeSeconds uint64     // Seconds since boot
	Uptime        string     // Preformatted uptime, see FormatUptime
	Hostname      string     // Empty if unavailable
	IPAddress     netip.Addr // 0.0.0.0 if no interface matched
}

// NewSnapshot returns a snapshot populated with the placeholder values used
// before the first refresh.
func NewSnapshot() Snapshot {
	return Snapshot{
		Uptime:    FormatUptime(0),
		IPAddress: netip.IPv4Unspecified(),
	}
}

// CPUTimeStats represents CPU time statistics for delta calculations.
type CPUTimeStats struct {
	User      float64
	System    float64
	Idle      float64
	IOWait    float64
	Irq       float64
	SoftIrq   float64
	Steal     float64
	Guest     float64
	GuestNice float64
	Timestamp time.Time
}
