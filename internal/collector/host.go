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
	"os"

	"github.com/shirou/gopsutil/v3/host"
)

// Dependency injection points for testing
var (
	hostUptime = host.Uptime
	osHostname = os.Hostname
)

// HostCollector collects host identity and uptime.
type HostCollector struct{}

// NewHostCollector creates a new host collector instance.
func NewHostCollector() *HostCollector {
	return &HostCollector{}
}

// Hostname returns the configured host name, or "" if it cannot be read.
func (h *HostCollector) Hostname() string {
	name, err := osHostname()
	if err != nil {
		return ""
	}
	return name
}

// Uptime returns whole seconds since boot.
func (h *HostCollector) Uptime() (uint64, error) {
	up, err := hostUptime()
	if err != nil {
		return 0, fmt.Errorf("failed to get uptime: %w", err)
	}
	return up, nil
}

// Name returns the collector name for logging purposes.
func (h *HostCollector) Name() string {
	return "Host"
}
