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

	"github.com/phuonguno98/unopanel/pkg/metrics"
	"github.com/shirou/gopsutil/v3/disk"
)

// Dependency injection points for testing
var (
	diskPartitions = disk.Partitions
	diskUsage      = disk.Usage
)

// DiskCollector collects space usage of the filesystem mounted at a single mount point.
type DiskCollector struct {
	mountPoint string
}

// NewDiskCollector creates a new disk collector for the given mount point (usually "/").
func NewDiskCollector(mountPoint string) *DiskCollector {
	return &DiskCollector{mountPoint: mountPoint}
}

// Collect returns the usage percentage of the watched mount point.
// ok is false when no mounted filesystem matches; that case is not an error.
func (d *DiskCollector) Collect() (usage float64, ok bool, err error) {
	partitions, err := diskPartitions(false)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get disk partitions: %w", err)
	}

	for _, partition := range partitions {
		if partition.Mountpoint != d.mountPoint {
			continue
		}

		stat, err := diskUsage(partition.Mountpoint)
		if err != nil {
			return 0, false, fmt.Errorf("failed to get usage of %s: %w", partition.Mountpoint, err)
		}

		// (Total - Available) / Total, matching what df reports as used
		var used uint64
		if stat.Total > stat.Free {
			used = stat.Total - stat.Free
		}
		return metrics.UsagePercent(used, stat.Total), true, nil
	}

	return 0, false, nil
}

// Name returns the collector name for logging purposes.
func (d *DiskCollector) Name() string {
	return "Disk"
}
