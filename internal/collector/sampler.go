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
	"log/slog"
	"net/netip"
	"time"

	"github.com/phuonguno98/unopanel/internal/config"
	"github.com/phuonguno98/unopanel/pkg/metrics"
)

// Sampler owns every metric collector and caches the latest readings.
// It is not safe for concurrent use; the frame scheduler is its only caller.
type Sampler struct {
	cpu      *CPUCollector
	memory   *MemoryCollector
	disk     *DiskCollector
	network  *NetworkCollector
	thermal  *ThermalCollector
	host     *HostCollector
	snapshot metrics.Snapshot
	logger   *slog.Logger
}

// NewSampler creates a new sampler instance. Readings hold placeholder
// values until the first Refresh.
func NewSampler(cfg *config.Config, logger *slog.Logger) *Sampler {
	return &Sampler{
		cpu:      NewCPUCollector(),
		memory:   NewMemoryCollector(),
		disk:     NewDiskCollector(cfg.RootMount),
		network:  NewNetworkCollector(cfg.Interfaces),
		thermal:  NewThermalCollector(cfg.ThermalSensor),
		host:     NewHostCollector(),
		snapshot: metrics.NewSnapshot(),
		logger:   logger,
	}
}

// Refresh re-reads every source. It never fails: a source that errors is
// logged and reported as its default value until the next refresh.
func (s *Sampler) Refresh() {
	snap := metrics.NewSnapshot()
	snap.Timestamp = time.Now()

	cpuUtil, err := s.cpu.Collect()
	if err != nil {
		s.logger.Warn("Failed to collect CPU metrics", "error", err)
	}
	snap.CPU = cpuUtil

	memUtil, err := s.memory.Collect()
	if err != nil {
		s.logger.Warn("Failed to collect memory metrics", "error", err)
	}
	snap.Memory = memUtil

	diskUtil, ok, err := s.disk.Collect()
	if err != nil {
		s.logger.Warn("Failed to collect disk metrics", "error", err)
	}
	snap.RootDisk, snap.RootDiskOK = diskUtil, ok

	temp, _, err := s.thermal.Collect()
	if err != nil {
		s.logger.Warn("Failed to collect thermal metrics", "error", err)
	}
	snap.Temperature = temp

	ip, err := s.network.Collect()
	if err != nil {
		s.logger.Warn("Failed to collect network metrics", "error", err)
	}
	snap.IPAddress = ip

	up, err := s.host.Uptime()
	if err != nil {
		s.logger.Warn("Failed to collect uptime", "error", err)
	}
	snap.UptimeSeconds = up
	snap.Uptime = metrics.FormatUptime(up)
	snap.Hostname = s.host.Hostname()

	s.snapshot = snap

	s.logger.Debug("Metrics refreshed",
		"cpu", snap.CPU,
		"memory", snap.Memory,
		"disk", snap.RootDisk,
		"disk_found", snap.RootDiskOK,
		"temp", snap.Temperature,
		"ip", snap.IPAddress,
	)
}

// Snapshot returns a copy of the latest readings.
func (s *Sampler) Snapshot() metrics.Snapshot {
	return s.snapshot
}

// Hostname returns the host name, or "" if unavailable.
func (s *Sampler) Hostname() string {
	return s.snapshot.Hostname
}

// IPAddress returns the primary IPv4 address, or 0.0.0.0.
func (s *Sampler) IPAddress() netip.Addr {
	return s.snapshot.IPAddress
}

// Uptime returns the preformatted time since boot.
func (s *Sampler) Uptime() string {
	return s.snapshot.Uptime
}

// CPUUsagePercent returns mean utilization across cores (0-100).
func (s *Sampler) CPUUsagePercent() float64 {
	return s.snapshot.CPU
}

// MemoryUsagePercent returns used/total RAM (0-100).
func (s *Sampler) MemoryUsagePercent() float64 {
	return s.snapshot.Memory
}

// CPUTemperatureCelsius returns the CPU temperature, or 0 if the sensor is missing.
func (s *Sampler) CPUTemperatureCelsius() float64 {
	return s.snapshot.Temperature
}

// RootDiskUsagePercent returns root filesystem usage; ok is false if it is not mounted.
func (s *Sampler) RootDiskUsagePercent() (usage float64, ok bool) {
	return s.snapshot.RootDisk, s.snapshot.RootDiskOK
}
