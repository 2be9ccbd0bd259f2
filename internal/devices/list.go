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

package devices

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/net"
)

// Dependency injection points for testing
var (
	diskPartitions = disk.Partitions
	diskUsage      = disk.Usage
	netInterfaces  = net.Interfaces

	sensorsTemperatures = host.SensorsTemperatures
)

// DiskInfo represents a mounted filesystem.
type DiskInfo struct {
	Name       string
	Mountpoint string
	Filesystem string
	Total      uint64
	Used       uint64
}

// NetworkInfo represents network interface information.
type NetworkInfo struct {
	Name       string
	MacAddress string
	Addresses  []string
}

// ListDisks returns a list of available disk devices.
func ListDisks() ([]DiskInfo, error) {
	partitions, err := diskPartitions(false)
	if err != nil {
		return nil, fmt.Errorf("failed to get disk partitions: %w", err)
	}

	disks := make([]DiskInfo, 0)
	seen := make(map[string]bool)

	for _, partition := range partitions {
		// Skip duplicate devices
		if seen[partition.Device] {
			continue
		}
		seen[partition.Device] = true

		info := DiskInfo{
			Name:       partition.Device,
			Mountpoint: partition.Mountpoint,
			Filesystem: partition.Fstype,
		}
		if usage, err := diskUsage(partition.Mountpoint); err == nil {
			info.Total = usage.Total
			info.Used = usage.Total - usage.Free
		}

		disks = append(disks, info)
	}

	// Sort by device name
	sort.Slice(disks, func(i, j int) bool {
		return disks[i].Name < disks[j].Name
	})

	return disks, nil
}

// ListNetworkInterfaces returns a list of available network interfaces.
func ListNetworkInterfaces() ([]NetworkInfo, error) {
	interfaces, err := netInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get network interfaces: %w", err)
	}

	networks := make([]NetworkInfo, 0)

	for _, iface := range interfaces {
		// Skip interfaces without addresses
		if len(iface.Addrs) == 0 {
			continue
		}

		addresses := make([]string, 0, len(iface.Addrs))
		for _, addr := range iface.Addrs {
			addresses = append(addresses, addr.Addr)
		}

		networks = append(networks, NetworkInfo{
			Name:       iface.Name,
			MacAddress: iface.HardwareAddr,
			Addresses:  addresses,
		})
	}

	// Sort by interface name
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Name < networks[j].Name
	})

	return networks, nil
}

// SensorInfo is one temperature sensor reading.
type SensorInfo struct {
	Key         string
	Temperature float64
}

// ListSensors returns the temperature sensors the kernel exposes. Sensors
// that fail to read are skipped as long as at least one reading came back.
func ListSensors() ([]SensorInfo, error) {
	temps, err := sensorsTemperatures()
	if err != nil && len(temps) == 0 {
		return nil, fmt.Errorf("failed to get temperature sensors: %w", err)
	}

	sensors := make([]SensorInfo, 0, len(temps))
	for _, t := range temps {
		sensors = append(sensors, SensorInfo{Key: t.SensorKey, Temperature: t.Temperature})
	}

	sort.Slice(sensors, func(i, j int) bool {
		return sensors[i].Key < sensors[j].Key
	})

	return sensors, nil
}

// FormatDisksTable formats disk information as a table.
func FormatDisksTable(disks []DiskInfo) string {
	var sb strings.Builder

	sb.WriteString("\nAvailable Disk Devices:\n")
	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-26s %-20s %-10s %-10s %s\n", "DEVICE", "MOUNTPOINT", "FILESYSTEM", "SIZE", "USED"))
	sb.WriteString(strings.Repeat("-", 80))
	sb.WriteString("\n")

	for _, d := range disks {
		used := "N/A"
		if d.Total > 0 {
			used = fmt.Sprintf("%.0f%%", float64(d.Used)/float64(d.Total)*100)
		}
		sb.WriteString(fmt.Sprintf("%-26s %-20s %-10s %-10s %s\n",
			truncate(d.Name, 26),
			truncate(d.Mountpoint, 20),
			d.Filesystem,
			humanize.IBytes(d.Total),
			used,
		))
	}

	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")

	return sb.String()
}

// FormatNetworksTable formats network interface information as a table.
func FormatNetworksTable(networks []NetworkInfo) string {
	var sb strings.Builder

	sb.WriteString("\nAvailable Network Interfaces:\n")
	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-40s %-17s %s\n", "INTERFACE", "MAC ADDRESS", "IP ADDRESSES"))
	sb.WriteString(strings.Repeat("-", 80))
	sb.WriteString("\n")

	for _, n := range networks {
		mac := n.MacAddress
		if mac == "" {
			mac = "N/A"
		}

		// Show first IP address on same line
		firstIP := "N/A"
		if len(n.Addresses) > 0 {
			firstIP = n.Addresses[0]
		}

		sb.WriteString(fmt.Sprintf("%-40s %-17s %s\n",
			n.Name,
			mac,
			firstIP,
		))

		// Show additional IPs on separate lines
		for i := 1; i < len(n.Addresses); i++ {
			sb.WriteString(fmt.Sprintf("%-40s %-17s %s\n", "", "", n.Addresses[i]))
		}
	}

	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")

	return sb.String()
}

// FormatSensorsTable formats temperature sensors as a table.
func FormatSensorsTable(sensors []SensorInfo) string {
	var sb strings.Builder

	sb.WriteString("\nAvailable Temperature Sensors:\n")
	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-40s %s\n", "SENSOR KEY", "TEMPERATURE"))
	sb.WriteString(strings.Repeat("-", 80))
	sb.WriteString("\n")

	for _, s := range sensors {
		sb.WriteString(fmt.Sprintf("%-40s %.1f°C\n", s.Key, s.Temperature))
	}

	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")

	return sb.String()
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
