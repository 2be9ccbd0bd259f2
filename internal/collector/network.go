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
	"net/netip"
	"strings"

	"github.com/shirou/gopsutil/v3/net"
)

// Dependency injection point for testing
var netInterfaces = net.Interfaces

// NetworkCollector resolves the primary IPv4 address of the host.
type NetworkCollector struct {
	interfaces []string // Interface names in priority order
}

// NewNetworkCollector creates a new network collector instance.
// interfaces is the priority order to search, e.g. eth0 before wlan0.
func NewNetworkCollector(interfaces []string) *NetworkCollector {
	return &NetworkCollector{interfaces: interfaces}
}

// Collect returns the first IPv4 address assigned to the highest priority
// interface that has one. It returns 0.0.0.0 when no interface matches.
func (n *NetworkCollector) Collect() (netip.Addr, error) {
	ifaces, err := netInterfaces()
	if err != nil {
		return netip.IPv4Unspecified(), fmt.Errorf("failed to get network interfaces: %w", err)
	}

	byName := make(map[string]net.InterfaceStat, len(ifaces))
	for _, iface := range ifaces {
		if _, seen := byName[iface.Name]; !seen {
			byName[iface.Name] = iface
		}
	}

	for _, name := range n.interfaces {
		iface, ok := byName[name]
		if !ok {
			continue
		}
		for _, addr := range iface.Addrs {
			if ip, ok := parseAddr(addr.Addr); ok && ip.Is4() {
				return ip, nil
			}
		}
	}

	return netip.IPv4Unspecified(), nil
}

// parseAddr accepts both CIDR ("192.168.1.5/24") and bare address forms.
func parseAddr(s string) (netip.Addr, bool) {
	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Addr{}, false
		}
		return prefix.Addr().Unmap(), true
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// Name returns the collector name for logging purposes.
func (n *NetworkCollector) Name() string {
	return "Network"
}
