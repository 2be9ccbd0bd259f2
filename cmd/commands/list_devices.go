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

package commands

import (
	"fmt"
	"os"

	"github.com/phuonguno98/unopanel/internal/devices"
	"github.com/spf13/cobra"
)

var listDevicesCmd = &cobra.Command{
	Use:   "list-devices",
	Short: "List mounted filesystems, network interfaces and temperature sensors",
	Long: `List mounted filesystems, network interfaces and temperature sensors.
This helps to pick --root-mount, --interfaces and --thermal-sensor.

Examples:
  # List all available devices
  unopanel list-devices

  # Use the output to configure the dashboard
  unopanel --interfaces="wlan0,eth0" --thermal-sensor="cpu_thermal"`,
	RunE: runListDevices,
}

func init() {
	rootCmd.AddCommand(listDevicesCmd)
}

func runListDevices(_ *cobra.Command, _ []string) error {
	fmt.Println("\n========================================")
	fmt.Println("   UnoPanel - Available Devices")
	fmt.Println("========================================")

	disks, err := devices.ListDisks()
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error listing disks: %v\n", err)
	case len(disks) == 0:
		fmt.Println("\nNo mounted filesystems found.")
	default:
		fmt.Print(devices.FormatDisksTable(disks))
		fmt.Println("\nExample usage:")
		fmt.Printf("  unopanel --root-mount=\"%s\"\n", disks[0].Mountpoint)
	}

	networks, err := devices.ListNetworkInterfaces()
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error listing network interfaces: %v\n", err)
	case len(networks) == 0:
		fmt.Println("\nNo network interfaces found.")
	default:
		fmt.Print(devices.FormatNetworksTable(networks))
		fmt.Println("\nExample usage:")
		if len(networks) > 1 {
			fmt.Printf("  unopanel --interfaces=\"%s,%s\"\n", networks[0].Name, networks[1].Name)
		} else {
			fmt.Printf("  unopanel --interfaces=\"%s\"\n", networks[0].Name)
		}
	}

	sensors, err := devices.ListSensors()
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error listing temperature sensors: %v\n", err)
	case len(sensors) == 0:
		fmt.Println("\nNo temperature sensors found.")
	default:
		fmt.Print(devices.FormatSensorsTable(sensors))
		fmt.Println("\nExample usage:")
		fmt.Printf("  unopanel --thermal-sensor=\"%s\"\n", sensors[0].Key)
	}

	fmt.Println("\nNotes:")
	fmt.Println("  - Interfaces are searched in the given order; the first IPv4 address wins")
	fmt.Println("  - A missing sensor shows 0°C, a missing mount shows N/A")
	fmt.Println()

	return nil
}
