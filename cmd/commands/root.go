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
	"log/slog"
	"os"
	"strings"

	"github.com/phuonguno98/unopanel/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// v merges command-line flags, UNOPANEL_* environment variables and defaults.
var v = config.NewViper()

const osLinux = "linux"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "unopanel",
	Short: "UnoPanel - System status dashboard for SSD1306 OLED panels",
	Long: `UnoPanel drives a 128x64 SSD1306 OLED panel over I2C on single-board
computers and renders a live dashboard: hostname or IP address, CPU, memory
and root disk usage, uptime and CPU temperature.

Every flag can also be set through the environment, e.g. UNOPANEL_I2C_BUS=0.

Examples:
  # Run on bus 1 at the default address 0x3C
  unopanel

  # Panel on bus 0 at address 0x3D, mounted upside down
  unopanel -b 0 -a 0x3D --rotate`,
	RunE:         runPanel,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().String(config.KeyLogLevel, config.DefaultLogLevel,
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(config.KeyLogFile, "",
		"Log file path (empty = stdout)")

	// Panel flags
	flags := rootCmd.Flags()
	flags.IntP(config.KeyBus, "b", config.DefaultBus,
		"I2C bus number (/dev/i2c-N)")
	flags.StringP(config.KeyAddress, "a", fmt.Sprintf("0x%02X", config.DefaultAddress),
		"I2C address of the panel (hex or decimal)")
	flags.Bool(config.KeyRotate, false,
		"Rotate the image by 180 degrees")
	flags.Duration(config.KeyTickPeriod, config.DefaultTickPeriod,
		"Frame period")
	flags.Duration(config.KeyRefreshInterval, config.DefaultRefreshInterval,
		"Metrics refresh interval (multiple of --tick)")
	flags.String(config.KeyThermalSensor, config.DefaultThermalSensor,
		"Temperature sensor key shown in the footer (see list-devices)")
	flags.String(config.KeyInterfaces, strings.Join(config.DefaultInterfaces, ","),
		"Comma-separated interfaces searched in order for the IP address")
	flags.String(config.KeyRootMount, config.DefaultRootMount,
		"Mount point shown in the disk gauge")

	bindFlags(v, rootCmd)
}

// bindFlags registers the command's local and persistent flags with viper.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
}

// InitLogger initializes and returns a slog.Logger based on the provided settings.
// It is shared by all commands to ensure consistent logging format.
func InitLogger(levelStr, fileStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if fileStr != "" {
		f, err := os.OpenFile(fileStr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		handler = slog.NewJSONHandler(f, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
