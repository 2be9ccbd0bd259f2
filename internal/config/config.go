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

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration.
type Config struct {
	// Panel
	Bus     int    // I2C bus index (/dev/i2c-N)
	Address uint16 // 7-bit I2C device address
	Width   int    // Panel width in pixels
	Height  int    // Panel height in pixels
	Rotated bool   // Rotate the panel by 180 degrees

	// Timing
	TickPeriod      time.Duration // Fixed delay between frames
	RefreshInterval time.Duration // Minimum interval between metrics refreshes

	// Sources
	ThermalSensor string   // Sensor key of the CPU thermal zone
	Interfaces    []string // Network interfaces in priority order
	RootMount     string   // Mount point used for the disk gauge

	// Logging
	LogLevel string // Log level: debug, info, warn, error
	LogFile  string // Log file path (empty = stdout)
}

// Default configuration values.
const (
	DefaultBus             = 1
	DefaultAddress         = 0x3C
	DefaultWidth           = 128
	DefaultHeight          = 64
	DefaultTickPeriod      = 50 * time.Millisecond
	DefaultRefreshInterval = 200 * time.Millisecond
	DefaultThermalSensor   = "cpu_thermal"
	DefaultRootMount       = "/"
	DefaultLogLevel        = "info"

	// EnvPrefix prefixes environment overrides, e.g. UNOPANEL_I2C_ADDRESS.
	EnvPrefix = "UNOPANEL"
)

// DefaultInterfaces lists wired before wireless.
var DefaultInterfaces = []string{"eth0", "wlan0"}

// Keys shared by the command-line flags and the viper registry.
const (
	KeyBus             = "i2c-bus"
	KeyAddress         = "i2c-address"
	KeyRotate          = "rotate"
	KeyTickPeriod      = "tick"
	KeyRefreshInterval = "refresh-interval"
	KeyThermalSensor   = "thermal-sensor"
	KeyInterfaces      = "interfaces"
	KeyRootMount       = "root-mount"
	KeyLogLevel        = "log-level"
	KeyLogFile         = "log-file"
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Bus:             DefaultBus,
		Address:         DefaultAddress,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		TickPeriod:      DefaultTickPeriod,
		RefreshInterval: DefaultRefreshInterval,
		ThermalSensor:   DefaultThermalSensor,
		Interfaces:      append([]string(nil), DefaultInterfaces...),
		RootMount:       DefaultRootMount,
		LogLevel:        DefaultLogLevel,
	}
}

// NewViper returns a viper registry with defaults set and environment
// overrides enabled. Flags are bound by the caller with BindPFlags.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBus, DefaultBus)
	v.SetDefault(KeyAddress, fmt.Sprintf("0x%02X", DefaultAddress))
	v.SetDefault(KeyRotate, false)
	v.SetDefault(KeyTickPeriod, DefaultTickPeriod)
	v.SetDefault(KeyRefreshInterval, DefaultRefreshInterval)
	v.SetDefault(KeyThermalSensor, DefaultThermalSensor)
	v.SetDefault(KeyInterfaces, strings.Join(DefaultInterfaces, ","))
	v.SetDefault(KeyRootMount, DefaultRootMount)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
	return v
}

// Load builds and validates a Config from the viper registry.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()

	addr, err := ParseAddress(v.GetString(KeyAddress))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Bus = v.GetInt(KeyBus)
	cfg.Address = addr
	cfg.Rotated = v.GetBool(KeyRotate)
	cfg.TickPeriod = v.GetDuration(KeyTickPeriod)
	cfg.RefreshInterval = v.GetDuration(KeyRefreshInterval)
	cfg.ThermalSensor = v.GetString(KeyThermalSensor)
	cfg.Interfaces = parseCommaSeparated(v.GetString(KeyInterfaces))
	cfg.RootMount = v.GetString(KeyRootMount)
	cfg.LogLevel = v.GetString(KeyLogLevel)
	cfg.LogFile = v.GetString(KeyLogFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ParseAddress parses an I2C address written in hex ("0x3C") or decimal ("60").
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("i2c address cannot be empty")
	}

	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}

	n, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid i2c address %q: %w", s, err)
	}

	return uint16(n), nil
}

// parseCommaSeparated parses a comma-separated string into a slice of trimmed strings.
func parseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Bus < 0 {
		return errors.New("i2c bus index must not be negative")
	}

	// 0x00-0x07 and 0x78-0x7F are reserved by the I2C specification.
	if c.Address < 0x08 || c.Address > 0x77 {
		return fmt.Errorf("i2c address 0x%02X is outside the 7-bit range 0x08-0x77", c.Address)
	}

	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("panel geometry must be positive")
	}

	if c.TickPeriod < 1*time.Millisecond {
		return errors.New("tick period must be at least 1 millisecond")
	}

	if c.RefreshInterval < c.TickPeriod {
		return errors.New("refresh interval must not be shorter than the tick period")
	}

	if c.RefreshInterval%c.TickPeriod != 0 {
		return fmt.Errorf("refresh interval %v must be a multiple of the tick period %v",
			c.RefreshInterval, c.TickPeriod)
	}

	if len(c.Interfaces) == 0 {
		return errors.New("at least one network interface is required")
	}

	if c.RootMount == "" {
		return errors.New("root mount cannot be empty")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// RefreshEvery returns how many ticks elapse between metrics refreshes.
func (c *Config) RefreshEvery() int {
	if c.TickPeriod <= 0 {
		return 1
	}
	n := int(c.RefreshInterval / c.TickPeriod)
	if n < 1 {
		return 1
	}
	return n
}

// String returns a human-readable representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Bus=%d, Address=0x%02X, Size=%dx%d, Rotated=%t, Tick=%v, Refresh=%v, Sensor=%s, Interfaces=%v, RootMount=%s}",
		c.Bus, c.Address, c.Width, c.Height, c.Rotated, c.TickPeriod, c.RefreshInterval,
		c.ThermalSensor, c.Interfaces, c.RootMount)
}
