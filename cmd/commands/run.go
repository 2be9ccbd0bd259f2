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
	"runtime"
	"strconv"

	"github.com/phuonguno98/unopanel/internal/collector"
	"github.com/phuonguno98/unopanel/internal/config"
	"github.com/phuonguno98/unopanel/internal/display"
	"github.com/phuonguno98/unopanel/internal/scheduler"
	"github.com/phuonguno98/unopanel/pkg/version"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// runPanel is the main dashboard entry point. It only returns on a fatal error.
func runPanel(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := InitLogger(cfg.LogLevel, cfg.LogFile)

	logger.Info("Starting UnoPanel",
		"version", version.Info(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
	)
	logger.Info("Configuration loaded", "config", cfg.String())

	checkPlatformCapabilities(logger)

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	bus, err := i2creg.Open(strconv.Itoa(cfg.Bus))
	if err != nil {
		return fmt.Errorf("failed to open I2C bus %d: %w", cfg.Bus, err)
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logger.Error("Failed to close I2C bus", "error", err)
		}
	}()

	rotation := display.Rotate0
	if cfg.Rotated {
		rotation = display.Rotate180
	}

	surface, err := display.Open(bus, cfg.Address,
		display.Geometry{Width: cfg.Width, Height: cfg.Height}, rotation)
	if err != nil {
		return err
	}
	defer func() {
		if err := surface.Close(); err != nil {
			logger.Error("Failed to close display", "error", err)
		}
	}()

	logger.Info("Display initialized",
		"bus", bus.String(),
		"address", fmt.Sprintf("0x%02X", cfg.Address),
	)

	sampler := collector.NewSampler(cfg, logger)

	sched, err := scheduler.New(sampler, surface, scheduler.Options{
		Tick:         cfg.TickPeriod,
		RefreshEvery: cfg.RefreshEvery(),
	}, logger)
	if err != nil {
		return err
	}

	return sched.Run()
}

// checkPlatformCapabilities logs platform-specific capability warnings.
func checkPlatformCapabilities(logger *slog.Logger) {
	if runtime.GOOS != osLinux {
		logger.Warn("I2C access and CPU temperature are only supported on Linux", "os", runtime.GOOS)
	}
}
