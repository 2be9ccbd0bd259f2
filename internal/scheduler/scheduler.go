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

package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phuonguno98/unopanel/internal/dashboard"
)

// Animation and page rotation constants.
const (
	FramesPerCycle = 10
	CyclesPerPage  = 2
	DefaultTick    = 50 * time.Millisecond
)

// Sampler refreshes and exposes host metrics.
type Sampler interface {
	dashboard.Metrics
	Refresh()
}

// Screen is a drawing surface with explicit clear and flush.
type Screen interface {
	dashboard.Canvas
	Clear() error
	Flush() error
}

// FrameState is the position in the animation and page rotation.
type FrameState struct {
	Frame int // 0..FramesPerCycle-1, drives the spinner and refresh cadence
	Cycle int // 0..CyclesPerPage-1
	Page  int // 0..dashboard.Pages-1
}

// Next returns the state after one tick.
func (s FrameState) Next() FrameState {
	s.Frame++
	if s.Frame == FramesPerCycle {
		s.Frame = 0
		s.Cycle++
	}
	if s.Cycle == CyclesPerPage {
		s.Cycle = 0
		s.Page = (s.Page + 1) % dashboard.Pages
	}
	return s
}

// Options configures the scheduler.
type Options struct {
	Tick         time.Duration // Fixed sleep after each frame
	RefreshEvery int           // Refresh metrics when frame % RefreshEvery == 0
}

// Scheduler drives the render loop. It exclusively owns the sampler and the
// screen and runs on the caller's goroutine.
type Scheduler struct {
	sampler Sampler
	screen  Screen
	opts    Options
	state   FrameState
	render  func(dashboard.Canvas, dashboard.Metrics, int, int) error
	sleep   func(time.Duration)
	logger  *slog.Logger
}

// New creates a new scheduler instance.
func New(sampler Sampler, screen Screen, opts Options, logger *slog.Logger) (*Scheduler, error) {
	if sampler == nil || screen == nil {
		return nil, errors.New("scheduler needs a sampler and a screen")
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.RefreshEvery < 1 {
		return nil, fmt.Errorf("refresh cadence must be at least 1 tick, got %d", opts.RefreshEvery)
	}

	return &Scheduler{
		sampler: sampler,
		screen:  screen,
		opts:    opts,
		render:  dashboard.RenderPage,
		sleep:   time.Sleep,
		logger:  logger,
	}, nil
}

// State returns the state the next Step will render.
func (s *Scheduler) State() FrameState {
	return s.state
}

// Step runs one tick without sleeping: refresh if due, clear, render, advance
// counters, flush. Render errors are logged and the partial frame is still
// flushed. Clear and flush errors are returned as fatal.
func (s *Scheduler) Step() error {
	if s.state.Frame%s.opts.RefreshEvery == 0 {
		s.sampler.Refresh()
	}

	if err := s.screen.Clear(); err != nil {
		return err
	}

	if err := s.render(s.screen, s.sampler, s.state.Page, s.state.Frame); err != nil {
		s.logger.Error("Error rendering page", "page", s.state.Page, "frame", s.state.Frame, "error", err)
	}

	s.state = s.state.Next()

	return s.screen.Flush()
}

// Run refreshes once, then steps and sleeps forever. It only returns when a
// tick fails fatally. The sleep is not interruptible.
func (s *Scheduler) Run() error {
	s.logger.Info("Frame scheduler started",
		"tick", s.opts.Tick,
		"refresh_every", s.opts.RefreshEvery,
	)

	s.sampler.Refresh()
	for {
		if err := s.Step(); err != nil {
			s.logger.Error("Frame scheduler stopped", "error", err)
			return err
		}
		s.sleep(s.opts.Tick)
	}
}
