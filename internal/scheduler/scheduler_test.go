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
	"image"
	"io"
	"log/slog"
	"net/netip"
	"testing"
	"time"

	"github.com/phuonguno98/unopanel/internal/dashboard"
	"github.com/phuonguno98/unopanel/internal/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSampler struct {
	refreshes int
}

func (f *fakeSampler) Refresh()                              { f.refreshes++ }
func (f *fakeSampler) Hostname() string                      { return "panel" }
func (f *fakeSampler) IPAddress() netip.Addr                 { return netip.IPv4Unspecified() }
func (f *fakeSampler) Uptime() string                        { return "0h1m2s" }
func (f *fakeSampler) CPUUsagePercent() float64              { return 10 }
func (f *fakeSampler) MemoryUsagePercent() float64           { return 20 }
func (f *fakeSampler) CPUTemperatureCelsius() float64        { return 40 }
func (f *fakeSampler) RootDiskUsagePercent() (float64, bool) { return 0, false }

// fakeScreen counts operations and injects failures.
type fakeScreen struct {
	ops         []string
	texts       int
	failTextAt  int // 1-based DrawText call that fails, 0 = never
	clearErr    error
	flushErr    error
	failFlushAt int // 1-based Flush call that fails, 0 = use flushErr
	flushes     int
}

func (f *fakeScreen) DrawText(string, image.Point, *display.Font) error {
	f.texts++
	if f.texts == f.failTextAt {
		return display.ErrWrite
	}
	f.ops = append(f.ops, "text")
	return nil
}

func (f *fakeScreen) DrawLine(image.Point, image.Point) error {
	f.ops = append(f.ops, "line")
	return nil
}

func (f *fakeScreen) DrawFilledRect(image.Point, image.Point) error {
	f.ops = append(f.ops, "rect")
	return nil
}

func (f *fakeScreen) DrawArc(image.Point, int, float64, float64) error {
	f.ops = append(f.ops, "arc")
	return nil
}

func (f *fakeScreen) Clear() error {
	f.ops = append(f.ops, "clear")
	return f.clearErr
}

func (f *fakeScreen) Flush() error {
	f.flushes++
	f.ops = append(f.ops, "flush")
	if f.failFlushAt > 0 && f.flushes == f.failFlushAt {
		return display.ErrFlush
	}
	return f.flushErr
}

func newTestScheduler(t *testing.T, sampler Sampler, screen Screen, refreshEvery int) (*Scheduler, *[]time.Duration) {
	t.Helper()
	s, err := New(sampler, screen, Options{Tick: DefaultTick, RefreshEvery: refreshEvery}, discardLogger())
	require.NoError(t, err)

	var sleeps []time.Duration
	s.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return s, &sleeps
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, &fakeScreen{}, Options{RefreshEvery: 1}, discardLogger())
	assert.Error(t, err)

	_, err = New(&fakeSampler{}, nil, Options{RefreshEvery: 1}, discardLogger())
	assert.Error(t, err)

	_, err = New(&fakeSampler{}, &fakeScreen{}, Options{RefreshEvery: 0}, discardLogger())
	assert.Error(t, err)

	s, err := New(&fakeSampler{}, &fakeScreen{}, Options{RefreshEvery: 4}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, DefaultTick, s.opts.Tick)
}

func TestFrameState_PageSwitchesEveryTwentyTicks(t *testing.T) {
	for _, start := range []int{0, 1} {
		state := FrameState{Page: start}
		for tick := 0; tick < 20; tick++ {
			assert.Equal(t, start, state.Page, "tick %d", tick)
			state = state.Next()
		}
		assert.Equal(t, (start+1)%2, state.Page)
		assert.Equal(t, FrameState{Page: (start + 1) % 2}, state)
	}
}

func TestFrameState_Ranges(t *testing.T) {
	state := FrameState{}
	switches := 0
	for tick := 0; tick < 200; tick++ {
		next := state.Next()
		assert.GreaterOrEqual(t, next.Frame, 0)
		assert.Less(t, next.Frame, FramesPerCycle)
		assert.Less(t, next.Cycle, CyclesPerPage)
		assert.Contains(t, []int{0, 1}, next.Page)
		if next.Page != state.Page {
			switches++
		}
		state = next
	}
	assert.Equal(t, 10, switches)
}

func TestStep_RefreshCadence(t *testing.T) {
	for _, k := range []int{1, 2, 4, 5, 20} {
		sampler := &fakeSampler{}
		s, _ := newTestScheduler(t, sampler, &fakeScreen{}, k)

		var refreshedAt []int
		for tick := 0; tick < 40; tick++ {
			before := sampler.refreshes
			require.NoError(t, s.Step())
			if sampler.refreshes > before {
				refreshedAt = append(refreshedAt, tick)
			}
		}

		var want []int
		for tick := 0; tick < 40; tick++ {
			if (tick%FramesPerCycle)%k == 0 {
				want = append(want, tick)
			}
		}
		assert.Equal(t, want, refreshedAt, "K=%d", k)
	}
}

func TestStep_Order(t *testing.T) {
	screen := &fakeScreen{}
	s, _ := newTestScheduler(t, &fakeSampler{}, screen, 2)

	require.NoError(t, s.Step())

	require.NotEmpty(t, screen.ops)
	assert.Equal(t, "clear", screen.ops[0])
	assert.Equal(t, "flush", screen.ops[len(screen.ops)-1])
	assert.Equal(t, FrameState{Frame: 1}, s.State())
}

func TestStep_RenderErrorStillFlushes(t *testing.T) {
	screen := &fakeScreen{failTextAt: 2}
	s, _ := newTestScheduler(t, &fakeSampler{}, screen, 2)

	require.NoError(t, s.Step())
	assert.Equal(t, 1, screen.flushes)
	assert.Equal(t, []string{"clear", "arc", "text", "line", "flush"}, screen.ops)
	assert.Equal(t, FrameState{Frame: 1}, s.State())
}

func TestStep_ClearErrorIsFatal(t *testing.T) {
	screen := &fakeScreen{clearErr: display.ErrClear}
	s, _ := newTestScheduler(t, &fakeSampler{}, screen, 2)

	assert.ErrorIs(t, s.Step(), display.ErrClear)
	assert.Zero(t, screen.flushes)
}

func TestRun_SurvivesBadFrame(t *testing.T) {
	// One text draw fails on the first tick; the third flush fails to end the loop.
	screen := &fakeScreen{failTextAt: 3, failFlushAt: 3}
	sampler := &fakeSampler{}
	s, sleeps := newTestScheduler(t, sampler, screen, 2)

	err := s.Run()
	assert.ErrorIs(t, err, display.ErrFlush)

	assert.Equal(t, 3, screen.flushes)
	assert.Equal(t, []time.Duration{DefaultTick, DefaultTick}, *sleeps)
	// Initial refresh plus the ticks at frame 0 and frame 2.
	assert.Equal(t, 3, sampler.refreshes)
}

func TestRun_FlushFailureTerminatesImmediately(t *testing.T) {
	screen := &fakeScreen{flushErr: errors.New("i2c write failed")}
	s, sleeps := newTestScheduler(t, &fakeSampler{}, screen, 2)

	err := s.Run()
	require.Error(t, err)
	assert.Equal(t, 1, screen.flushes)
	assert.Empty(t, *sleeps)
}

func TestRun_RendersBothPages(t *testing.T) {
	screen := &fakeScreen{failFlushAt: 41}
	s, _ := newTestScheduler(t, &fakeSampler{}, screen, 4)

	var pages []int
	s.render = func(c dashboard.Canvas, m dashboard.Metrics, page, frame int) error {
		pages = append(pages, page)
		return dashboard.RenderPage(c, m, page, frame)
	}

	assert.ErrorIs(t, s.Run(), display.ErrFlush)
	require.Len(t, pages, 41)
	for i, p := range pages {
		assert.Equal(t, (i/20)%2, p, "tick %d", i)
	}
}
