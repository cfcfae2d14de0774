// Package engine owns the update/render loop: a single goroutine ticks the
// screen at a speed-derived delay and publishes immutable frames. The
// screen pointer is only ever touched under the mutex, so a resize (which
// swaps in a fresh screen) can never race an in-flight tick.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/matrixrain/internal/rain"
)

// Tick delay bounds. Speed 10 runs at MinDelay, speed 1 close to MaxDelay.
const (
	MinDelay = 20 * time.Millisecond
	MaxDelay = 200 * time.Millisecond
)

// Delay converts the 1-10 speed setting into the tick interval.
func Delay(speed int) time.Duration {
	ratio := 1 - float64(speed)/10
	return MinDelay + time.Duration(ratio*float64(MaxDelay-MinDelay))
}

// screen is what the loop needs from rain.Screen; tests substitute a
// failing implementation to exercise the terminal-error path.
type screen interface {
	Update() error
	Snapshot() rain.Frame
}

// Runner drives the animation. Stop may be called from any goroutine, even
// before Run starts: the flag is set at construction, so a pre-Run stop is
// observed on the loop's first iteration rather than overwritten. Frames
// is closed when the loop exits, after which Err reports why.
type Runner struct {
	mu      sync.Mutex
	screen  screen
	factory *rain.Factory

	delay   time.Duration
	running atomic.Bool
	frames  chan rain.Frame
	done    chan struct{}
	err     error
}

func New(f *rain.Factory, width, height int, delay time.Duration) (*Runner, error) {
	scr, err := rain.NewScreen(width, height, f)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		screen:  scr,
		factory: f,
		delay:   delay,
		frames:  make(chan rain.Frame, 1),
		done:    make(chan struct{}),
	}
	r.running.Store(true)
	return r, nil
}

// Frames delivers one snapshot per tick. A slow consumer drops frames
// rather than stalling the loop.
func (r *Runner) Frames() <-chan rain.Frame { return r.frames }

// Done is closed once Run has returned and no tick is in flight.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Err reports why the loop stopped; valid after Done is closed.
func (r *Runner) Err() error { return r.err }

// Stop asks the loop to exit. It returns immediately; wait on Done for the
// loop to finish its current tick.
func (r *Runner) Stop() { r.running.Store(false) }

// Resize discards the whole screen and swaps in an empty one at the new
// size. No strand state migrates across a resize.
func (r *Runner) Resize(width, height int) error {
	scr, err := rain.NewScreen(width, height, r.factory)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.screen = scr
	r.mu.Unlock()
	return nil
}

// Run ticks until Stop is called, the context is canceled, or an update
// fails. An update error is terminal: the loop stops rather than render
// partially-updated state.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)
	defer close(r.frames)

	ticker := time.NewTicker(r.delay)
	defer ticker.Stop()

	for r.running.Load() {
		select {
		case <-ctx.Done():
			r.err = ctx.Err()
			return r.err
		case <-ticker.C:
		}

		r.mu.Lock()
		err := r.screen.Update()
		var frame rain.Frame
		if err == nil {
			frame = r.screen.Snapshot()
		}
		r.mu.Unlock()

		if err != nil {
			r.err = err
			return err
		}

		select {
		case r.frames <- frame:
		default:
		}
	}
	return nil
}
