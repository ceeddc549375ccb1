// Package overlay animates the "Generating ..." indicator shown while a
// recipe is being produced.
package overlay

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/recipestudio/internal/logger"
)

// DefaultFrames are drawn in order, one per interval.
var DefaultFrames = []string{"Generating .", "Generating ..", "Generating ..."}

// Option configures the animator.
type Option func(*Animator)

// WithInterval sets the delay between frames.
func WithInterval(d time.Duration) Option {
	return func(a *Animator) {
		a.interval = d
	}
}

// WithFrames replaces the frame sequence.
func WithFrames(frames ...string) Option {
	return func(a *Animator) {
		a.frames = frames
	}
}

// Animator draws frames through a render callback until it is stopped.
// Every Start takes a new token; a loop only draws while its token is the
// current one, and token changes happen under the same lock as drawing, so
// nothing is drawn after Stop returns.
type Animator struct {
	render   func(frame string)
	log      *logger.Logger
	interval time.Duration
	frames   []string

	mu    sync.Mutex
	token uint64
	wg    sync.WaitGroup
}

// New creates an animator. render receives each frame, and an empty string
// when the overlay should be cleared.
func New(render func(frame string), log *logger.Logger, opts ...Option) *Animator {
	a := &Animator{
		render:   render,
		log:      log,
		interval: 350 * time.Millisecond,
		frames:   DefaultFrames,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start supersedes any running loop and begins a new one. Non-blocking.
// The loop also ends when ctx is cancelled.
func (a *Animator) Start(ctx context.Context) uint64 {
	a.mu.Lock()
	a.token++
	tok := a.token
	a.mu.Unlock()

	a.wg.Add(1)
	go a.loop(ctx, tok)

	a.log.Debug("overlay: started (token=%d)", tok)
	return tok
}

// Stop invalidates the running loop and clears the overlay.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token++
	a.render("")
	a.log.Debug("overlay: stopped (token=%d)", a.token)
}

// Wait blocks until every loop has exited.
func (a *Animator) Wait() {
	a.wg.Wait()
}

func (a *Animator) loop(ctx context.Context, tok uint64) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		if !a.draw(tok, a.frames[i%len(a.frames)]) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// draw renders frame if tok is still current.
func (a *Animator) draw(tok uint64, frame string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != tok {
		return false
	}
	a.render(frame)
	return true
}
