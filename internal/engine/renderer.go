package engine

import (
	"image"
	"sync"
	"time"

	"github.com/example/fractalexplorer/internal/viewport"
)

// Frame is a finished render.
type Frame struct {
	Image      *image.RGBA
	Viewport   viewport.Viewport
	Generation uint64
	Elapsed    time.Duration
}

type request struct {
	view          viewport.Viewport
	width, height int
	gen           uint64
}

// Renderer renders on a background goroutine, one job at a time. Submitting
// while a job runs replaces whatever was waiting, so only the newest view is
// rendered next. A running job is never interrupted.
type Renderer struct {
	opts    Options
	deliver func(Frame)

	mu      sync.Mutex
	pending *request
	gen     uint64

	wake      chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewRenderer starts a renderer that hands each finished frame to deliver.
// deliver runs on the renderer goroutine.
func NewRenderer(opts Options, deliver func(Frame)) *Renderer {
	r := &Renderer{
		opts:    opts,
		deliver: deliver,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go r.loop()
	return r
}

// Submit queues a render of v at width x height and returns its generation.
func (r *Renderer) Submit(v viewport.Viewport, width, height int) uint64 {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.pending = &request{view: v, width: width, height: height, gen: gen}
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
	return gen
}

// Latest returns the generation of the most recent Submit.
func (r *Renderer) Latest() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Close stops the renderer after any running job and waits for it to exit.
func (r *Renderer) Close() {
	r.closeOnce.Do(func() { close(r.done) })
	<-r.stopped
}

func (r *Renderer) loop() {
	defer close(r.stopped)
	for {
		select {
		case <-r.done:
			return
		case <-r.wake:
		}

		r.mu.Lock()
		req := r.pending
		r.pending = nil
		r.mu.Unlock()
		if req == nil {
			continue
		}

		start := time.Now()
		img := Render(req.view, req.width, req.height, r.opts)
		if r.deliver != nil {
			r.deliver(Frame{
				Image:      img,
				Viewport:   req.view,
				Generation: req.gen,
				Elapsed:    time.Since(start),
			})
		}
	}
}
