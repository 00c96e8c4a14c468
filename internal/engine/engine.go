package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zeusync/tickcore/internal/audio"
	"github.com/zeusync/tickcore/internal/core/dispatch"
	"github.com/zeusync/tickcore/internal/core/events/bus"
	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/observability/log"
	"github.com/zeusync/tickcore/internal/core/projection"
	"github.com/zeusync/tickcore/internal/core/registry"
	"github.com/zeusync/tickcore/internal/input"
	"github.com/zeusync/tickcore/internal/render"
)

// EventTickCompleted is published on the bus after every frame with a Frame as data.
const EventTickCompleted = "tick.completed"

type Config struct {
	TickInterval time.Duration
	// Ticks stops the loop after that many frames. Zero runs until the context ends.
	Ticks uint64
}

func DefaultConfig() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
	}
}

// Frame is what one pass of the loop produced.
type Frame struct {
	Number      uint64
	Events      []models.Input
	Control     models.Control
	Registry    registry.Registry
	Screen      render.Screen
	Fingerprint uint64
}

// Engine drives the dispatcher at a fixed interval and hands each frame's
// output to the renderer, the audio sink and the bus.
type Engine struct {
	config     Config
	dispatcher *dispatch.Dispatcher
	input      input.Provider
	renderer   render.Renderer
	audio      audio.Sink
	bus        bus.EventBus
	logger     log.Log

	running int32 // atomic bool
	frame   uint64
}

func New(
	config Config,
	dispatcher *dispatch.Dispatcher,
	in input.Provider,
	renderer render.Renderer,
	sink audio.Sink,
	eventBus bus.EventBus,
	logger log.Log,
) *Engine {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Engine{
		config:     config,
		dispatcher: dispatcher,
		input:      in,
		renderer:   renderer,
		audio:      sink,
		bus:        eventBus,
		logger:     logger.With(log.String("component", "engine")),
	}
}

func (e *Engine) Running() bool {
	return atomic.LoadInt32(&e.running) == 1
}

// Frame returns the number of the last completed frame.
func (e *Engine) Frame() uint64 {
	return atomic.LoadUint64(&e.frame)
}

// Run ticks world until ctx is done or the configured number of frames has
// passed, and returns the last registry. Cancellation is not an error.
func (e *Engine) Run(ctx context.Context, world registry.Registry) (registry.Registry, error) {
	if e.config.TickInterval <= 0 {
		return world, fmt.Errorf("%w: tick interval must be positive", ErrInvalidConfig)
	}
	if !atomic.CompareAndSwapInt32(&e.running, 0, 1) {
		return world, ErrEngineAlreadyRunning
	}
	defer atomic.StoreInt32(&e.running, 0)

	e.logger.Info("Engine started",
		log.Duration("tick_interval", e.config.TickInterval),
		log.Uint64("ticks", e.config.Ticks),
		log.Int("entities", world.Len()))

	ticker := time.NewTicker(e.config.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine stopped", log.Uint64("frame", e.Frame()))
			return world, nil
		case now := <-ticker.C:
			frame, err := e.Step(world, e.Frame()+1, now.Sub(last))
			if err != nil {
				return world, err
			}
			last = now
			world = frame.Registry

			if e.config.Ticks > 0 && frame.Number >= e.config.Ticks {
				e.logger.Info("Engine finished", log.Uint64("frame", frame.Number))
				return world, nil
			}
		}
	}
}

// Step runs a single frame on world.
func (e *Engine) Step(world registry.Registry, number uint64, elapsed time.Duration) (Frame, error) {
	events, err := e.input.Poll(number)
	if err != nil {
		return Frame{}, fmt.Errorf("poll input for frame %d: %w", number, err)
	}

	result := e.dispatcher.Tick(world, dispatch.TickInput{Events: events, Elapsed: elapsed})

	renderables := append(result.Renderables,
		projection.TextLine{Text: fmt.Sprintf("input: %v dx = %d", input.Names(events), result.Control.DX)},
		projection.TextLine{Text: fmt.Sprintf("Frame: %d", number)},
	)
	screen, err := e.renderer.Render(renderables)
	if err != nil {
		return Frame{}, fmt.Errorf("render frame %d: %w", number, err)
	}
	if err = e.audio.Play(result.Playables); err != nil {
		return Frame{}, fmt.Errorf("play frame %d: %w", number, err)
	}

	frame := Frame{
		Number:      number,
		Events:      events,
		Control:     result.Control,
		Registry:    result.Registry,
		Screen:      screen,
		Fingerprint: result.Registry.Fingerprint(),
	}
	atomic.StoreUint64(&e.frame, number)

	if e.bus != nil {
		if err = e.bus.Publish(bus.NewEvent(EventTickCompleted, "engine", frame)); err != nil {
			e.logger.Warn("Tick subscribers failed", log.Uint64("frame", number), log.Error(err))
		}
	}

	e.logger.Debug("Frame completed",
		log.Uint64("frame", number),
		log.Int("entities", frame.Registry.Len()),
		log.Uint64("fingerprint", frame.Fingerprint))
	return frame, nil
}
