// Package engine runs the terminal event loop: poll, translate, apply, redraw.
//
// Core state is owned by the loop goroutine. A separate poller goroutine only
// reads terminal events and forwards them over a channel.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pangram/app"
	"github.com/lixenwraith/pangram/input"
	"github.com/lixenwraith/pangram/render"
)

// eventBuffer bounds events queued between poller and loop
const eventBuffer = 256

// ErrScreenClosed is returned when the terminal stops delivering events
var ErrScreenClosed = errors.New("screen closed")

// CompletionListener receives pangram completion transitions
type CompletionListener interface {
	OnCompletionChange(complete bool)
}

// Config wires the engine's collaborators
type Config struct {
	Keys      *input.KeyTable    // nil selects input.DefaultKeyTable
	Theme     render.Theme       // zero value selects render.DefaultTheme
	MaxLength int                // buffer bound, 0 for default
	Listener  CompletionListener // optional, e.g. *audio.SoundManager
}

// Engine drives one controller from one screen
type Engine struct {
	screen     tcell.Screen
	controller *app.Controller
	keys       *input.KeyTable
	renderer   *render.Renderer
	listener   CompletionListener
}

// New creates an engine bound to an initialized screen
func New(screen tcell.Screen, cfg Config) *Engine {
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	theme := cfg.Theme
	if theme == (render.Theme{}) {
		theme = render.DefaultTheme()
	}

	e := &Engine{
		screen:   screen,
		keys:     keys,
		renderer: render.NewRenderer(screen, theme),
		listener: cfg.Listener,
	}
	e.controller = app.NewController(app.Options{
		MaxLength:          cfg.MaxLength,
		OnCompletionChange: e.onCompletionChange,
	})
	return e
}

// Controller exposes the controller for inspection
func (e *Engine) Controller() *app.Controller {
	return e.controller
}

func (e *Engine) onCompletionChange(complete bool) {
	if complete {
		log.Printf("pangram complete (%d runes)", len([]rune(e.controller.DisplayedText())))
	} else {
		log.Printf("pangram lost, missing %s", string(e.controller.Missing()))
	}
	if e.listener != nil {
		e.listener.OnCompletionChange(complete)
	}
}

// Run draws the initial frame and processes events until quit, context
// cancellation, screen closure, or a controller error
func (e *Engine) Run(ctx context.Context) error {
	e.renderer.RenderFrame(e.controller)

	events := make(chan tcell.Event, eventBuffer)
	pollErr := make(chan error, 1)
	quit := make(chan struct{})
	defer close(quit)

	go e.poll(events, pollErr, quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-pollErr:
			return err

		case ev, ok := <-events:
			if !ok {
				return ErrScreenClosed
			}
			done, err := e.Step(ev)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// poll forwards terminal events until the screen is finalized or quit closes
func (e *Engine) poll(events chan<- tcell.Event, pollErr chan<- error, quit <-chan struct{}) {
	// Panic recovery for input polling goroutine, reported to the loop
	defer func() {
		if r := recover(); r != nil {
			pollErr <- fmt.Errorf("event poller crashed: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// Step applies one terminal event and redraws. It reports done once the
// controller is quitting.
func (e *Engine) Step(ev tcell.Event) (done bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.screen.Sync()

	case *tcell.EventKey:
		aev := e.keys.TranslateEvent(ev)
		if aev.Kind == app.EventNone {
			return false, nil
		}
		if err := e.controller.HandleEvent(aev); err != nil {
			log.Printf("controller error: %v", err)
			return true, err
		}
		if e.controller.IsQuitting() {
			log.Printf("quit requested")
			return true, nil
		}

	default:
		return false, nil
	}

	e.renderer.RenderFrame(e.controller)
	return false, nil
}
