package core

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

var sleep = time.Sleep

// Run wires the platform window + renderer and executes the main loop.
// It returns once the window is closed or Escape is pressed.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread. Window constructors
	// rely on this lock.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := slog.Default().With("module", "core")

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}
	// the renderer releases GL objects before the window drops the context
	defer rend.Shutdown()

	var queue []Event
	win.SetEventCallback(func(ev Event) { queue = append(queue, ev) })

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Config:   cfg,
		Log:      logger,
		start:    time.Now(),
	}

	if err := app.OnStart(eng); err != nil {
		return fmt.Errorf("could not start app: %w", err)
	}
	defer app.OnShutdown(eng)

	bg := cfg.ClearColor()
	rend.Clear(bg)
	win.SwapBuffers()

	interval := cfg.FrameInterval()
	frames := 0
	for {
		win.PollEvents()
		if win.ShouldClose() {
			queue = append(queue, EventCloseRequested{})
		}
		if ev, quit := dispatch(eng, app, queue); quit {
			logger.Info(fmt.Sprintf("quit on %s after %d frames", describe(ev), frames))
			break
		}
		queue = queue[:0]

		// the back buffer is undefined after a swap
		rend.Clear(bg)
		win.SwapBuffers()
		frames++
		sleep(interval)
	}

	logger.Debug(fmt.Sprintf("engine exit after %s", eng.Uptime().Round(time.Millisecond)))
	return nil
}

// dispatch hands events to the app in order and stops at the first quit
// event; the events behind it are dropped.
func dispatch(eng *Engine, app App, events []Event) (Event, bool) {
	for _, ev := range events {
		if IsQuit(ev) {
			return ev, true
		}
		app.OnEvent(eng, ev)
	}
	return nil, false
}

func describe(ev Event) string {
	switch e := ev.(type) {
	case EventCloseRequested:
		return "close request"
	case EventKey:
		return e.Key.String() + " key"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
