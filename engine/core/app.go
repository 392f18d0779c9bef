package core

import (
	"log/slog"
	"time"

	"github.com/0918nobita/glhello/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error     // called once after window/renderer init
	OnEvent(e *Engine, ev Event) // input/window events, never called after quit
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Config   Config
	Log      *slog.Logger
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer abstraction.
type Renderer interface {
	Clear(c colors.Color)
	// LoadShader builds the shader program the renderer owns until Shutdown.
	LoadShader(vertexPath, fragmentPath string) (uint32, error)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize is delivered but the engine does not react to it.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// IsQuit reports whether ev ends the event loop.
func IsQuit(ev Event) bool {
	switch e := ev.(type) {
	case EventCloseRequested:
		return true
	case EventKey:
		return e.Key == KeyEscape && e.Down
	}
	return false
}

// Key/mod enums (subset).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
