//go:build !sdl

package platform

import (
	"fmt"
	"log/slog"

	"github.com/0918nobita/glhello/engine/core"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewWindow opens the default (GLFW) window.
func NewWindow(cfg core.Config) (core.Window, error) {
	return NewGLFWWindow(cfg, nil)
}

// Must be called on the thread core.Run locked, before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	for _, h := range glfwHints(cfg) {
		glfw.WindowHint(h.hint, h.value)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if mode := mon.GetVideoMode(); mode != nil {
			x, y := centered(mode.Width, mode.Height, cfg.Width, cfg.Height)
			win.SetPos(x, y)
		}
	}
	win.Show()
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to load OpenGL: %w", err)
	}
	slog.Default().With("module", "platform").Info(
		fmt.Sprintf("OpenGL is ready (requested %d.%d, got %s)", cfg.GLMajor, cfg.GLMinor, gl.GoStr(gl.GetString(gl.VERSION))))

	gw := &GLFWWindow{w: win, onEv: onEvent}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action == glfw.Press, Mods: translateMods(mods)})
	})

	return gw, nil
}

type windowHint struct {
	hint  glfw.Hint
	value int
}

// glfwHints maps the requested context onto GLFW hints. GLFW only accepts a
// profile hint from 3.2 on, so older core requests use a forward-compatible
// context, which drops the same deprecated API.
func glfwHints(cfg core.Config) []windowHint {
	hints := []windowHint{
		{glfw.Visible, glfw.False},
		{glfw.Resizable, glfw.False},
		{glfw.ContextVersionMajor, cfg.GLMajor},
		{glfw.ContextVersionMinor, cfg.GLMinor},
		{glfw.Samples, 0},
	}
	if !cfg.CoreProfile {
		return hints
	}
	hints = append(hints, windowHint{glfw.OpenGLForwardCompatible, glfw.True})
	if cfg.GLMajor > 3 || (cfg.GLMajor == 3 && cfg.GLMinor >= 2) {
		hints = append(hints, windowHint{glfw.OpenGLProfile, glfw.OpenGLCoreProfile})
	}
	return hints
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
