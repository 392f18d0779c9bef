//go:build sdl

package platform

import (
	"fmt"
	"log/slog"

	"github.com/0918nobita/glhello/engine/core"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLWindow implements core.Window on SDL2. Events are read in PollEvents.
type SDLWindow struct {
	w           *sdl.Window
	ctx         sdl.GLContext
	onEv        func(core.Event)
	shouldClose bool
}

// NewWindow opens the SDL window.
func NewWindow(cfg core.Config) (core.Window, error) {
	return NewSDLWindow(cfg, nil)
}

func NewSDLWindow(cfg core.Config, onEvent func(core.Event)) (*SDLWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL video: %w", err)
	}

	if cfg.CoreProfile {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor)
	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	log := slog.Default().With("module", "platform")
	log.Info(fmt.Sprintf("OpenGL is ready (version %d.%d)", major, minor))

	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
	}
	if cfg.VSync {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}

	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		sdl.GLDeleteContext(ctx)
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to load OpenGL: %w", err)
	}

	return &SDLWindow{w: win, ctx: ctx, onEv: onEvent}, nil
}

func (s *SDLWindow) emit(ev core.Event) {
	if s.onEv != nil {
		s.onEv(ev)
	}
}

// PollEvents drains the SDL queue and emits the translated events.
func (s *SDLWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.shouldClose = true
			s.emit(core.EventCloseRequested{})
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			k := translateKeycode(e.Keysym.Sym)
			if k == core.KeyUnknown {
				continue
			}
			s.emit(core.EventKey{Key: k, Down: e.Type == sdl.KEYDOWN, Mods: translateKeymod(e.Keysym.Mod)})
		case *sdl.MouseMotionEvent:
			s.emit(core.EventMouseMove{X: float64(e.X), Y: float64(e.Y)})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.emit(core.EventResize{W: int(e.Data1), H: int(e.Data2)})
			}
		}
	}
}

func (s *SDLWindow) SwapBuffers()      { s.w.GLSwap() }
func (s *SDLWindow) ShouldClose() bool { return s.shouldClose }

func (s *SDLWindow) FramebufferSize() (int, int) {
	w, h := s.w.GLGetDrawableSize()
	return int(w), int(h)
}

func (s *SDLWindow) SetEventCallback(cb func(core.Event)) { s.onEv = cb }

func (s *SDLWindow) Destroy() {
	sdl.GLDeleteContext(s.ctx)
	s.w.Destroy()
	sdl.Quit()
}

func translateKeycode(k sdl.Keycode) core.Key {
	switch k {
	case sdl.K_ESCAPE:
		return core.KeyEscape
	case sdl.K_SPACE:
		return core.KeySpace
	case sdl.K_RETURN:
		return core.KeyEnter
	default:
		return core.KeyUnknown
	}
}

func translateKeymod(m uint16) core.Mod {
	var out core.Mod
	if m&sdl.KMOD_SHIFT != 0 {
		out |= core.ModShift
	}
	if m&sdl.KMOD_CTRL != 0 {
		out |= core.ModCtrl
	}
	if m&sdl.KMOD_ALT != 0 {
		out |= core.ModAlt
	}
	if m&sdl.KMOD_GUI != 0 {
		out |= core.ModSuper
	}
	return out
}
