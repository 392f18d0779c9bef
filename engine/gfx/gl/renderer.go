package glbackend

import (
	"fmt"
	"log/slog"

	"github.com/0918nobita/glhello/engine/colors"
	"github.com/0918nobita/glhello/engine/core"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type RendererGL struct {
	api    API
	win    core.Window
	cfg    core.Config
	shader *Shader
	log    *slog.Logger
}

// NewRendererGL binds the renderer to the context current on win.
func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	return NewRendererWithAPI(GoGL{}, win, cfg)
}

func NewRendererWithAPI(api API, win core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{
		api: api,
		win: win,
		cfg: cfg,
		log: slog.Default().With("module", "gl"),
	}
	version := api.GetString(gl.VERSION)
	if version == "" {
		return nil, fmt.Errorf("no current OpenGL context")
	}
	r.log.Info(fmt.Sprintf("OpenGL %s / %s", version, api.GetString(gl.RENDERER)))

	w, h := win.FramebufferSize()
	api.Viewport(0, 0, int32(w), int32(h))
	return r, nil
}

// LoadShader builds the program from the two files. A previously loaded
// program is released first.
func (r *RendererGL) LoadShader(vertexPath, fragmentPath string) (uint32, error) {
	sh, err := NewShader(r.api, vertexPath, fragmentPath, r.cfg.CheckShaderErrors)
	if err != nil {
		return 0, err
	}
	r.shader.Delete()
	r.shader = sh
	r.log.Debug(fmt.Sprintf("linked program %d from %s and %s", sh.ID, vertexPath, fragmentPath))
	return sh.ID, nil
}

// Shader returns the current program, nil before LoadShader.
func (r *RendererGL) Shader() *Shader { return r.shader }

func (r *RendererGL) Shutdown() {
	r.shader.Delete()
}

func (r *RendererGL) Clear(c colors.Color) {
	r.api.ClearColor(c.Vec4().Elem())
	r.api.Clear(gl.COLOR_BUFFER_BIT)
}
