package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0918nobita/glhello/engine/core"
	glbackend "github.com/0918nobita/glhello/engine/gfx/gl"
	enginelog "github.com/0918nobita/glhello/engine/log"
	"github.com/0918nobita/glhello/engine/platform"
)

const configFile = "glhello.yaml"

// App builds the shader program on start and otherwise only waits for quit.
type App struct {
	program uint32
}

func (a *App) OnStart(e *core.Engine) error {
	id, err := e.Renderer.LoadShader(e.Config.VertexShaderPath, e.Config.FragmentShaderPath)
	if err != nil {
		return err
	}
	a.program = id
	return nil
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down {
		e.Log.Debug(fmt.Sprintf("%s key down", k.Key))
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	e.Log.Debug(fmt.Sprintf("releasing program %d after %s", a.program, e.Uptime()))
}

func main() {
	slog.SetDefault(slog.New(enginelog.NewHandler(os.Stderr, true, nil)))

	cfg, err := core.LoadConfig(configFile)
	if err != nil {
		fail(err)
	}
	level, err := cfg.Level()
	if err != nil {
		fail(err)
	}
	slog.SetDefault(slog.New(enginelog.NewHandler(os.Stderr, true, &slog.HandlerOptions{Level: level})))

	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&App{}, cfg, platform.NewWindow, newRenderer); err != nil {
		fail(err)
	}
}

func fail(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
