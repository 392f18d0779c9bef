package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// API is the slice of OpenGL the backend calls. GoGL forwards to the
// loaded driver; tests substitute a recording fake.
type API interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32, buf []byte)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32, buf []byte)
	DeleteProgram(program uint32)

	Viewport(x, y, w, h int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetString(name uint32) string
}

// GoGL is the go-gl binding. gl.Init must have run on the current context.
type GoGL struct{}

func (GoGL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

// ShaderSource expects src to be null-terminated.
func (GoGL) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (GoGL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (GoGL) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (GoGL) GetShaderInfoLog(shader uint32, buf []byte) {
	if len(buf) == 0 {
		return
	}
	gl.GetShaderInfoLog(shader, int32(len(buf)), nil, &buf[0])
}

func (GoGL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (GoGL) CreateProgram() uint32               { return gl.CreateProgram() }
func (GoGL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (GoGL) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (GoGL) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (GoGL) GetProgramInfoLog(program uint32, buf []byte) {
	if len(buf) == 0 {
		return
	}
	gl.GetProgramInfoLog(program, int32(len(buf)), nil, &buf[0])
}

func (GoGL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GoGL) Viewport(x, y, w, h int32)      { gl.Viewport(x, y, w, h) }
func (GoGL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (GoGL) Clear(mask uint32)             { gl.Clear(mask) }

func (GoGL) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
