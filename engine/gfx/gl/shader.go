package glbackend

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/0918nobita/glhello/engine/assets"
	"github.com/go-gl/gl/v3.3-core/gl"
)

const infoLogSize = 1024

var (
	ErrCompile         = errors.New("failed to compile shader code")
	ErrLink            = errors.New("failed to link shader code")
	ErrInfoLogEncoding = errors.New("info log is not valid UTF-8")
)

// SourceType labels the GL object an error refers to.
type SourceType int

const (
	Program SourceType = iota
	VertexShader
	FragmentShader
)

func (t SourceType) String() string {
	switch t {
	case Program:
		return "Program"
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	default:
		return fmt.Sprintf("SourceType(%d)", int(t))
	}
}

// Shader is a linked vertex/fragment program.
type Shader struct {
	ID  uint32
	api API
}

// NewShader loads both sources, compiles and links them. The intermediate
// shader objects are always deleted; only the program survives. With check
// set, compile and link failures are reported with the driver's log.
func NewShader(api API, vsPath, fsPath string, check bool) (*Shader, error) {
	vsSrc, err := assets.LoadShaderSource(vsPath)
	if err != nil {
		return nil, err
	}
	fsSrc, err := assets.LoadShaderSource(fsPath)
	if err != nil {
		return nil, err
	}
	id, err := makeProgram(api, vsSrc, fsSrc, check)
	if err != nil {
		return nil, fmt.Errorf("shader %s + %s: %w", vsPath, fsPath, err)
	}
	return &Shader{ID: id, api: api}, nil
}

// Delete releases the program. Later calls are no-ops.
func (s *Shader) Delete() {
	if s == nil || s.ID == 0 {
		return
	}
	s.api.DeleteProgram(s.ID)
	s.ID = 0
}

func makeShader(api API, src string, shaderType uint32, t SourceType, check bool) (uint32, error) {
	sh := api.CreateShader(shaderType)
	api.ShaderSource(sh, src)
	api.CompileShader(sh)
	if check {
		if err := checkCompileErrors(api, sh, t); err != nil {
			api.DeleteShader(sh)
			return 0, err
		}
	}
	return sh, nil
}

func makeProgram(api API, vsSrc, fsSrc string, check bool) (uint32, error) {
	vs, err := makeShader(api, vsSrc, gl.VERTEX_SHADER, VertexShader, check)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(api, fsSrc, gl.FRAGMENT_SHADER, FragmentShader, check)
	if err != nil {
		api.DeleteShader(vs)
		return 0, err
	}
	prog := api.CreateProgram()
	api.AttachShader(prog, vs)
	api.AttachShader(prog, fs)
	api.LinkProgram(prog)

	if check {
		err = checkCompileErrors(api, prog, Program)
	}
	api.DeleteShader(vs)
	api.DeleteShader(fs)

	if err != nil {
		api.DeleteProgram(prog)
		return 0, err
	}
	return prog, nil
}

// checkCompileErrors queries LINK_STATUS for programs and COMPILE_STATUS
// for shader stages.
func checkCompileErrors(api API, id uint32, t SourceType) error {
	buf := make([]byte, infoLogSize)
	if t == Program {
		if api.GetProgramiv(id, gl.LINK_STATUS) == gl.TRUE {
			return nil
		}
		api.GetProgramInfoLog(id, buf)
		msg, err := infoLog(buf)
		if err != nil {
			return fmt.Errorf("failed to convert link log from buffer: %w", err)
		}
		return fmt.Errorf("%w: type=%s, log=%s", ErrLink, t, msg)
	}

	if api.GetShaderiv(id, gl.COMPILE_STATUS) == gl.TRUE {
		return nil
	}
	api.GetShaderInfoLog(id, buf)
	msg, err := infoLog(buf)
	if err != nil {
		return fmt.Errorf("failed to convert compilation log from buffer: %w", err)
	}
	return fmt.Errorf("%w: type=%s, log=%s", ErrCompile, t, msg)
}

// infoLog cuts buf at the driver's terminating NUL and checks the text.
func infoLog(buf []byte) (string, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	if !utf8.Valid(buf) {
		return "", ErrInfoLogEncoding
	}
	return string(bytes.TrimSpace(buf)), nil
}
