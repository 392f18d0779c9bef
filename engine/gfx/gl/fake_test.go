package glbackend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// fakeGL hands out increasing ids and records object lifetimes.
type fakeGL struct {
	next     uint32
	shaders  map[uint32]uint32 // id -> type
	programs map[uint32]bool
	deleted  map[uint32]int
	attached map[uint32][]uint32
	sources  map[uint32]string
	compiled []uint32
	linked   []uint32
	queries  []uint32

	failCompile uint32 // shader type that fails to compile
	failLink    bool
	infoLog     string

	clearColor [4]float32
	clearMask  uint32
	viewport   [4]int32
	version    string
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		next:     1,
		shaders:  map[uint32]uint32{},
		programs: map[uint32]bool{},
		deleted:  map[uint32]int{},
		attached: map[uint32][]uint32{},
		sources:  map[uint32]string{},
		version:  "3.1.0 fake",
	}
}

func (f *fakeGL) id() uint32 {
	id := f.next
	f.next++
	return id
}

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	id := f.id()
	f.shaders[id] = xtype
	return id
}
func (f *fakeGL) ShaderSource(shader uint32, src string) { f.sources[shader] = src }
func (f *fakeGL) CompileShader(shader uint32)            { f.compiled = append(f.compiled, shader) }

func (f *fakeGL) GetShaderiv(shader uint32, pname uint32) int32 {
	f.queries = append(f.queries, pname)
	if pname == gl.COMPILE_STATUS && f.shaders[shader] == f.failCompile {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) GetShaderInfoLog(shader uint32, buf []byte) { copy(buf, f.infoLog) }
func (f *fakeGL) DeleteShader(shader uint32)                 { f.deleted[shader]++ }

func (f *fakeGL) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = true
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32)          { f.attached[program] = append(f.attached[program], shader) }
func (f *fakeGL) LinkProgram(program uint32)                   { f.linked = append(f.linked, program) }
func (f *fakeGL) GetProgramInfoLog(program uint32, buf []byte) { copy(buf, f.infoLog) }
func (f *fakeGL) DeleteProgram(program uint32)                 { f.deleted[program]++ }

func (f *fakeGL) GetProgramiv(program uint32, pname uint32) int32 {
	f.queries = append(f.queries, pname)
	if pname == gl.LINK_STATUS && f.failLink {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) Viewport(x, y, w, h int32)      { f.viewport = [4]int32{x, y, w, h} }
func (f *fakeGL) ClearColor(r, g, b, a float32) { f.clearColor = [4]float32{r, g, b, a} }
func (f *fakeGL) Clear(mask uint32)             { f.clearMask = mask }

func (f *fakeGL) GetString(name uint32) string {
	if name == gl.VERSION {
		return f.version
	}
	return "fake renderer"
}

// shaderFiles writes a vertex and a fragment source into a temp dir.
func shaderFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vs := filepath.Join(dir, "vertex.glsl")
	fs := filepath.Join(dir, "fragment.glsl")
	if err := os.WriteFile(vs, []byte("#version 140\nin vec3 aPos;\nvoid main() { gl_Position = vec4(aPos, 1.0); }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fs, []byte("#version 140\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return vs, fs
}
