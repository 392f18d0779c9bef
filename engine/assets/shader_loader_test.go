package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadShaderSourceAppendsNUL(t *testing.T) {
	path := writeFile(t, "vertex.glsl", []byte("#version 140\nvoid main() {}\n"))
	src, err := LoadShaderSource(path)
	if err != nil {
		t.Fatalf("LoadShaderSource: %v", err)
	}
	if !strings.HasSuffix(src, "}\n\x00") {
		t.Fatalf("source not null-terminated: %q", src)
	}
	if strings.Count(src, "\x00") != 1 {
		t.Fatalf("want exactly one NUL, got %q", src)
	}
}

func TestLoadShaderSourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaders", "vertex.glsl")
	_, err := LoadShaderSource(path)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}
}

func TestLoadShaderSourceRejectsBadText(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    error
	}{
		{"embedded NUL", []byte("void main() {}\x00// trailing"), ErrEmbeddedNUL},
		{"invalid UTF-8", []byte("void main() { \xff\xfe }"), ErrInvalidUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.glsl", tt.content)
			_, err := LoadShaderSource(path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name %s", err, path)
			}
		})
	}
}

func TestCStringEmpty(t *testing.T) {
	s, err := CString(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s != "\x00" {
		t.Fatalf("got %q", s)
	}
}
