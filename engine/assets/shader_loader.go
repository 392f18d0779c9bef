package assets

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	ErrEmbeddedNUL = errors.New("source contains a NUL byte")
	ErrInvalidUTF8 = errors.New("source is not valid UTF-8")
)

// LoadShaderSource reads a GLSL file into a null-terminated string for
// OpenGL. The file must be UTF-8 text without NUL bytes.
func LoadShaderSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	src, err := CString(b)
	if err != nil {
		return "", fmt.Errorf("shader %s: %w", path, err)
	}
	return src, nil
}

// CString validates b as text and appends the terminating NUL expected by
// gl.Strs.
func CString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return "", fmt.Errorf("%w at offset %d", ErrEmbeddedNUL, i)
	}
	return string(b) + "\x00", nil
}
