package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a normalized RGBA quadruple.
type Color mgl32.Vec4

var White = Color{1, 1, 1, 1}

// ParseHex accepts "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return Color{}, fmt.Errorf("%q is not a #rrggbb or #rrggbbaa colour", s)
	}
	raw := mgl32.Vec4{0, 0, 0, 255}
	for i := 0; i < (len(s)-1)/2; i++ {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%q is not a valid hex colour: %w", s, err)
		}
		raw[i] = float32(v)
	}
	return Color(raw.Mul(1.0 / 255)), nil
}

func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4(c) }
