package colors

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ffffff", want: White},
		{in: "#000000", want: Color{0, 0, 0, 1}},
		{in: "#ff000080", want: Color{1, 0, 0, 128.0 / 255}},
		{in: "#FF00FF", want: Color{1, 0, 1, 1}},
		{in: "#102030", want: Color{16.0 / 255, 32.0 / 255, 48.0 / 255, 1}},
		{in: "ffffff", wantErr: true},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "#ff+fff", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if !got.Vec4().ApproxEqual(tt.want.Vec4()) {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexWhiteIsExact(t *testing.T) {
	got, err := ParseHex("#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := got.Vec4().Elem()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Fatalf("white = %v, %v, %v, %v", r, g, b, a)
	}
}
