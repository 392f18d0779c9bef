package platform

// centered returns the top-left corner that centers a w×h window on a
// screen of screenW×screenH. The result is clamped to the screen origin.
func centered(screenW, screenH, w, h int) (int, int) {
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
