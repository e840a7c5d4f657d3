package quatviz

import "image/color"

// recordedLine is one DrawLine call captured by lineRecorder.
type recordedLine struct {
	x0, y0, x1, y1 float32
	width          float32
	clr            color.RGBA
}

// lineRecorder is a LineDrawer mock for testing purposes
type lineRecorder struct {
	lines []recordedLine
}

func (r *lineRecorder) DrawLine(x0, y0, x1, y1 float32, width float32, clr color.RGBA) {
	r.lines = append(r.lines, recordedLine{x0, y0, x1, y1, width, clr})
}
