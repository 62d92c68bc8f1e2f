package gfx

// Recorder is a Surface that forwards every call to another Surface and
// counts calls by method name.
//
// The harness tests use it to check which primitives an operation issues
// without caring about pixels.
type Recorder struct {
	Surface
	calls map[string]int
	order []string
}

var _ Surface = (*Recorder)(nil)

// NewRecorder wraps s.
func NewRecorder(s Surface) *Recorder {
	return &Recorder{Surface: s, calls: make(map[string]int)}
}

func (r *Recorder) record(name string) {
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[name]++
	r.order = append(r.order, name)
}

// Count returns how many times the named method was called.
func (r *Recorder) Count(name string) int {
	return r.calls[name]
}

// Total returns the number of recorded calls, including text state setters.
func (r *Recorder) Total() int {
	return len(r.order)
}

// Draws returns the number of calls that put pixels on the surface:
// every primitive plus Print and Println with non-empty text.
func (r *Recorder) Draws() int {
	n := 0
	for name, c := range r.calls {
		if isDraw(name) {
			n += c
		}
	}
	return n
}

// Calls returns the method names in call order.
func (r *Recorder) Calls() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = make(map[string]int)
	r.order = r.order[:0]
}

func isDraw(name string) bool {
	switch name {
	case "Size", "SetCursor", "Cursor", "SetTextColor", "SetTextSize", "SetTextWrap", "Newline":
		return false
	}
	return true
}

func (r *Recorder) DrawPixel(x, y int16, c Color) {
	r.record("DrawPixel")
	r.Surface.DrawPixel(x, y, c)
}

func (r *Recorder) FillScreen(c Color) {
	r.record("FillScreen")
	r.Surface.FillScreen(c)
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 int16, c Color) {
	r.record("DrawLine")
	r.Surface.DrawLine(x0, y0, x1, y1, c)
}

func (r *Recorder) DrawFastHLine(x, y, w int16, c Color) {
	r.record("DrawFastHLine")
	r.Surface.DrawFastHLine(x, y, w, c)
}

func (r *Recorder) DrawFastVLine(x, y, h int16, c Color) {
	r.record("DrawFastVLine")
	r.Surface.DrawFastVLine(x, y, h, c)
}

func (r *Recorder) DrawRect(x, y, w, h int16, c Color) {
	r.record("DrawRect")
	r.Surface.DrawRect(x, y, w, h, c)
}

func (r *Recorder) FillRect(x, y, w, h int16, c Color) {
	r.record("FillRect")
	r.Surface.FillRect(x, y, w, h, c)
}

func (r *Recorder) DrawCircle(x0, y0, rad int16, c Color) {
	r.record("DrawCircle")
	r.Surface.DrawCircle(x0, y0, rad, c)
}

func (r *Recorder) FillCircle(x0, y0, rad int16, c Color) {
	r.record("FillCircle")
	r.Surface.FillCircle(x0, y0, rad, c)
}

func (r *Recorder) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	r.record("DrawTriangle")
	r.Surface.DrawTriangle(x0, y0, x1, y1, x2, y2, c)
}

func (r *Recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	r.record("FillTriangle")
	r.Surface.FillTriangle(x0, y0, x1, y1, x2, y2, c)
}

func (r *Recorder) DrawRoundRect(x, y, w, h, rad int16, c Color) {
	r.record("DrawRoundRect")
	r.Surface.DrawRoundRect(x, y, w, h, rad, c)
}

func (r *Recorder) FillRoundRect(x, y, w, h, rad int16, c Color) {
	r.record("FillRoundRect")
	r.Surface.FillRoundRect(x, y, w, h, rad, c)
}

func (r *Recorder) SetCursor(x, y int16) {
	r.record("SetCursor")
	r.Surface.SetCursor(x, y)
}

func (r *Recorder) SetTextColor(c Color) {
	r.record("SetTextColor")
	r.Surface.SetTextColor(c)
}

func (r *Recorder) SetTextSize(size uint8) {
	r.record("SetTextSize")
	r.Surface.SetTextSize(size)
}

func (r *Recorder) SetTextWrap(wrap bool) {
	r.record("SetTextWrap")
	r.Surface.SetTextWrap(wrap)
}

// Print records only non-empty text; an empty Print draws nothing.
func (r *Recorder) Print(text string) {
	if text != "" {
		r.record("Print")
	}
	r.Surface.Print(text)
}

// Println with empty text only moves the cursor and is recorded as
// "Newline", which Draws does not count.
func (r *Recorder) Println(text string) {
	if text == "" {
		r.record("Newline")
	} else {
		r.record("Println")
	}
	r.Surface.Println(text)
}
