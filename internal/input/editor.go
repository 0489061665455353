package input

// LineEditor is a single-line text buffer with a cursor, bounded to a
// maximum number of runes.
type LineEditor struct {
	buf    []rune
	cursor int
	limit  int
}

// NewLineEditor creates an editor for an input row width cells wide.
// One cell is kept free for the cursor, so at most width-1 runes fit.
func NewLineEditor(width int) *LineEditor {
	return &LineEditor{limit: max(width-1, 0)}
}

// Text returns the current line.
func (e *LineEditor) Text() string { return string(e.buf) }

// Cursor returns the cursor position in runes, in [0, len].
func (e *LineEditor) Cursor() int { return e.cursor }

// Len returns the number of runes in the line.
func (e *LineEditor) Len() int { return len(e.buf) }

// Insert adds r at the cursor. Returns false if the line is full.
func (e *LineEditor) Insert(r rune) bool {
	if len(e.buf) >= e.limit {
		return false
	}
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
	return true
}

// Backspace removes the rune before the cursor.
func (e *LineEditor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
}

// Delete removes the rune at the cursor.
func (e *LineEditor) Delete() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
}

// Left moves the cursor one rune left.
func (e *LineEditor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// Right moves the cursor one rune right.
func (e *LineEditor) Right() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

// Home moves the cursor to the start of the line.
func (e *LineEditor) Home() { e.cursor = 0 }

// End moves the cursor past the last rune.
func (e *LineEditor) End() { e.cursor = len(e.buf) }

// Submit returns the line and clears the editor.
func (e *LineEditor) Submit() string {
	line := string(e.buf)
	e.buf = e.buf[:0]
	e.cursor = 0
	return line
}

// Handle applies an editing key. Enter and Interrupt are not editing keys
// and are left to the caller; Handle reports false for them.
func (e *LineEditor) Handle(k Key) bool {
	switch k.Kind {
	case KeyRune:
		e.Insert(k.Rune)
	case KeyBackspace:
		e.Backspace()
	case KeyDelete:
		e.Delete()
	case KeyLeft:
		e.Left()
	case KeyRight:
		e.Right()
	case KeyHome:
		e.Home()
	case KeyEnd:
		e.End()
	default:
		return false
	}
	return true
}
