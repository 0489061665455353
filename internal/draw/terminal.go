package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for smooth SSH/network
// transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Use MoveCursor, WriteString, WriteRune to accumulate,
// then Flush to write to the underlying writer.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// frame coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a 1-based frame position; offset is applied automatically.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// CenterOffset returns the 0-based column and row offsets that centre an
// area of areaW x areaH cells in a terminal of termW x termH. Terminals
// smaller than the area get no offset.
func CenterOffset(termW, termH, areaW, areaH int) (col, row int) {
	return max((termW-areaW)/2, 0), max((termH-areaH)/2, 0)
}

// Styles maps cell classes to lipgloss styles.
type Styles map[Class]lipgloss.Style

// DefaultStyles returns the colour scheme used by TerminalSurface, bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		ClassEmpty:      r.NewStyle(),
		ClassAsteroid:   r.NewStyle().Foreground(lipgloss.Color("245")),
		ClassProjectile: r.NewStyle().Foreground(lipgloss.Color("11")),
		ClassShip:       r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		ClassBanner:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// TerminalSurface draws frames with ANSI escape sequences. It repaints every
// row of the play area on each Present, so no screen clear is needed between
// frames.
type TerminalSurface struct {
	mu     sync.Mutex
	cw     *ChunkWriter
	styles Styles
	width  int
	height int
	offCol int
	offRow int
	border bool
	line   string // Last input line, redrawn after a reset
	cursor int    // Last input cursor, restored after each frame
}

// TerminalOption configures a TerminalSurface.
type TerminalOption func(*TerminalSurface)

// WithOffset shifts all output by the given 0-based column and row offsets.
func WithOffset(col, row int) TerminalOption {
	return func(s *TerminalSurface) {
		s.offCol, s.offRow = col, row
	}
}

// WithStyles replaces the colour scheme.
func WithStyles(styles Styles) TerminalOption {
	return func(s *TerminalSurface) {
		s.styles = styles
	}
}

// WithBorder draws a box around the play area when the offset leaves room for it.
func WithBorder() TerminalOption {
	return func(s *TerminalSurface) {
		s.border = true
	}
}

// NewTerminalSurface creates a surface for a play area of width x height
// writing to w. Without WithStyles, output is styled for w's colour profile.
func NewTerminalSurface(w io.Writer, width, height int, opts ...TerminalOption) *TerminalSurface {
	s := &TerminalSurface{
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.styles == nil {
		s.styles = DefaultStyles(lipgloss.NewRenderer(w))
	}
	s.cw = NewChunkWriter(w, s.offCol, s.offRow)
	return s
}

// Init clears the screen and draws the border if enabled.
func (s *TerminalSurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset()
}

// SetOffset moves the play area, e.g. after the terminal was resized, and
// clears the screen. The input line is redrawn at once; the play area on
// the next Present.
func (s *TerminalSurface) SetOffset(col, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offCol, s.offRow = col, row
	s.cw.SetOffset(col, row)
	return s.reset()
}

func (s *TerminalSurface) reset() error {
	s.cw.WriteString("\033[H\033[2J")
	if s.border {
		s.writeBorder()
	}
	s.writeInput()
	return s.cw.Flush()
}

// Close shows the cursor again and moves it below the play area.
func (s *TerminalSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cw.MoveCursor(1, InputRow(s.height)+2)
	s.cw.WriteString("\033[?25h")
	return s.cw.Flush()
}

// Present repaints the play area, grouping adjacent cells of one class into
// a single styled run. The cursor is hidden while drawing and returned to the
// input line afterwards.
func (s *TerminalSurface) Present(f *Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cw.WriteString("\033[?25l")
	var run strings.Builder
	for y := 0; y < f.Height(); y++ {
		s.cw.MoveCursor(1, y+1)
		x := 0
		for x < f.Width() {
			class := f.At(x, y).Class
			run.Reset()
			for x < f.Width() {
				cell := f.At(x, y)
				if cell.Class != class {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			s.cw.WriteString(s.style(class).Render(run.String()))
		}
	}
	s.cw.MoveCursor(s.cursor+1, InputRow(s.height)+1)
	s.cw.WriteString("\033[?25h")
	return s.cw.Flush()
}

// ShowInput redraws the input line padded to the play area width and places
// the cursor on it.
func (s *TerminalSurface) ShowInput(line string, cursor int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.line, s.cursor = line, cursor
	s.writeInput()
	return s.cw.Flush()
}

func (s *TerminalSurface) writeInput() {
	row := InputRow(s.height) + 1
	s.cw.MoveCursor(1, row)
	s.cw.WriteString(s.line)
	if pad := s.width - len([]rune(s.line)); pad > 0 {
		s.cw.WriteString(strings.Repeat(" ", pad))
	}
	s.cw.MoveCursor(s.cursor+1, row)
}

func (s *TerminalSurface) style(c Class) lipgloss.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	return s.styles[ClassEmpty]
}

// writeBorder draws a box border around the play area.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
// Coordinates are absolute, so the cursor offset is cleared while drawing.
func (s *TerminalSurface) writeBorder() {
	hasH := s.offCol >= 1
	hasV := s.offRow >= 1

	left := s.offCol
	right := s.offCol + s.width + 1
	top := s.offRow
	bottom := s.offRow + s.height + 1
	bar := strings.Repeat("─", s.width)

	s.cw.SetOffset(0, 0)
	defer s.cw.SetOffset(s.offCol, s.offRow)

	if hasV {
		if hasH {
			s.cw.WriteAt(left, top, "┌"+bar+"┐")
			s.cw.WriteAt(left, bottom, "└"+bar+"┘")
		} else {
			s.cw.WriteAt(s.offCol+1, top, bar)
			s.cw.WriteAt(s.offCol+1, bottom, bar)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = s.offRow + 1
			endRow = s.offRow + s.height + 1
		}
		for row := startRow; row < endRow; row++ {
			s.cw.WriteAt(left, row, "│")
			s.cw.WriteAt(right, row, "│")
		}
	}
}
