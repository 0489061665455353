// Package draw turns world snapshots into character frames and puts them on
// a display surface.
package draw

// Surface is a display that shows frames and the command input line.
// Implementations serialise their own output and are safe for concurrent use.
type Surface interface {
	// Present draws a complete frame.
	Present(f *Frame) error
	// ShowInput redraws the input line below the play area with the cursor
	// at rune offset cursor.
	ShowInput(line string, cursor int) error
}

// InputRow returns the frame-relative row of the input line for a play area
// of the given height. One blank row separates it from the play area.
func InputRow(height int) int {
	return height + 1
}
