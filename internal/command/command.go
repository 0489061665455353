// Package command maps submitted input lines onto world operations.
package command

import (
	"github.com/tomz197/textasteroids/internal/object"
	"github.com/tomz197/textasteroids/internal/world"
)

// Command is a recognised player command.
type Command int

const (
	None        Command = iota // Unrecognised line; ignored
	Fire                       // "pew"
	ThrustUp                   // "w"
	ThrustDown                 // "s"
	ThrustLeft                 // "a"
	ThrustRight                // "d"
	TurnLeft                   // "q"
	TurnRight                  // "e"
)

var byLine = map[string]Command{
	"pew": Fire,
	"w":   ThrustUp,
	"s":   ThrustDown,
	"a":   ThrustLeft,
	"d":   ThrustRight,
	"q":   TurnLeft,
	"e":   TurnRight,
}

// String returns the command's input line.
func (c Command) String() string {
	for line, cmd := range byLine {
		if cmd == c {
			return line
		}
	}
	return "none"
}

// Parse looks up line verbatim. Matching is exact: no trimming, no case folding.
func Parse(line string) (Command, bool) {
	c, ok := byLine[line]
	return c, ok
}

// Apply performs cmd on w.
func Apply(w *world.World, cmd Command) {
	switch cmd {
	case Fire:
		w.Fire()
	case ThrustUp:
		w.Thrust(0, -1)
	case ThrustDown:
		w.Thrust(0, 1)
	case ThrustLeft:
		w.Thrust(-1, 0)
	case ThrustRight:
		w.Thrust(1, 0)
	case TurnLeft:
		w.Turn(-object.RotationStep)
	case TurnRight:
		w.Turn(object.RotationStep)
	}
}

// Execute parses line and applies it to w. Unknown lines are ignored.
// Returns the parsed command, or None.
func Execute(w *world.World, line string) Command {
	cmd, ok := Parse(line)
	if !ok {
		return None
	}
	Apply(w, cmd)
	return cmd
}
