package graph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for an unknown traversal direction.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction selects which relationships of a node are traversed.
type Direction uint8

const (
	// Outgoing follows relationships from source to target.
	Outgoing Direction = iota
	// Incoming follows relationships from target to source.
	Incoming
	// Both follows outgoing relationships first, then incoming ones.
	Both
)

// String returns the canonical upper-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "OUTGOING"
	case Incoming:
		return "INCOMING"
	case Both:
		return "BOTH"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	return d <= Both
}

// ParseDirection parses a direction name, ignoring case.
// Accepted values are "outgoing", "out", "incoming", "in" and "both".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outgoing", "out":
		return Outgoing, nil
	case "incoming", "in":
		return Incoming, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
