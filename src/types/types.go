package types

import (
	"fmt"
	"strings"
)

// Direction is the direction of travel used by the scheduler when scanning for the next stop.
type Direction int

const (
	MD_Up   Direction = 1
	MD_Down Direction = -1
)

func (d Direction) String() string {
	switch d {
	case MD_Up:
		return "up"
	case MD_Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) Valid() bool {
	return d == MD_Up || d == MD_Down
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == MD_Up {
		return MD_Down
	}
	return MD_Up
}

// ParseDirection accepts "up"/"down" (any case) and the numeric forms "1"/"-1".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "1", "+1":
		return MD_Up, nil
	case "down", "-1":
		return MD_Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
