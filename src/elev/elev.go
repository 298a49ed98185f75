package elev

import (
	"errors"
	"fmt"
	"log/slog"

	"lookvator/src/types"
)

var (
	ErrInvalidFloorCount = errors.New("number of floors must be positive")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrFloorOutOfRange   = errors.New("floor out of range")
	ErrDuplicateRequest  = errors.New("floor already requested")
	ErrNeverServed       = errors.New("request at current floor is never served")
)

// InitElevState creates an elevator at floor 0 moving up with no pending requests.
func InitElevState(numFloors int) (*ElevState, error) {
	return NewElevState(numFloors, 0, types.MD_Up)
}

// NewElevState creates an elevator at startFloor heading in dir with no pending requests.
func NewElevState(numFloors, startFloor int, dir types.Direction) (*ElevState, error) {
	if numFloors < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFloorCount, numFloors)
	}
	if startFloor < 0 || startFloor >= numFloors {
		return nil, fmt.Errorf("start floor %d: %w", startFloor, ErrFloorOutOfRange)
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	elevator := &ElevState{
		NumFloors: numFloors,
		Floor:     startFloor,
		Dir:       dir,
		Pending:   NewFloorSet(numFloors),
		StopsMade: []int{},
	}
	slog.Debug("Elevator initialized", "numFloors", numFloors, "floor", startFloor, "direction", dir)
	return elevator, nil
}
