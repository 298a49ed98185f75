// Contains the LOOK destination selector and the run loop that drives it.
package elev

import (
	"log/slog"

	"lookvator/src/types"
)

// ChooseDestination picks the next floor using the LOOK policy:
//   - keeps the current direction while a request lies strictly ahead, taking the nearest one
//   - otherwise reverses and takes the nearest request strictly behind
//   - returns ok=false when nothing is ahead or behind
//
// A request at the current floor is never chosen.
func ChooseDestination(floor int, dir types.Direction, pending FloorSet) (next int, newDir types.Direction, ok bool) {
	ahead, behind := pending.NearestAbove, pending.NearestBelow
	if dir == types.MD_Down {
		ahead, behind = behind, ahead
	}
	if next, ok := ahead(floor); ok {
		return next, dir, true
	}
	if next, ok := behind(floor); ok {
		return next, dir.Opposite(), true
	}
	return floor, dir, false
}

// Step serves the next destination, if any, and returns it.
func (elevator *ElevState) Step() (int, bool) {
	next, newDir, ok := ChooseDestination(elevator.Floor, elevator.Dir, elevator.Pending)
	if !ok {
		return elevator.Floor, false
	}
	if newDir != elevator.Dir {
		slog.Debug("Reversing direction", "floor", elevator.Floor, "from", elevator.Dir, "to", newDir)
		elevator.Dir = newDir
	}
	elevator.serveFloor(next)
	slog.Debug("Stopping at floor", "floor", next, "direction", elevator.Dir, "pending", elevator.Pending.Len())
	return next, true
}

// Run serves pending requests until the selector finds no destination and returns all stops made so far.
// Each step removes one pending floor, so the loop ends after at most NumFloors steps.
func (elevator *ElevState) Run() []int {
	for {
		if _, ok := elevator.Step(); !ok {
			break
		}
	}
	if left := elevator.Pending.Len(); left > 0 {
		slog.Debug("Run finished with unreachable requests", "floor", elevator.Floor, "pending", elevator.PendingFloors())
	}
	slog.Debug("Run finished", "stops", elevator.StopsMade)
	return append([]int(nil), elevator.StopsMade...)
}
