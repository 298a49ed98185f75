package elev

import "fmt"

// AddRequest registers floor as pending. Out-of-range and duplicate floors are dropped silently.
func (elevator *ElevState) AddRequest(floor int) {
	_ = elevator.TryAddRequest(floor)
}

// TryAddRequest behaves like AddRequest but reports why a floor was dropped.
func (elevator *ElevState) TryAddRequest(floor int) error {
	if floor < 0 || floor >= elevator.NumFloors {
		return fmt.Errorf("floor %d: %w", floor, ErrFloorOutOfRange)
	}
	if !elevator.Pending.Add(floor) {
		return fmt.Errorf("floor %d: %w", floor, ErrDuplicateRequest)
	}
	return nil
}

func (elevator *ElevState) HasRequestsAbove() bool {
	_, ok := elevator.Pending.NearestAbove(elevator.Floor)
	return ok
}

func (elevator *ElevState) HasRequestsBelow() bool {
	_, ok := elevator.Pending.NearestBelow(elevator.Floor)
	return ok
}

// PendingFloors returns the pending floors in ascending order.
func (elevator *ElevState) PendingFloors() []int {
	return elevator.Pending.Floors()
}

// serveFloor moves the car to floor and records the stop. The floor leaves the pending set in the same step.
func (elevator *ElevState) serveFloor(floor int) {
	elevator.Floor = floor
	elevator.Pending.Remove(floor)
	elevator.StopsMade = append(elevator.StopsMade, floor)
}
