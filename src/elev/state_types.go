// State types are defined in elev package to make method receivers possible in orders.go and fsm.go.
package elev

import (
	"lookvator/src/types"
)

// ElevState represents the state of a single elevator car being scheduled.
// Fields are exported so the state can be deep copied for previews.
type ElevState struct {
	NumFloors int
	Floor     int
	Dir       types.Direction
	Pending   FloorSet
	StopsMade []int
}

// FloorSet is the set of pending floors, one slot per floor in [0, NumFloors).
type FloorSet []bool

func NewFloorSet(numFloors int) FloorSet {
	return make(FloorSet, numFloors)
}

func (fs FloorSet) inRange(floor int) bool {
	return floor >= 0 && floor < len(fs)
}

// Add marks floor as pending and reports whether it was newly added.
func (fs FloorSet) Add(floor int) bool {
	if !fs.inRange(floor) || fs[floor] {
		return false
	}
	fs[floor] = true
	return true
}

// Remove clears floor and reports whether it was pending.
func (fs FloorSet) Remove(floor int) bool {
	if !fs.inRange(floor) || !fs[floor] {
		return false
	}
	fs[floor] = false
	return true
}

func (fs FloorSet) Contains(floor int) bool {
	return fs.inRange(floor) && fs[floor]
}

func (fs FloorSet) Len() (n int) {
	for _, pending := range fs {
		if pending {
			n++
		}
	}
	return n
}

// NearestAbove returns the lowest pending floor strictly above floor.
func (fs FloorSet) NearestAbove(floor int) (int, bool) {
	for f := max(floor+1, 0); f < len(fs); f++ {
		if fs[f] {
			return f, true
		}
	}
	return 0, false
}

// NearestBelow returns the highest pending floor strictly below floor.
func (fs FloorSet) NearestBelow(floor int) (int, bool) {
	for f := min(floor-1, len(fs)-1); f >= 0; f-- {
		if fs[f] {
			return f, true
		}
	}
	return 0, false
}

// Floors returns the pending floors in ascending order.
func (fs FloorSet) Floors() []int {
	floors := make([]int, 0, len(fs))
	for f, pending := range fs {
		if pending {
			floors = append(floors, f)
		}
	}
	return floors
}
