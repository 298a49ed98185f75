package elev

import (
	"errors"
	"slices"
	"testing"

	"lookvator/src/types"
)

func TestPreviewStopsDoesNotMutate(t *testing.T) {
	elevator := newElevator(t, 10, 5, types.MD_Up, 2, 8)
	preview := PreviewStops(elevator)
	if !slices.Equal(preview, []int{8, 2}) {
		t.Errorf("Expected preview [8 2], got %v", preview)
	}
	if elevator.Floor != 5 || elevator.Dir != types.MD_Up || len(elevator.StopsMade) != 0 {
		t.Errorf("Preview changed the elevator: %+v", elevator)
	}
	if got := elevator.PendingFloors(); !slices.Equal(got, []int{2, 8}) {
		t.Errorf("Preview changed pending requests: %v", got)
	}
	if stops := elevator.Run(); !slices.Equal(stops, preview) {
		t.Errorf("Expected Run to match preview %v, got %v", preview, stops)
	}
}

func TestPreviewStopsAfterPartialRun(t *testing.T) {
	elevator := newElevator(t, 10, 0, types.MD_Up, 2, 6)
	elevator.Step()
	elevator.AddRequest(1)
	if preview := PreviewStops(elevator); !slices.Equal(preview, []int{6, 1}) {
		t.Errorf("Expected only the remaining stops [6 1], got %v", preview)
	}
}

func TestCost(t *testing.T) {
	elevator := newElevator(t, 10, 5, types.MD_Up, 2, 8)
	cases := []struct {
		floor int
		want  int
	}{
		{7, 2},  // on the way up
		{9, 4},  // past the last request up
		{3, 8},  // up to 8, then down to 3
		{0, 11}, // up to 8, down past 2 to 0
	}
	for _, c := range cases {
		got, err := Cost(elevator, c.floor)
		if err != nil {
			t.Errorf("Cost(%d): unexpected error %v", c.floor, err)
			continue
		}
		if got != c.want {
			t.Errorf("Cost(%d): Expected %d, got %d", c.floor, c.want, got)
		}
	}
	if got := elevator.PendingFloors(); !slices.Equal(got, []int{2, 8}) {
		t.Errorf("Cost changed pending requests: %v", got)
	}
}

func TestCostErrors(t *testing.T) {
	elevator := newElevator(t, 10, 5, types.MD_Up, 2)
	if _, err := Cost(elevator, 10); !errors.Is(err, ErrFloorOutOfRange) {
		t.Errorf("Expected ErrFloorOutOfRange, got %v", err)
	}
	if _, err := Cost(elevator, 2); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("Expected ErrDuplicateRequest, got %v", err)
	}
	// Served on the way back from 2.
	if got, err := Cost(elevator, 5); err != nil || got != 6 {
		t.Errorf("Cost(5): Expected 6, got %d (%v)", got, err)
	}

	idle := newElevator(t, 10, 5, types.MD_Up)
	if _, err := Cost(idle, 5); !errors.Is(err, ErrNeverServed) {
		t.Errorf("Expected ErrNeverServed, got %v", err)
	}
}
