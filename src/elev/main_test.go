package elev

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"lookvator/src/types"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(NewLogHandler(io.Discard, slog.LevelError+1)))
	os.Exit(m.Run())
}

// newElevator creates an elevator at floor heading dir with the given requests registered.
func newElevator(t *testing.T, numFloors, floor int, dir types.Direction, requests ...int) *ElevState {
	t.Helper()
	elevator, err := NewElevState(numFloors, floor, dir)
	if err != nil {
		t.Fatalf("NewElevState(%d, %d, %v): %v", numFloors, floor, dir, err)
	}
	for _, r := range requests {
		elevator.AddRequest(r)
	}
	return elevator
}
