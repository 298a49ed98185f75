package elev

import (
	"fmt"

	"lookvator/src/utils"

	"github.com/tiendc/go-deepcopy"
)

// PreviewStops returns the stops Run would make from the current state without changing it.
func PreviewStops(elevator *ElevState) []int {
	simElev := simulate(elevator)
	startStops := len(simElev.StopsMade)
	simElev.Run()
	return simElev.StopsMade[startStops:]
}

// Cost is the number of floors travelled before a new request at floor would be served.
// The request is added to a copy of the elevator, so the receiver is left untouched.
func Cost(elevator *ElevState, floor int) (int, error) {
	simElev := simulate(elevator)
	if err := simElev.TryAddRequest(floor); err != nil {
		return 0, err
	}

	start := simElev.Floor
	startStops := len(simElev.StopsMade)
	for {
		next, ok := simElev.Step()
		if !ok {
			// Only a request at the car's floor is left behind, and only when nothing moves the car away first.
			return 0, fmt.Errorf("floor %d: %w", floor, ErrNeverServed)
		}
		if next == floor {
			return utils.TravelDistance(start, simElev.StopsMade[startStops:]), nil
		}
	}
}

func simulate(elevator *ElevState) *ElevState {
	simElev := new(ElevState)
	if err := deepcopy.Copy(simElev, elevator); err != nil {
		panic(err)
	}
	return simElev
}
