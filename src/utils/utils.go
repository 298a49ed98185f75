package utils

import (
	"strconv"
	"strings"
)

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TravelDistance is the number of floors travelled when visiting stops in order, starting from start.
func TravelDistance(start int, stops []int) int {
	distance := 0
	current := start
	for _, stop := range stops {
		distance += Abs(stop - current)
		current = stop
	}
	return distance
}

// FormatStops renders a stop sequence as "1 -> 2 -> 3".
func FormatStops(stops []int) string {
	if len(stops) == 0 {
		return "(none)"
	}
	parts := make([]string, len(stops))
	for i, stop := range stops {
		parts[i] = strconv.Itoa(stop)
	}
	return strings.Join(parts, " -> ")
}
