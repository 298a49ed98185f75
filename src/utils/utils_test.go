package utils

import "testing"

func TestTravelDistance(t *testing.T) {
	cases := []struct {
		start int
		stops []int
		want  int
	}{
		{0, []int{1, 2, 3, 5, 7, 8}, 8},
		{5, []int{8, 2}, 9},
		{3, nil, 0},
		{4, []int{4}, 0},
	}
	for _, c := range cases {
		if got := TravelDistance(c.start, c.stops); got != c.want {
			t.Errorf("TravelDistance(%d, %v): Expected %d, got %d", c.start, c.stops, c.want, got)
		}
	}
}

func TestFormatStops(t *testing.T) {
	if got := FormatStops([]int{8, 2}); got != "8 -> 2" {
		t.Errorf("Expected %q, got %q", "8 -> 2", got)
	}
	if got := FormatStops(nil); got != "(none)" {
		t.Errorf("Expected %q, got %q", "(none)", got)
	}
}
