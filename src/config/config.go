package config

import "log/slog"

const (
	DefaultNumFloors  = 10
	DefaultStartFloor = 0
	DefaultDirection  = "up"
	DefaultLogLevel   = slog.LevelInfo
)

// DefaultRequests is the request batch used when no scenario is given.
var DefaultRequests = []int{2, 5, 7, 1, 8, 3}
