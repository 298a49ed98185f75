package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lookvator/src/config"
	"lookvator/src/elev"
	"lookvator/src/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML scenario file")
	envPath := flag.String("env", "", ".env file with LOOK_* overrides")
	numFloors := flag.Int("floors", config.DefaultNumFloors, "Number of floors in the building")
	startFloor := flag.Int("start", config.DefaultStartFloor, "Floor the elevator starts at")
	dir := flag.String("dir", config.DefaultDirection, "Initial direction (up or down)")
	requests := flag.String("requests", "", "Requested floors, separated by spaces or commas")
	logLevel := flag.String("log-level", config.DefaultLogLevel.String(), "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	flag.Parse()

	scenario := config.DefaultScenario()
	var err error
	if *configPath != "" {
		if scenario, err = config.LoadScenario(*configPath); err != nil {
			fail(err)
		}
	}
	if *envPath != "" {
		if err := config.ApplyEnvFile(&scenario, *envPath); err != nil {
			fail(err)
		}
	}

	// Flags given on the command line win over file values.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			scenario.NumFloors = *numFloors
		case "start":
			scenario.StartFloor = *startFloor
		case "dir":
			scenario.Dir = *dir
		case "requests":
			floors, err := config.ParseFloors(*requests)
			if err != nil {
				flagErr = fmt.Errorf("-requests: %w", err)
			}
			scenario.Requests = floors
		case "log-level":
			scenario.LogLevel = *logLevel
		case "log-file":
			scenario.LogFile = *logFile
		}
	})
	if flagErr != nil {
		fail(flagErr)
	}
	if err := scenario.Validate(); err != nil {
		fail(err)
	}

	level, _ := scenario.Level()
	if err := elev.InitLogger(level, scenario.LogFile); err != nil {
		fail(err)
	}
	direction, _ := scenario.Direction()

	elevator, err := elev.NewElevState(scenario.NumFloors, scenario.StartFloor, direction)
	if err != nil {
		fail(err)
	}
	for _, floor := range scenario.Requests {
		if err := elevator.TryAddRequest(floor); err != nil {
			slog.Warn("Request dropped", "floor", floor, "reason", err)
		}
	}
	slog.Info("Scheduling requests",
		"numFloors", scenario.NumFloors,
		"start", scenario.StartFloor,
		"direction", direction,
		"requests", scenario.Requests)

	stops := elevator.Run()
	distance := utils.TravelDistance(scenario.StartFloor, stops)
	slog.Info("Run finished", "stops", stops, "floorsTravelled", distance)
	if left := elevator.PendingFloors(); len(left) > 0 {
		slog.Warn("Requests at the starting floor were never served", "pending", left)
	}

	fmt.Println("Elevator starts at floor", scenario.StartFloor)
	fmt.Println("Stops made in order:", utils.FormatStops(stops))
	fmt.Println("Total floors traveled:", distance)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "lookvator:", err)
	os.Exit(1)
}
