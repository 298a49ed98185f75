package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"lookvator/src/types"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario describes a single scheduling run: the building, where the car starts and which floors are requested.
type Scenario struct {
	NumFloors  int    `yaml:"num_floors"`
	StartFloor int    `yaml:"start_floor"`
	Dir        string `yaml:"direction"`
	Requests   []int  `yaml:"requests"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

func DefaultScenario() Scenario {
	return Scenario{
		NumFloors:  DefaultNumFloors,
		StartFloor: DefaultStartFloor,
		Dir:        DefaultDirection,
		Requests:   append([]int(nil), DefaultRequests...),
		LogLevel:   DefaultLogLevel.String(),
	}
}

// LoadScenario decodes a YAML scenario file on top of the defaults.
// Fields missing from the file keep their default value.
func LoadScenario(path string) (Scenario, error) {
	s := DefaultScenario()
	file, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&s); err != nil {
		return s, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return s, nil
}

// ApplyEnvFile overrides scenario fields from LOOK_* keys found in a .env file.
func ApplyEnvFile(s *Scenario, path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}
	return applyEnv(s, env)
}

func applyEnv(s *Scenario, env map[string]string) error {
	if v, ok := env["LOOK_NUM_FLOORS"]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("LOOK_NUM_FLOORS: %w", err)
		}
		s.NumFloors = n
	}
	if v, ok := env["LOOK_START_FLOOR"]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("LOOK_START_FLOOR: %w", err)
		}
		s.StartFloor = n
	}
	if v, ok := env["LOOK_DIRECTION"]; ok {
		s.Dir = v
	}
	if v, ok := env["LOOK_REQUESTS"]; ok {
		floors, err := ParseFloors(v)
		if err != nil {
			return fmt.Errorf("LOOK_REQUESTS: %w", err)
		}
		s.Requests = floors
	}
	if v, ok := env["LOOK_LOG_LEVEL"]; ok {
		s.LogLevel = v
	}
	if v, ok := env["LOOK_LOG_FILE"]; ok {
		s.LogFile = v
	}
	return nil
}

// ParseFloors splits a list of floors separated by spaces and/or commas.
func ParseFloors(list string) ([]int, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	floors := make([]int, 0, len(fields))
	for _, field := range fields {
		floor, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("floor %q: %w", field, err)
		}
		floors = append(floors, floor)
	}
	return floors, nil
}

func (s Scenario) Direction() (types.Direction, error) {
	return types.ParseDirection(s.Dir)
}

func (s Scenario) Level() (slog.Level, error) {
	var level slog.Level
	if s.LogLevel == "" {
		return DefaultLogLevel, nil
	}
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return DefaultLogLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// Validate checks the building and start position. Request floors are not
// checked here; out-of-range requests are dropped by the scheduler.
func (s Scenario) Validate() error {
	if s.NumFloors < 1 {
		return fmt.Errorf("%w: num_floors must be positive, got %d", ErrInvalidScenario, s.NumFloors)
	}
	if s.StartFloor < 0 || s.StartFloor >= s.NumFloors {
		return fmt.Errorf("%w: start_floor %d outside [0, %d)", ErrInvalidScenario, s.StartFloor, s.NumFloors)
	}
	if _, err := s.Direction(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if _, err := s.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return nil
}
