package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

// ErrInvalidConfig is wrapped by every error caused by the content of a configuration.
var ErrInvalidConfig = errors.New("invalid config")

const (
	NeighborhoodLinear = "linear"
	NeighborhoodGrid   = "grid"
	NeighborhoodRTree  = "rtree"

	ObstacleSphere = "sphere"
	ObstacleBox    = "box"
)

type Config struct {
	// Population
	NumAgents int      `json:"numAgents"`
	Groups    []string `json:"groups,omitempty"`
	Seed      uint64   `json:"seed"`

	// World Dimensions: a cube centered on the origin
	BoundsHalfExtent float64 `json:"boundsHalfExtent"`
	SpawnSpread      float64 `json:"spawnSpread"` // fraction of the bounds agents start in

	// Performance
	Neighborhood string `json:"neighborhood"`
	Workers      int    `json:"workers"`
	TickRate     int    `json:"tickRate"`

	Window WindowConfig `json:"window"`
	Tuning TuningConfig `json:"tuning"`

	Walls     bool             `json:"walls"`
	Obstacles []ObstacleConfig `json:"obstacles,omitempty"`
}

type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type TuningConfig struct {
	AlignWeight        float64 `json:"alignWeight"`
	CohereWeight       float64 `json:"cohereWeight"`
	SeparateWeight     float64 `json:"separateWeight"`
	AvoidWeight        float64 `json:"avoidWeight"`
	KeepToCenterWeight float64 `json:"keepToCenterWeight"`
	MaxSpeedFactor     float64 `json:"maxSpeedFactor"`
	MaxForceFactor     float64 `json:"maxForceFactor"`
	PerceptionRadius   float64 `json:"perceptionRadius"`
	FieldOfView        bool    `json:"fieldOfView"`
	KeepToCenter       bool    `json:"keepToCenter"`
}

// ObstacleConfig describes one static shape. Rotation holds Euler angles in degrees.
type ObstacleConfig struct {
	Type     string     `json:"type"`
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius,omitempty"`
	Size     [3]float64 `json:"size,omitempty"`
	Rotation [3]float64 `json:"rotation,omitempty"`
}

// DefaultConfig is the scene of the original demo: 300 agents in a cube of half extent 80,
// the six walls and a few slanted boxes plus a large sphere sticking into the floor.
func DefaultConfig() *Config {
	const dim = 80.0
	return &Config{
		NumAgents:        300,
		Seed:             1,
		BoundsHalfExtent: dim,
		SpawnSpread:      0.25,
		Neighborhood:     NeighborhoodGrid,
		Workers:          4,
		TickRate:         60,
		Window:           WindowConfig{Width: 1280, Height: 800},
		Tuning: TuningConfig{
			AlignWeight:        1,
			CohereWeight:       2,
			SeparateWeight:     3,
			AvoidWeight:        3,
			KeepToCenterWeight: 1,
			MaxSpeedFactor:     2,
			MaxForceFactor:     1,
			PerceptionRadius:   7,
		},
		Walls: true,
		Obstacles: []ObstacleConfig{
			{Type: ObstacleBox, Center: [3]float64{dim - 12, -dim + 15, -dim + 12}, Size: [3]float64{2, 30, 10}, Rotation: [3]float64{0, 45, 0}},
			{Type: ObstacleSphere, Center: [3]float64{8 - dim/2, -dim - 18, -dim / 2}, Radius: 32},
			{Type: ObstacleBox, Center: [3]float64{-14, dim - 25, 0}, Size: [3]float64{2, 10, 2 * dim}, Rotation: [3]float64{0, 0, 90}},
			{Type: ObstacleBox, Center: [3]float64{0, -dim + 20, 15}, Size: [3]float64{2, 20, 2 * dim}, Rotation: [3]float64{60, 60, 0}},
			{Type: ObstacleBox, Center: [3]float64{0, dim - 15, -dim + 12}, Size: [3]float64{2, 10, 2 * dim}, Rotation: [3]float64{0, 90, 90}},
		},
	}
}

// LoadConfig loads configuration from a JSON or YAML file (by extension) and validates it
// against the schema. Fields missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	format := "json"
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	return ParseConfig(b, format)
}

// ParseConfig decodes data ("json" or "yaml"), validates it and merges it over DefaultConfig.
func ParseConfig(data []byte, format string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Normalize to JSON
	if format == "yaml" {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: failed to decode config yaml: %v", ErrInvalidConfig, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("%w: yaml config is not representable as json: %v", ErrInvalidConfig, err)
		}
	}

	// 3. Validate
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config json: %v", ErrInvalidConfig, err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: config validation failed: %v", ErrInvalidConfig, err)
	}

	// 4. Unmarshal into Struct, on top of the defaults
	cfg := DefaultConfig()
	if doc, ok := v.(map[string]any); ok && doc["obstacles"] != nil {
		// json decodes array items into the existing elements, drop the default scene first
		cfg.Obstacles = nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks what the schema cannot, it is also used for configs built in code.
func (c *Config) Validate() error {
	switch {
	case c.NumAgents < 0:
		return fmt.Errorf("%w: numAgents must be >= 0, got %d", ErrInvalidConfig, c.NumAgents)
	case !(c.BoundsHalfExtent > 0):
		return fmt.Errorf("%w: boundsHalfExtent must be > 0, got %v", ErrInvalidConfig, c.BoundsHalfExtent)
	case c.SpawnSpread < 0 || c.SpawnSpread > 1:
		return fmt.Errorf("%w: spawnSpread must be within [0,1], got %v", ErrInvalidConfig, c.SpawnSpread)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	case c.TickRate < 1:
		return fmt.Errorf("%w: tickRate must be >= 1, got %d", ErrInvalidConfig, c.TickRate)
	}
	switch c.Neighborhood {
	case NeighborhoodLinear, NeighborhoodGrid, NeighborhoodRTree:
	default:
		return fmt.Errorf("%w: unknown neighborhood %q", ErrInvalidConfig, c.Neighborhood)
	}
	for i, o := range c.Obstacles {
		switch o.Type {
		case ObstacleSphere:
			if !(o.Radius > 0) {
				return fmt.Errorf("%w: obstacle %d: sphere radius must be > 0", ErrInvalidConfig, i)
			}
		case ObstacleBox:
			if !(o.Size[0] > 0 && o.Size[1] > 0 && o.Size[2] > 0) {
				return fmt.Errorf("%w: obstacle %d: box size must be > 0 on every axis", ErrInvalidConfig, i)
			}
		default:
			return fmt.Errorf("%w: obstacle %d: unknown type %q", ErrInvalidConfig, i, o.Type)
		}
	}
	return nil
}
