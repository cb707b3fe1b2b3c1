package station

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geky/wavestation/pkg/bubble"
)

// Config specifies every generation parameter, loadable from YAML and
// overridable by CLI flags. Unlike the teacher's dungeon.Config, Config
// has no Hash()/sub-seed derivation: Seed feeds rng.Xorshift64 directly,
// since wavestation relies on a single ordered PRNG stream rather than
// per-stage isolation (see pkg/rng's doc comment).
type Config struct {
	// Seed is the PRNG seed. Zero means "pick a random non-zero seed at
	// runtime" (handled by the CLI, not by Config itself).
	Seed uint64 `yaml:"seed"`

	// Size is the target summed bubble radius to grow the layout to.
	Size int `yaml:"size"`

	// Bubble carries the bubble-growth tuning parameters.
	Bubble bubble.Config `yaml:"bubble"`

	// Scale is how many tile-map cells a single layout unit expands to.
	Scale int `yaml:"scale"`

	// Attempts bounds how many independent tries WFC gets before giving
	// up and reporting an unresolved map.
	Attempts int `yaml:"attempts"`
}

// DefaultConfig returns the parameter defaults original_source's CLI
// ships (bubble_p=0.5, hallway_p=0.5, smallest=1, clearance=1, scale=3,
// attempts=1000).
func DefaultConfig() Config {
	return Config{
		Size: 20,
		Bubble: bubble.Config{
			BubbleP:   0.5,
			HallwayP:  0.5,
			Smallest:  1,
			Clearance: 1,
		},
		Scale:    3,
		Attempts: 1000,
	}
}

// Validate reports whether cfg describes a runnable generation.
func (cfg Config) Validate() error {
	if cfg.Size < 1 {
		return fmt.Errorf("station: Size must be >= 1, got %d", cfg.Size)
	}
	if cfg.Scale < 1 {
		return fmt.Errorf("station: Scale must be >= 1, got %d", cfg.Scale)
	}
	if cfg.Attempts < 0 {
		return fmt.Errorf("station: Attempts must be >= 0, got %d", cfg.Attempts)
	}
	if err := cfg.Bubble.Validate(); err != nil {
		return fmt.Errorf("station: %w", err)
	}
	return nil
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("station: reading config: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML config data.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("station: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ToYAML serializes cfg back to YAML, for --config round-tripping and
// debugging.
func (cfg Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(cfg)
}
