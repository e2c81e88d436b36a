package bench

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Cell kinds a scenario can exercise.
const (
	KindScalar   = "scalar"
	KindObject   = "object"
	KindUnshared = "unshared"
)

// Config describes one contention scenario.
type Config struct {
	// Kind of cell to exercise: scalar, object or unshared.
	Kind string `json:"kind"`
	// Cells is the number of independent lineages.
	Cells int `json:"cells"`
	// Workers is the number of concurrent goroutines.
	Workers int `json:"workers"`
	// Ops is the number of operations per worker.
	Ops int `json:"ops"`
	// SetRatio is the fraction of operations that write, in [0, 1].
	SetRatio float64 `json:"set_ratio"`
	// Seed for the per-worker random streams.
	Seed uint64 `json:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind:     KindScalar,
		Cells:    1,
		Workers:  4,
		Ops:      100_000,
		SetRatio: 0.2,
		Seed:     1,
	}
}

func (c *Config) Parse() error {
	switch c.Kind {
	case KindScalar, KindObject, KindUnshared:
	default:
		return fmt.Errorf("invalid kind (%s): must be scalar, object or unshared", c.Kind)
	}
	if c.Cells <= 0 {
		return fmt.Errorf("cells must be positive")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Kind == KindUnshared && c.Workers != 1 {
		return fmt.Errorf("unshared scenarios run a single worker")
	}
	if c.Ops <= 0 {
		return fmt.Errorf("ops must be positive")
	}
	if c.SetRatio < 0 || c.SetRatio > 1 {
		return fmt.Errorf("set_ratio must be within [0, 1]")
	}
	return nil
}

// ReadConfig loads a scenario from a YAML file. Unknown fields are
// rejected; absent fields keep their defaults. The result is not yet
// validated, Run takes care of that.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	wrap := struct {
		Bench *Config `json:"bench"`
	}{
		Bench: DefaultConfig(),
	}
	dec := yaml.NewDecoder(f, yaml.Strict())
	if err := dec.Decode(&wrap); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if wrap.Bench == nil {
		return nil, fmt.Errorf("parse config: missing bench section")
	}
	return wrap.Bench, nil
}
