// Package rankconfig loads the ranking core's tunable policy knobs
// from a YAML file, following the same load-defaults-then-override
// shape as the rest of the corpus's configuration layers.
package rankconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the ranking core's tunable policy, distinct from the
// per-search Criteria/Range/filter arguments passed directly to
// Search: these are deployment-wide defaults an operator sets once.
type Config struct {
	// Criteria lists the cascade order by name (e.g. "typo", "words",
	// "proximity", "attribute", "wordPosition", "exactness"); the
	// rankdemo CLI builds every search's criteria from it.
	Criteria []string `yaml:"criteria"`

	// DistinctSize is the default per-key cap for distinct-attribute
	// pagination (§4.6).
	DistinctSize int `yaml:"distinct_size"`

	// MatchDensityThreshold overrides the fixed 0.8 constant from §4.2
	// that decides which of the two match-extraction strategies to use.
	MatchDensityThreshold float64 `yaml:"match_density_threshold"`

	// FacetsExhaustive, when true, has the rankdemo CLI count every
	// facet value exactly against the candidate set; when false it
	// skips facet counting entirely. There is no sampling mode (§4.8's
	// open question, resolved in DESIGN.md: exhaustive by default).
	FacetsExhaustive bool `yaml:"facets_exhaustive"`
}

// Default returns the spec's baseline configuration.
func Default() *Config {
	return &Config{
		Criteria:              []string{"typo", "words", "proximity", "attribute", "wordPosition", "exactness"},
		DistinctSize:          1,
		MatchDensityThreshold: 0.8,
		FacetsExhaustive:      true,
	}
}

// Load reads Config from path, starting from Default() and overriding
// whichever fields the file sets.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the ranking core can't act on.
func (c *Config) Validate() error {
	if c.DistinctSize < 1 {
		return fmt.Errorf("distinct_size must be >= 1, got %d", c.DistinctSize)
	}
	if c.MatchDensityThreshold <= 0 || c.MatchDensityThreshold > 1 {
		return fmt.Errorf("match_density_threshold must be in (0, 1], got %f", c.MatchDensityThreshold)
	}
	if len(c.Criteria) == 0 {
		return fmt.Errorf("criteria must not be empty")
	}
	return nil
}
