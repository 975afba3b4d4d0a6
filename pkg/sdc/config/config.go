// Package config loads matcher configuration from YAML, the way
// pkg/korel/config loaded taxonomy and stoplist configuration in the
// teacher repo this module was adapted from.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sdc/pkg/sdc/sdcerr"
)

// Representation names a bigram-profile backing for a matcher.
type Representation string

const (
	Counted        Representation = "counted"
	OrderedMultiset Representation = "ordered_multiset"
	HashedMultiset  Representation = "hashed_multiset"
)

// MatchConfig configures a matcher build: which representation backs
// it, the default SDC threshold for queries, and which raw token
// strings should always be treated as strip tokens (e.g. whitespace
// and punctuation runs) wherever they occur in a corpus.
type MatchConfig struct {
	Representation Representation `yaml:"representation"`
	Threshold      float64        `yaml:"threshold"`
	StripTokens    []string       `yaml:"strip_tokens"`
}

// DefaultMatchConfig returns sensible defaults: the counted
// representation and a 0.7 threshold, no strip tokens.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Representation: Counted,
		Threshold:      0.7,
	}
}

// LoadMatchConfig loads a MatchConfig from a YAML file at path.
func LoadMatchConfig(path string) (*MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration describes a usable matcher.
func (c MatchConfig) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return sdcerr.ErrInvalidThreshold
	}
	switch c.Representation {
	case Counted, OrderedMultiset, HashedMultiset:
	default:
		return sdcerr.ErrInvalidConfig
	}
	return nil
}

// StripSet returns the configured strip tokens as a lookup set.
func (c MatchConfig) StripSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.StripTokens))
	for _, t := range c.StripTokens {
		set[t] = struct{}{}
	}
	return set
}
