// Package plan loads sampling plans: YAML files listing named sample sets
// to draw and export together.
package plan

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"randist/adapters/generators"
	"randist/internal/catalog"
	"randist/internal/errors"
)

// Plan is a set of named sample sets sharing a default engine and seed
type Plan struct {
	Engine  string  `yaml:"engine"`
	Seed    *uint32 `yaml:"seed"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one sample set. Engine and Seed fall back to the plan's.
type Entry struct {
	Name         string            `yaml:"name"`
	Engine       string            `yaml:"engine"`
	Seed         *uint32           `yaml:"seed"`
	Distribution string            `yaml:"distribution"`
	Params       map[string]string `yaml:"params"`
	Count        int               `yaml:"count"`
}

// Load reads and validates the plan at path
func Load(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read plan %s", path)
	}
	return Parse(raw)
}

// Parse decodes and validates a plan
func Parse(raw []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, errors.InvalidArgument(fmt.Sprintf("malformed plan: %v", err), "plan")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks every entry names a known engine and distribution, a
// positive count and a unique name
func (p *Plan) Validate() error {
	if len(p.Entries) == 0 {
		return errors.InvalidArgument("plan has no entries", "entries")
	}
	if !generators.Has(p.Engine) {
		return errors.InvalidArgument("unknown generator engine "+p.Engine, "engine")
	}

	seen := make(map[string]bool, len(p.Entries))
	for i, e := range p.Entries {
		name := strings.TrimSpace(e.Name)
		switch {
		case name == "":
			return errors.InvalidArgument(fmt.Sprintf("entry %d has no name", i+1), "name")
		case seen[name]:
			return errors.InvalidArgument("duplicate entry name "+name, "name")
		case !generators.Has(e.Engine):
			return errors.InvalidArgument(fmt.Sprintf("entry %s: unknown generator engine %s", name, e.Engine), "engine")
		case !catalog.Has(e.Distribution):
			return errors.InvalidArgument(fmt.Sprintf("entry %s: unknown distribution %s", name, e.Distribution), "distribution")
		case e.Count <= 0:
			return errors.InvalidArgument(fmt.Sprintf("entry %s: count must be positive", name), "count")
		}
		seen[name] = true
	}
	return nil
}

// EngineOf returns the engine entry e draws from
func (p *Plan) EngineOf(e Entry) string {
	if strings.TrimSpace(e.Engine) != "" {
		return e.Engine
	}
	return p.Engine
}

// SeedOf returns the seed of entry e, falling back to the plan seed and then
// to fallback
func (p *Plan) SeedOf(e Entry, fallback uint32) uint32 {
	switch {
	case e.Seed != nil:
		return *e.Seed
	case p.Seed != nil:
		return *p.Seed
	default:
		return fallback
	}
}
