// Package catalog maps distribution names to factories that build a
// distribution from string parameters, the form they arrive in from the
// command line, sampling plans and HTTP queries.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"randist/domain/dist"
	"randist/internal/errors"
	"randist/ports"
)

// Sampler is a distribution drawing float64 samples. Discrete distributions
// are widened.
type Sampler interface {
	dist.Distribution
	Sample() float64
}

type discrete struct {
	dist.Discrete
}

func (d discrete) Sample() float64 {
	return float64(d.Discrete.Sample())
}

// Unwrap returns the distribution behind s
func Unwrap(s Sampler) dist.Distribution {
	if d, ok := s.(discrete); ok {
		return d.Discrete
	}
	return s
}

// Param describes one named parameter and its default
type Param struct {
	Name    string `json:"name"`
	Default string `json:"default"`
}

// Entry describes one registered distribution
type Entry struct {
	Name     string  `json:"name"`
	Discrete bool    `json:"discrete"`
	Params   []Param `json:"params"`

	build func(ports.Generator, *args) (Sampler, error)
}

var (
	entries = map[string]Entry{}
	aliases = map[string]string{
		"gumbel":  "fishertippett",
		"t":       "studentst",
		"f":       "fishersnedecor",
		"uniform": "continuousuniform",
	}
)

func register(e Entry) {
	entries[e.Name] = e
}

func fparam(name string, def float64) Param { return Param{name, formatFloat(def)} }
func iparam(name string, def int) Param     { return Param{name, strconv.Itoa(def)} }

func continuous[D dist.Continuous](d D, err error) (Sampler, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

func discreteOf[D dist.Discrete](d D, err error) (Sampler, error) {
	if err != nil {
		return nil, err
	}
	return discrete{d}, nil
}

// Names lists the registered distributions, aliases excluded
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func canonical(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "", "_", "", " ", "", "'", "").Replace(n)
	if target, ok := aliases[n]; ok {
		return target
	}
	return n
}

// Has reports whether name or one of its aliases is registered
func Has(name string) bool {
	_, ok := entries[canonical(name)]
	return ok
}

// Lookup finds the entry for name
func Lookup(name string) (Entry, error) {
	e, ok := entries[canonical(name)]
	if !ok {
		return Entry{}, errors.InvalidArgument(fmt.Sprintf("unknown distribution: %s", name), "distribution")
	}
	return e, nil
}

// New builds the named distribution drawing from gen. Missing parameters
// take their defaults; unknown or unparsable ones fail with InvalidArgument.
func New(name string, gen ports.Generator, params map[string]string) (Sampler, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	a := newArgs(params)
	s, buildErr := e.build(gen, a)
	if err := a.err(e.Name); err != nil {
		return nil, err
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return s, nil
}
