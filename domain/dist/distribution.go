// Package dist implements distribution samplers on top of ports.Generator.
//
// Every distribution holds a generator it draws from, a set of shape
// parameters that always satisfy the distribution's validity predicate, and
// a sampling function. Both the predicate and the sampling function default
// to the package-level AreValid<Name>Params and Sample<Name> functions and
// can be replaced per instance with WithValidator and WithSampler.
//
// Distributions are not safe for concurrent use; they inherit the
// concurrency properties of their generator.
package dist

import (
	"context"
	"fmt"
	"math"

	"randist/internal/errors"
	"randist/ports"
)

// Parameter names used in errors and by the catalog
const (
	ParamAlpha   = "alpha"
	ParamBeta    = "beta"
	ParamGamma   = "gamma"
	ParamLambda  = "lambda"
	ParamMu      = "mu"
	ParamNu      = "nu"
	ParamSigma   = "sigma"
	ParamTheta   = "theta"
	ParamWeights = "weights"
)

// Number is the sample type of a distribution
type Number interface {
	~int | ~float64
}

// Distribution is the behaviour shared by continuous and discrete
// distributions
type Distribution interface {
	Generator() ports.Generator
	SetGenerator(g ports.Generator) error

	Minimum() float64
	Maximum() float64
	Mean() (float64, error)
	Median() (float64, error)
	Variance() (float64, error)
	Mode() ([]float64, error)
}

// Continuous distributions sample real values
type Continuous interface {
	Distribution
	Sample() float64
}

// Discrete distributions sample integer values
type Discrete interface {
	Distribution
	Sample() int
}

// Capability interfaces, one per named parameter.

type AlphaDistribution[T Number] interface {
	Alpha() T
	SetAlpha(v T) error
	IsValidAlpha(v T) bool
}

type BetaDistribution[T Number] interface {
	Beta() T
	SetBeta(v T) error
	IsValidBeta(v T) bool
}

type GammaDistribution interface {
	Gamma() float64
	SetGamma(v float64) error
	IsValidGamma(v float64) bool
}

type LambdaDistribution interface {
	Lambda() float64
	SetLambda(v float64) error
	IsValidLambda(v float64) bool
}

type MuDistribution interface {
	Mu() float64
	SetMu(v float64) error
	IsValidMu(v float64) bool
}

type NuDistribution interface {
	Nu() int
	SetNu(v int) error
	IsValidNu(v int) bool
}

type SigmaDistribution interface {
	Sigma() float64
	SetSigma(v float64) error
	IsValidSigma(v float64) bool
}

type ThetaDistribution interface {
	Theta() float64
	SetTheta(v float64) error
	IsValidTheta(v float64) bool
}

type WeightsDistribution interface {
	Weights() []float64
	SetWeights(w []float64) error
	IsValidWeights(w []float64) bool
}

// paramSet is implemented by every <Name>Params struct
type paramSet interface {
	// names lists every parameter of the set
	names() []string
	// invalid lists the parameters breaking the default predicate
	invalid() []string
}

// Option customizes a distribution at construction
type Option[P paramSet, T Number] func(*model[P, T])

// WithValidator replaces the validity predicate
func WithValidator[P paramSet, T Number](f func(P) bool) Option[P, T] {
	return func(m *model[P, T]) {
		m.valid = f
	}
}

// WithSampler replaces the sampling function
func WithSampler[P paramSet, T Number](f func(ports.Generator, P) T) Option[P, T] {
	return func(m *model[P, T]) {
		m.sample = f
	}
}

// model carries the generator, the parameters and the two swappable
// functions of a distribution
type model[P paramSet, T Number] struct {
	name   string
	gen    ports.Generator
	params P
	valid  func(P) bool
	sample func(ports.Generator, P) T
}

func newModel[P paramSet, T Number](
	name string,
	gen ports.Generator,
	params P,
	valid func(P) bool,
	sample func(ports.Generator, P) T,
	opts []Option[P, T],
) (model[P, T], error) {
	m := model[P, T]{
		name:   name,
		gen:    gen,
		params: params,
		valid:  valid,
		sample: sample,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if gen == nil {
		return m, errors.NullReference("generator")
	}
	if !m.valid(params) {
		blamed := params.invalid()
		if len(blamed) == 0 {
			blamed = params.names()
		}
		return m, errors.InvalidArgument(fmt.Sprintf("invalid %s parameters", name), blamed...)
	}
	return m, nil
}

// update validates next as a whole and commits it only when valid
func (m *model[P, T]) update(next P, param string) error {
	if !m.valid(next) {
		return errors.InvalidArgument(fmt.Sprintf("invalid %s %s", m.name, param), param)
	}
	m.params = next
	return nil
}

// Generator returns the generator the distribution draws from
func (m *model[P, T]) Generator() ports.Generator {
	return m.gen
}

// SetGenerator replaces the generator the distribution draws from
func (m *model[P, T]) SetGenerator(g ports.Generator) error {
	if g == nil {
		return errors.NullReference("generator")
	}
	m.gen = g
	return nil
}

// Params returns the current parameters
func (m *model[P, T]) Params() P {
	return m.params
}

// Sample draws one value
func (m *model[P, T]) Sample() T {
	return m.sample(m.gen, m.params)
}

// SampleN draws n values
func (m *model[P, T]) SampleN(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = m.sample(m.gen, m.params)
	}
	return out
}

// Samples returns an unbounded stream of samples that ends when ctx is done.
// The distribution must not be used elsewhere while the stream is being read.
func (m *model[P, T]) Samples(ctx context.Context) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		for {
			v := m.sample(m.gen, m.params)
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Shared math

const tolerance = 1e-15

func isZero(x float64) bool {
	return math.Abs(x) < tolerance
}

func square(x float64) float64 {
	return x * x
}

func notSupported(name, property string) error {
	return errors.NotSupported(fmt.Sprintf("%s of the %s distribution is undefined for the current parameters", property, name))
}

// uniformOpen draws from (0, 1), redrawing exact zeros
func uniformOpen(g ports.Generator) float64 {
	u := g.NextDouble()
	for u == 0 {
		u = g.NextDouble()
	}
	return u
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
