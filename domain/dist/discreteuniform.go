package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultDiscreteUniformAlpha = 0
	DefaultDiscreteUniformBeta  = 1
)

// DiscreteUniformParams are the inclusive bounds of the discrete uniform
// distribution
type DiscreteUniformParams struct {
	Alpha int // lower bound
	Beta  int // upper bound, inclusive
}

func (p DiscreteUniformParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p DiscreteUniformParams) invalid() []string {
	var out []string
	if p.Alpha < math.MinInt32 || p.Alpha > p.Beta {
		out = append(out, ParamAlpha)
	}
	// beta+1 must still fit the generator's exclusive upper bound
	if p.Beta >= math.MaxInt32 || p.Alpha > p.Beta {
		out = append(out, ParamBeta)
	}
	return out
}

func AreValidDiscreteUniformParams(p DiscreteUniformParams) bool {
	return p.Alpha >= math.MinInt32 && p.Beta < math.MaxInt32 && p.Alpha <= p.Beta
}

func SampleDiscreteUniform(g ports.Generator, p DiscreteUniformParams) int {
	v, err := g.NextRange(p.Alpha, p.Beta+1)
	if err != nil {
		// only reachable when a custom validator lets broken bounds through
		panic(err)
	}
	return v
}

type DiscreteUniform struct {
	model[DiscreteUniformParams, int]
}

var (
	_ Discrete               = (*DiscreteUniform)(nil)
	_ AlphaDistribution[int] = (*DiscreteUniform)(nil)
	_ BetaDistribution[int]  = (*DiscreteUniform)(nil)
)

func NewDiscreteUniform(gen ports.Generator, alpha, beta int, opts ...Option[DiscreteUniformParams, int]) (*DiscreteUniform, error) {
	m, err := newModel("discrete uniform", gen, DiscreteUniformParams{Alpha: alpha, Beta: beta}, AreValidDiscreteUniformParams, SampleDiscreteUniform, opts)
	if err != nil {
		return nil, err
	}
	return &DiscreteUniform{m}, nil
}

func (d *DiscreteUniform) Alpha() int { return d.params.Alpha }
func (d *DiscreteUniform) Beta() int  { return d.params.Beta }

func (d *DiscreteUniform) IsValidAlpha(v int) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *DiscreteUniform) IsValidBeta(v int) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *DiscreteUniform) SetAlpha(v int) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *DiscreteUniform) SetBeta(v int) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *DiscreteUniform) Minimum() float64 { return float64(d.params.Alpha) }
func (d *DiscreteUniform) Maximum() float64 { return float64(d.params.Beta) }

func (d *DiscreteUniform) Mean() (float64, error) {
	return (float64(d.params.Alpha) + float64(d.params.Beta)) / 2, nil
}

func (d *DiscreteUniform) Median() (float64, error) {
	return (float64(d.params.Alpha) + float64(d.params.Beta)) / 2, nil
}

func (d *DiscreteUniform) Variance() (float64, error) {
	n := float64(d.params.Beta) - float64(d.params.Alpha) + 1
	return (n*n - 1) / 12, nil
}

// Mode is undefined, every value is equally likely
func (d *DiscreteUniform) Mode() ([]float64, error) {
	return nil, notSupported("discrete uniform", "mode")
}
