package dist

import (
	"randist/ports"
)

const DefaultBernoulliAlpha = 0.5

// BernoulliParams are the parameters of the Bernoulli distribution
type BernoulliParams struct {
	Alpha float64 // probability of 1
}

func (p BernoulliParams) names() []string { return []string{ParamAlpha} }

func (p BernoulliParams) invalid() []string {
	if !IsValidBernoulliAlpha(p.Alpha) {
		return []string{ParamAlpha}
	}
	return nil
}

func IsValidBernoulliAlpha(v float64) bool { return v >= 0 && v <= 1 }

func AreValidBernoulliParams(p BernoulliParams) bool {
	return IsValidBernoulliAlpha(p.Alpha)
}

func SampleBernoulli(g ports.Generator, p BernoulliParams) int {
	if g.NextDouble() < p.Alpha {
		return 1
	}
	return 0
}

type Bernoulli struct {
	model[BernoulliParams, int]
}

var (
	_ Discrete                   = (*Bernoulli)(nil)
	_ AlphaDistribution[float64] = (*Bernoulli)(nil)
)

func NewBernoulli(gen ports.Generator, alpha float64, opts ...Option[BernoulliParams, int]) (*Bernoulli, error) {
	m, err := newModel("bernoulli", gen, BernoulliParams{Alpha: alpha}, AreValidBernoulliParams, SampleBernoulli, opts)
	if err != nil {
		return nil, err
	}
	return &Bernoulli{m}, nil
}

func (d *Bernoulli) Alpha() float64 { return d.params.Alpha }

func (d *Bernoulli) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Bernoulli) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Bernoulli) Minimum() float64 { return 0 }
func (d *Bernoulli) Maximum() float64 { return 1 }

func (d *Bernoulli) Mean() (float64, error) {
	return d.params.Alpha, nil
}

func (d *Bernoulli) Median() (float64, error) {
	a := d.params.Alpha
	switch {
	case isZero(a - 0.5):
		return 0.5, nil
	case a > 0.5:
		return 1, nil
	default:
		return 0, nil
	}
}

func (d *Bernoulli) Variance() (float64, error) {
	a := d.params.Alpha
	return a * (1 - a), nil
}

func (d *Bernoulli) Mode() ([]float64, error) {
	a := d.params.Alpha
	switch {
	case isZero(a - 0.5):
		return []float64{0, 1}, nil
	case a > 0.5:
		return []float64{1}, nil
	default:
		return []float64{0}, nil
	}
}
