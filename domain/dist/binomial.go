package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultBinomialAlpha = 0.5
	DefaultBinomialBeta  = 1
)

// BinomialParams are the parameters of the binomial distribution
type BinomialParams struct {
	Alpha float64 // success probability of a single trial
	Beta  int     // number of trials
}

func (p BinomialParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p BinomialParams) invalid() []string {
	var out []string
	if !IsValidBinomialAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidBinomialBeta(p.Beta) {
		out = append(out, ParamBeta)
	}
	return out
}

func IsValidBinomialAlpha(v float64) bool { return v >= 0 && v <= 1 }
func IsValidBinomialBeta(v int) bool      { return v >= 0 }

func AreValidBinomialParams(p BinomialParams) bool {
	return IsValidBinomialAlpha(p.Alpha) && IsValidBinomialBeta(p.Beta)
}

// SampleBinomial counts successes over Beta Bernoulli trials
func SampleBinomial(g ports.Generator, p BinomialParams) int {
	successes := 0
	for i := 0; i < p.Beta; i++ {
		if g.NextDouble() < p.Alpha {
			successes++
		}
	}
	return successes
}

type Binomial struct {
	model[BinomialParams, int]
}

var (
	_ Discrete                   = (*Binomial)(nil)
	_ AlphaDistribution[float64] = (*Binomial)(nil)
	_ BetaDistribution[int]      = (*Binomial)(nil)
)

func NewBinomial(gen ports.Generator, alpha float64, beta int, opts ...Option[BinomialParams, int]) (*Binomial, error) {
	m, err := newModel("binomial", gen, BinomialParams{Alpha: alpha, Beta: beta}, AreValidBinomialParams, SampleBinomial, opts)
	if err != nil {
		return nil, err
	}
	return &Binomial{m}, nil
}

func (d *Binomial) Alpha() float64 { return d.params.Alpha }
func (d *Binomial) Beta() int      { return d.params.Beta }

func (d *Binomial) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Binomial) IsValidBeta(v int) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *Binomial) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Binomial) SetBeta(v int) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *Binomial) Minimum() float64 { return 0 }
func (d *Binomial) Maximum() float64 { return float64(d.params.Beta) }

func (d *Binomial) Mean() (float64, error) {
	return d.params.Alpha * float64(d.params.Beta), nil
}

func (d *Binomial) Median() (float64, error) {
	return math.Floor(d.params.Alpha * float64(d.params.Beta)), nil
}

func (d *Binomial) Variance() (float64, error) {
	a := d.params.Alpha
	return a * (1 - a) * float64(d.params.Beta), nil
}

func (d *Binomial) Mode() ([]float64, error) {
	a, n := d.params.Alpha, float64(d.params.Beta)
	switch {
	case isZero(a):
		return []float64{0}, nil
	case isZero(a - 1):
		return []float64{n}, nil
	}
	m := (n + 1) * a
	if isZero(m - math.Floor(m)) {
		return []float64{m - 1, m}, nil
	}
	return []float64{math.Floor(m)}, nil
}
