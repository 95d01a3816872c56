package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultLognormalMu    = 0.0
	DefaultLognormalSigma = 1.0
)

// LognormalParams are the parameters of the underlying normal distribution
type LognormalParams struct {
	Mu    float64
	Sigma float64
}

func (p LognormalParams) names() []string { return []string{ParamMu, ParamSigma} }

func (p LognormalParams) invalid() []string {
	var out []string
	if !IsValidLognormalMu(p.Mu) {
		out = append(out, ParamMu)
	}
	if !IsValidLognormalSigma(p.Sigma) {
		out = append(out, ParamSigma)
	}
	return out
}

func IsValidLognormalMu(v float64) bool    { return !math.IsNaN(v) }
func IsValidLognormalSigma(v float64) bool { return v >= 0 }

func AreValidLognormalParams(p LognormalParams) bool {
	return IsValidLognormalMu(p.Mu) && IsValidLognormalSigma(p.Sigma)
}

func SampleLognormal(g ports.Generator, p LognormalParams) float64 {
	return math.Exp(standardNormal(g)*p.Sigma + p.Mu)
}

type Lognormal struct {
	model[LognormalParams, float64]
}

var (
	_ Continuous        = (*Lognormal)(nil)
	_ MuDistribution    = (*Lognormal)(nil)
	_ SigmaDistribution = (*Lognormal)(nil)
)

func NewLognormal(gen ports.Generator, mu, sigma float64, opts ...Option[LognormalParams, float64]) (*Lognormal, error) {
	m, err := newModel("lognormal", gen, LognormalParams{Mu: mu, Sigma: sigma}, AreValidLognormalParams, SampleLognormal, opts)
	if err != nil {
		return nil, err
	}
	return &Lognormal{m}, nil
}

func (d *Lognormal) Mu() float64    { return d.params.Mu }
func (d *Lognormal) Sigma() float64 { return d.params.Sigma }

func (d *Lognormal) IsValidMu(v float64) bool {
	p := d.params
	p.Mu = v
	return d.valid(p)
}

func (d *Lognormal) IsValidSigma(v float64) bool {
	p := d.params
	p.Sigma = v
	return d.valid(p)
}

func (d *Lognormal) SetMu(v float64) error {
	p := d.params
	p.Mu = v
	return d.update(p, ParamMu)
}

func (d *Lognormal) SetSigma(v float64) error {
	p := d.params
	p.Sigma = v
	return d.update(p, ParamSigma)
}

func (d *Lognormal) Minimum() float64 { return 0 }
func (d *Lognormal) Maximum() float64 { return math.Inf(1) }

func (d *Lognormal) Mean() (float64, error) {
	return math.Exp(d.params.Mu + square(d.params.Sigma)/2), nil
}

func (d *Lognormal) Median() (float64, error) {
	return math.Exp(d.params.Mu), nil
}

func (d *Lognormal) Variance() (float64, error) {
	s2 := square(d.params.Sigma)
	return (math.Exp(s2) - 1) * math.Exp(2*d.params.Mu+s2), nil
}

func (d *Lognormal) Mode() ([]float64, error) {
	return []float64{math.Exp(d.params.Mu - square(d.params.Sigma))}, nil
}
