package dist

import (
	"math"

	"randist/ports"
)

const DefaultRayleighSigma = 1.0

// RayleighParams are the parameters of the Rayleigh distribution
type RayleighParams struct {
	Sigma float64 // scale
}

func (p RayleighParams) names() []string { return []string{ParamSigma} }

func (p RayleighParams) invalid() []string {
	if !IsValidRayleighSigma(p.Sigma) {
		return []string{ParamSigma}
	}
	return nil
}

func IsValidRayleighSigma(v float64) bool { return v > 0 }

func AreValidRayleighParams(p RayleighParams) bool {
	return IsValidRayleighSigma(p.Sigma)
}

// SampleRayleigh is the norm of two independent N(0, sigma) draws
func SampleRayleigh(g ports.Generator, p RayleighParams) float64 {
	np := NormalParams{Mu: 0, Sigma: p.Sigma}
	x := SampleNormal(g, np)
	y := SampleNormal(g, np)
	return math.Sqrt(x*x + y*y)
}

type Rayleigh struct {
	model[RayleighParams, float64]
}

var (
	_ Continuous        = (*Rayleigh)(nil)
	_ SigmaDistribution = (*Rayleigh)(nil)
)

func NewRayleigh(gen ports.Generator, sigma float64, opts ...Option[RayleighParams, float64]) (*Rayleigh, error) {
	m, err := newModel("rayleigh", gen, RayleighParams{Sigma: sigma}, AreValidRayleighParams, SampleRayleigh, opts)
	if err != nil {
		return nil, err
	}
	return &Rayleigh{m}, nil
}

func (d *Rayleigh) Sigma() float64 { return d.params.Sigma }

func (d *Rayleigh) IsValidSigma(v float64) bool {
	p := d.params
	p.Sigma = v
	return d.valid(p)
}

func (d *Rayleigh) SetSigma(v float64) error {
	p := d.params
	p.Sigma = v
	return d.update(p, ParamSigma)
}

func (d *Rayleigh) Minimum() float64 { return 0 }
func (d *Rayleigh) Maximum() float64 { return math.Inf(1) }

func (d *Rayleigh) Mean() (float64, error) {
	return d.params.Sigma * math.Sqrt(math.Pi/2), nil
}

func (d *Rayleigh) Median() (float64, error) {
	return d.params.Sigma * math.Sqrt(math.Log(4)), nil
}

func (d *Rayleigh) Variance() (float64, error) {
	return (2 - math.Pi/2) * square(d.params.Sigma), nil
}

func (d *Rayleigh) Mode() ([]float64, error) {
	return []float64{d.params.Sigma}, nil
}
