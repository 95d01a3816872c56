package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultCauchyAlpha = 1.0
	DefaultCauchyGamma = 1.0
)

// CauchyParams are the parameters of the Cauchy distribution
type CauchyParams struct {
	Alpha float64 // location
	Gamma float64 // scale
}

func (p CauchyParams) names() []string { return []string{ParamAlpha, ParamGamma} }

func (p CauchyParams) invalid() []string {
	var out []string
	if !IsValidCauchyAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidCauchyGamma(p.Gamma) {
		out = append(out, ParamGamma)
	}
	return out
}

func IsValidCauchyAlpha(v float64) bool { return !math.IsNaN(v) }
func IsValidCauchyGamma(v float64) bool { return v > 0 }

func AreValidCauchyParams(p CauchyParams) bool {
	return IsValidCauchyAlpha(p.Alpha) && IsValidCauchyGamma(p.Gamma)
}

func SampleCauchy(g ports.Generator, p CauchyParams) float64 {
	return p.Alpha + p.Gamma*math.Tan(math.Pi*(g.NextDouble()-0.5))
}

// Cauchy has no mean and no variance
type Cauchy struct {
	model[CauchyParams, float64]
}

var (
	_ Continuous                 = (*Cauchy)(nil)
	_ AlphaDistribution[float64] = (*Cauchy)(nil)
	_ GammaDistribution          = (*Cauchy)(nil)
)

func NewCauchy(gen ports.Generator, alpha, gamma float64, opts ...Option[CauchyParams, float64]) (*Cauchy, error) {
	m, err := newModel("cauchy", gen, CauchyParams{Alpha: alpha, Gamma: gamma}, AreValidCauchyParams, SampleCauchy, opts)
	if err != nil {
		return nil, err
	}
	return &Cauchy{m}, nil
}

func (d *Cauchy) Alpha() float64 { return d.params.Alpha }
func (d *Cauchy) Gamma() float64 { return d.params.Gamma }

func (d *Cauchy) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Cauchy) IsValidGamma(v float64) bool {
	p := d.params
	p.Gamma = v
	return d.valid(p)
}

func (d *Cauchy) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Cauchy) SetGamma(v float64) error {
	p := d.params
	p.Gamma = v
	return d.update(p, ParamGamma)
}

func (d *Cauchy) Minimum() float64 { return math.Inf(-1) }
func (d *Cauchy) Maximum() float64 { return math.Inf(1) }

func (d *Cauchy) Mean() (float64, error)     { return 0, notSupported("cauchy", "mean") }
func (d *Cauchy) Median() (float64, error)   { return d.params.Alpha, nil }
func (d *Cauchy) Variance() (float64, error) { return 0, notSupported("cauchy", "variance") }
func (d *Cauchy) Mode() ([]float64, error)   { return []float64{d.params.Alpha}, nil }
