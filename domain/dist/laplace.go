package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultLaplaceAlpha = 1.0
	DefaultLaplaceMu    = 0.0
)

// LaplaceParams are the parameters of the Laplace distribution
type LaplaceParams struct {
	Alpha float64 // scale
	Mu    float64 // location
}

func (p LaplaceParams) names() []string { return []string{ParamAlpha, ParamMu} }

func (p LaplaceParams) invalid() []string {
	var out []string
	if !IsValidLaplaceAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidLaplaceMu(p.Mu) {
		out = append(out, ParamMu)
	}
	return out
}

func IsValidLaplaceAlpha(v float64) bool { return v > 0 }
func IsValidLaplaceMu(v float64) bool    { return !math.IsNaN(v) }

func AreValidLaplaceParams(p LaplaceParams) bool {
	return IsValidLaplaceAlpha(p.Alpha) && IsValidLaplaceMu(p.Mu)
}

// SampleLaplace inverts the CDF on u in (-1/2, 1/2); u = -1/2 is redrawn
// since it maps to minus infinity
func SampleLaplace(g ports.Generator, p LaplaceParams) float64 {
	u := g.NextDouble() - 0.5
	for u == -0.5 {
		u = g.NextDouble() - 0.5
	}
	if u < 0 {
		return p.Mu + p.Alpha*math.Log(1+2*u)
	}
	return p.Mu - p.Alpha*math.Log(1-2*u)
}

type Laplace struct {
	model[LaplaceParams, float64]
}

var (
	_ Continuous                 = (*Laplace)(nil)
	_ AlphaDistribution[float64] = (*Laplace)(nil)
	_ MuDistribution             = (*Laplace)(nil)
)

func NewLaplace(gen ports.Generator, alpha, mu float64, opts ...Option[LaplaceParams, float64]) (*Laplace, error) {
	m, err := newModel("laplace", gen, LaplaceParams{Alpha: alpha, Mu: mu}, AreValidLaplaceParams, SampleLaplace, opts)
	if err != nil {
		return nil, err
	}
	return &Laplace{m}, nil
}

func (d *Laplace) Alpha() float64 { return d.params.Alpha }
func (d *Laplace) Mu() float64    { return d.params.Mu }

func (d *Laplace) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Laplace) IsValidMu(v float64) bool {
	p := d.params
	p.Mu = v
	return d.valid(p)
}

func (d *Laplace) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Laplace) SetMu(v float64) error {
	p := d.params
	p.Mu = v
	return d.update(p, ParamMu)
}

func (d *Laplace) Minimum() float64 { return math.Inf(-1) }
func (d *Laplace) Maximum() float64 { return math.Inf(1) }

func (d *Laplace) Mean() (float64, error)     { return d.params.Mu, nil }
func (d *Laplace) Median() (float64, error)   { return d.params.Mu, nil }
func (d *Laplace) Variance() (float64, error) { return 2 * square(d.params.Alpha), nil }
func (d *Laplace) Mode() ([]float64, error)   { return []float64{d.params.Mu}, nil }
