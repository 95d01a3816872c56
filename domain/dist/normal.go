package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultNormalMu    = 0.0
	DefaultNormalSigma = 1.0
)

// NormalParams are the parameters of the normal distribution
type NormalParams struct {
	Mu    float64 // location
	Sigma float64 // standard deviation
}

func (p NormalParams) names() []string { return []string{ParamMu, ParamSigma} }

func (p NormalParams) invalid() []string {
	var out []string
	if !IsValidNormalMu(p.Mu) {
		out = append(out, ParamMu)
	}
	if !IsValidNormalSigma(p.Sigma) {
		out = append(out, ParamSigma)
	}
	return out
}

func IsValidNormalMu(v float64) bool    { return !math.IsNaN(v) }
func IsValidNormalSigma(v float64) bool { return v > 0 }

// AreValidNormalParams reports whether mu is a number and sigma is positive
func AreValidNormalParams(p NormalParams) bool {
	return IsValidNormalMu(p.Mu) && IsValidNormalSigma(p.Sigma)
}

// SampleNormal uses Marsaglia's polar method. Each accepted pair yields two
// independent normals but only one is returned, picked by a coin flip; the
// extra draw is part of the reproducible sequence.
func SampleNormal(g ports.Generator, p NormalParams) float64 {
	for {
		v1 := -1 + 2*g.NextDouble()
		v2 := -1 + 2*g.NextDouble()
		w := v1*v1 + v2*v2
		if w >= 1 || isZero(w) {
			continue
		}
		y := math.Sqrt(-2*math.Log(w)/w) * p.Sigma
		if g.NextBoolean() {
			return p.Mu + y*v1
		}
		return p.Mu + y*v2
	}
}

// standardNormal draws from N(0, 1)
func standardNormal(g ports.Generator) float64 {
	return SampleNormal(g, NormalParams{Mu: 0, Sigma: 1})
}

// Normal is the Gaussian distribution
type Normal struct {
	model[NormalParams, float64]
}

var (
	_ Continuous        = (*Normal)(nil)
	_ MuDistribution    = (*Normal)(nil)
	_ SigmaDistribution = (*Normal)(nil)
)

// NewNormal creates a normal distribution drawing from gen
func NewNormal(gen ports.Generator, mu, sigma float64, opts ...Option[NormalParams, float64]) (*Normal, error) {
	m, err := newModel("normal", gen, NormalParams{Mu: mu, Sigma: sigma}, AreValidNormalParams, SampleNormal, opts)
	if err != nil {
		return nil, err
	}
	return &Normal{m}, nil
}

func (d *Normal) Mu() float64    { return d.params.Mu }
func (d *Normal) Sigma() float64 { return d.params.Sigma }

func (d *Normal) IsValidMu(v float64) bool {
	p := d.params
	p.Mu = v
	return d.valid(p)
}

func (d *Normal) IsValidSigma(v float64) bool {
	p := d.params
	p.Sigma = v
	return d.valid(p)
}

func (d *Normal) SetMu(v float64) error {
	p := d.params
	p.Mu = v
	return d.update(p, ParamMu)
}

func (d *Normal) SetSigma(v float64) error {
	p := d.params
	p.Sigma = v
	return d.update(p, ParamSigma)
}

func (d *Normal) Minimum() float64 { return math.Inf(-1) }
func (d *Normal) Maximum() float64 { return math.Inf(1) }

func (d *Normal) Mean() (float64, error)     { return d.params.Mu, nil }
func (d *Normal) Median() (float64, error)   { return d.params.Mu, nil }
func (d *Normal) Variance() (float64, error) { return square(d.params.Sigma), nil }
func (d *Normal) Mode() ([]float64, error)   { return []float64{d.params.Mu}, nil }
