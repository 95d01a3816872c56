package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultTriangularAlpha = 0.0
	DefaultTriangularBeta  = 1.0
	DefaultTriangularGamma = 0.5
)

// TriangularParams are the lower limit, upper limit and mode of the
// triangular distribution
type TriangularParams struct {
	Alpha float64 // lower limit
	Beta  float64 // upper limit
	Gamma float64 // mode
}

func (p TriangularParams) names() []string { return []string{ParamAlpha, ParamBeta, ParamGamma} }

func (p TriangularParams) invalid() []string {
	var out []string
	span := isFinite(p.Beta - p.Alpha)
	if !isFinite(p.Alpha) || !span || !(p.Alpha < p.Beta) || !(p.Alpha <= p.Gamma) {
		out = append(out, ParamAlpha)
	}
	if !isFinite(p.Beta) || !span || !(p.Alpha < p.Beta) || !(p.Gamma <= p.Beta) {
		out = append(out, ParamBeta)
	}
	if !isFinite(p.Gamma) || !(p.Alpha <= p.Gamma) || !(p.Gamma <= p.Beta) {
		out = append(out, ParamGamma)
	}
	return out
}

// AreValidTriangularParams requires finite limits a finite distance apart,
// alpha < beta and the mode between them
func AreValidTriangularParams(p TriangularParams) bool {
	return isFinite(p.Alpha) && isFinite(p.Beta) && isFinite(p.Gamma) &&
		isFinite(p.Beta-p.Alpha) && p.Alpha < p.Beta && p.Alpha <= p.Gamma && p.Gamma <= p.Beta
}

// SampleTriangular inverts the CDF piecewise around the mode. The square
// roots are taken separately so wide limits do not overflow the product.
func SampleTriangular(g ports.Generator, p TriangularParams) float64 {
	u := g.NextDouble()
	width := p.Beta - p.Alpha
	if u < (p.Gamma-p.Alpha)/width {
		return math.Min(p.Alpha+math.Sqrt(u*width)*math.Sqrt(p.Gamma-p.Alpha), p.Beta)
	}
	return math.Max(p.Beta-math.Sqrt((1-u)*width)*math.Sqrt(p.Beta-p.Gamma), p.Alpha)
}

type Triangular struct {
	model[TriangularParams, float64]
}

var (
	_ Continuous                 = (*Triangular)(nil)
	_ AlphaDistribution[float64] = (*Triangular)(nil)
	_ BetaDistribution[float64]  = (*Triangular)(nil)
	_ GammaDistribution          = (*Triangular)(nil)
)

func NewTriangular(gen ports.Generator, alpha, beta, gamma float64, opts ...Option[TriangularParams, float64]) (*Triangular, error) {
	m, err := newModel("triangular", gen, TriangularParams{Alpha: alpha, Beta: beta, Gamma: gamma}, AreValidTriangularParams, SampleTriangular, opts)
	if err != nil {
		return nil, err
	}
	return &Triangular{m}, nil
}

func (d *Triangular) Alpha() float64 { return d.params.Alpha }
func (d *Triangular) Beta() float64  { return d.params.Beta }
func (d *Triangular) Gamma() float64 { return d.params.Gamma }

func (d *Triangular) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Triangular) IsValidBeta(v float64) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *Triangular) IsValidGamma(v float64) bool {
	p := d.params
	p.Gamma = v
	return d.valid(p)
}

func (d *Triangular) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Triangular) SetBeta(v float64) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *Triangular) SetGamma(v float64) error {
	p := d.params
	p.Gamma = v
	return d.update(p, ParamGamma)
}

func (d *Triangular) Minimum() float64 { return d.params.Alpha }
func (d *Triangular) Maximum() float64 { return d.params.Beta }

func (d *Triangular) Mean() (float64, error) {
	return (d.params.Alpha + d.params.Beta + d.params.Gamma) / 3, nil
}

func (d *Triangular) Median() (float64, error) {
	a, b, c := d.params.Alpha, d.params.Beta, d.params.Gamma
	if c >= (a+b)/2 {
		return a + math.Sqrt((b-a)*(c-a)/2), nil
	}
	return b - math.Sqrt((b-a)*(b-c)/2), nil
}

func (d *Triangular) Variance() (float64, error) {
	a, b, c := d.params.Alpha, d.params.Beta, d.params.Gamma
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18, nil
}

func (d *Triangular) Mode() ([]float64, error) {
	return []float64{d.params.Gamma}, nil
}
