package dist

import (
	"randist/ports"
)

const (
	DefaultBetaAlpha = 1.0
	DefaultBetaBeta  = 1.0
)

// BetaParams are the two shape parameters of the beta distribution
type BetaParams struct {
	Alpha float64
	Beta  float64
}

func (p BetaParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p BetaParams) invalid() []string {
	var out []string
	if !IsValidBetaAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidBetaBeta(p.Beta) {
		out = append(out, ParamBeta)
	}
	return out
}

func IsValidBetaAlpha(v float64) bool { return v > 0 }
func IsValidBetaBeta(v float64) bool  { return v > 0 }

func AreValidBetaParams(p BetaParams) bool {
	return IsValidBetaAlpha(p.Alpha) && IsValidBetaBeta(p.Beta)
}

// SampleBeta normalizes two gamma draws; both go through the rejection
// sampler, alpha first
func SampleBeta(g ports.Generator, p BetaParams) float64 {
	x := sampleGammaCore(g, p.Alpha)
	y := sampleGammaCore(g, p.Beta)
	return x / (x + y)
}

type Beta struct {
	model[BetaParams, float64]
}

var (
	_ Continuous                 = (*Beta)(nil)
	_ AlphaDistribution[float64] = (*Beta)(nil)
	_ BetaDistribution[float64]  = (*Beta)(nil)
)

func NewBeta(gen ports.Generator, alpha, beta float64, opts ...Option[BetaParams, float64]) (*Beta, error) {
	m, err := newModel("beta", gen, BetaParams{Alpha: alpha, Beta: beta}, AreValidBetaParams, SampleBeta, opts)
	if err != nil {
		return nil, err
	}
	return &Beta{m}, nil
}

func (d *Beta) Alpha() float64 { return d.params.Alpha }
func (d *Beta) Beta() float64  { return d.params.Beta }

func (d *Beta) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Beta) IsValidBeta(v float64) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *Beta) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Beta) SetBeta(v float64) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *Beta) Minimum() float64 { return 0 }
func (d *Beta) Maximum() float64 { return 1 }

func (d *Beta) Mean() (float64, error) {
	return d.params.Alpha / (d.params.Alpha + d.params.Beta), nil
}

func (d *Beta) Median() (float64, error) {
	return 0, notSupported("beta", "median")
}

func (d *Beta) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return a * b / (square(a+b) * (a + b + 1)), nil
}

func (d *Beta) Mode() ([]float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if a <= 1 || b <= 1 {
		return nil, notSupported("beta", "mode")
	}
	return []float64{(a - 1) / (a + b - 2)}, nil
}
