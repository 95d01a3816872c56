package dist

import (
	"randist/ports"
)

const (
	DefaultContinuousUniformAlpha = 0.0
	DefaultContinuousUniformBeta  = 1.0
)

// ContinuousUniformParams bound the interval [Alpha, Beta)
type ContinuousUniformParams struct {
	Alpha float64
	Beta  float64
}

func (p ContinuousUniformParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p ContinuousUniformParams) invalid() []string {
	if AreValidContinuousUniformParams(p) {
		return nil
	}
	return p.names()
}

// AreValidContinuousUniformParams requires alpha <= beta and a finite span
func AreValidContinuousUniformParams(p ContinuousUniformParams) bool {
	return p.Alpha <= p.Beta && isFinite(p.Beta-p.Alpha)
}

func SampleContinuousUniform(g ports.Generator, p ContinuousUniformParams) float64 {
	return p.Alpha + g.NextDouble()*(p.Beta-p.Alpha)
}

type ContinuousUniform struct {
	model[ContinuousUniformParams, float64]
}

var (
	_ Continuous                 = (*ContinuousUniform)(nil)
	_ AlphaDistribution[float64] = (*ContinuousUniform)(nil)
	_ BetaDistribution[float64]  = (*ContinuousUniform)(nil)
)

func NewContinuousUniform(gen ports.Generator, alpha, beta float64, opts ...Option[ContinuousUniformParams, float64]) (*ContinuousUniform, error) {
	m, err := newModel("continuous uniform", gen, ContinuousUniformParams{Alpha: alpha, Beta: beta}, AreValidContinuousUniformParams, SampleContinuousUniform, opts)
	if err != nil {
		return nil, err
	}
	return &ContinuousUniform{m}, nil
}

func (d *ContinuousUniform) Alpha() float64 { return d.params.Alpha }
func (d *ContinuousUniform) Beta() float64  { return d.params.Beta }

func (d *ContinuousUniform) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *ContinuousUniform) IsValidBeta(v float64) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *ContinuousUniform) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *ContinuousUniform) SetBeta(v float64) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *ContinuousUniform) Minimum() float64 { return d.params.Alpha }
func (d *ContinuousUniform) Maximum() float64 { return d.params.Beta }

func (d *ContinuousUniform) Mean() (float64, error) {
	return (d.params.Alpha + d.params.Beta) / 2, nil
}

func (d *ContinuousUniform) Median() (float64, error) {
	return (d.params.Alpha + d.params.Beta) / 2, nil
}

func (d *ContinuousUniform) Variance() (float64, error) {
	return square(d.params.Beta-d.params.Alpha) / 12, nil
}

// Mode is not unique: every point of the interval is a mode
func (d *ContinuousUniform) Mode() ([]float64, error) {
	return nil, notSupported("continuous uniform", "mode")
}
