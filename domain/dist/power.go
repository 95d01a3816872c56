package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultPowerAlpha = 1.0
	DefaultPowerBeta  = 1.0
)

// PowerParams are the parameters of the power distribution, supported on
// [0, 1/Beta] with density proportional to x^(Alpha-1)
type PowerParams struct {
	Alpha float64
	Beta  float64
}

func (p PowerParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p PowerParams) invalid() []string {
	var out []string
	if !IsValidPowerAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidPowerBeta(p.Beta) {
		out = append(out, ParamBeta)
	}
	return out
}

func IsValidPowerAlpha(v float64) bool { return v > 0 }
func IsValidPowerBeta(v float64) bool  { return v > 0 }

func AreValidPowerParams(p PowerParams) bool {
	return IsValidPowerAlpha(p.Alpha) && IsValidPowerBeta(p.Beta)
}

func SamplePower(g ports.Generator, p PowerParams) float64 {
	return math.Pow(g.NextDouble(), 1/p.Alpha) / p.Beta
}

type Power struct {
	model[PowerParams, float64]
}

var (
	_ Continuous                 = (*Power)(nil)
	_ AlphaDistribution[float64] = (*Power)(nil)
	_ BetaDistribution[float64]  = (*Power)(nil)
)

func NewPower(gen ports.Generator, alpha, beta float64, opts ...Option[PowerParams, float64]) (*Power, error) {
	m, err := newModel("power", gen, PowerParams{Alpha: alpha, Beta: beta}, AreValidPowerParams, SamplePower, opts)
	if err != nil {
		return nil, err
	}
	return &Power{m}, nil
}

func (d *Power) Alpha() float64 { return d.params.Alpha }
func (d *Power) Beta() float64  { return d.params.Beta }

func (d *Power) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Power) IsValidBeta(v float64) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *Power) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Power) SetBeta(v float64) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *Power) Minimum() float64 { return 0 }
func (d *Power) Maximum() float64 { return 1 / d.params.Beta }

func (d *Power) Mean() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return a / (b * (a + 1)), nil
}

func (d *Power) Median() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return 1 / (b * math.Pow(2, 1/a)), nil
}

func (d *Power) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	return a / (square(b) * (a + 2) * square(a+1)), nil
}

// Mode is the upper bound for alpha above one, zero below one and undefined
// for the flat case
func (d *Power) Mode() ([]float64, error) {
	a := d.params.Alpha
	switch {
	case isZero(a - 1):
		return nil, notSupported("power", "mode")
	case a > 1:
		return []float64{1 / d.params.Beta}, nil
	default:
		return []float64{0}, nil
	}
}
