package dist

import (
	"math"

	"randist/ports"
)

const DefaultExponentialLambda = 1.0

// ExponentialParams are the parameters of the exponential distribution
type ExponentialParams struct {
	Lambda float64 // rate
}

func (p ExponentialParams) names() []string { return []string{ParamLambda} }

func (p ExponentialParams) invalid() []string {
	if !IsValidExponentialLambda(p.Lambda) {
		return []string{ParamLambda}
	}
	return nil
}

func IsValidExponentialLambda(v float64) bool { return v > 0 }

func AreValidExponentialParams(p ExponentialParams) bool {
	return IsValidExponentialLambda(p.Lambda)
}

// SampleExponential inverts the CDF on a uniform draw in (0, 1)
func SampleExponential(g ports.Generator, p ExponentialParams) float64 {
	return -math.Log(uniformOpen(g)) / p.Lambda
}

type Exponential struct {
	model[ExponentialParams, float64]
}

var (
	_ Continuous         = (*Exponential)(nil)
	_ LambdaDistribution = (*Exponential)(nil)
)

func NewExponential(gen ports.Generator, lambda float64, opts ...Option[ExponentialParams, float64]) (*Exponential, error) {
	m, err := newModel("exponential", gen, ExponentialParams{Lambda: lambda}, AreValidExponentialParams, SampleExponential, opts)
	if err != nil {
		return nil, err
	}
	return &Exponential{m}, nil
}

func (d *Exponential) Lambda() float64 { return d.params.Lambda }

func (d *Exponential) IsValidLambda(v float64) bool {
	p := d.params
	p.Lambda = v
	return d.valid(p)
}

func (d *Exponential) SetLambda(v float64) error {
	p := d.params
	p.Lambda = v
	return d.update(p, ParamLambda)
}

func (d *Exponential) Minimum() float64 { return 0 }
func (d *Exponential) Maximum() float64 { return math.Inf(1) }

func (d *Exponential) Mean() (float64, error)     { return 1 / d.params.Lambda, nil }
func (d *Exponential) Median() (float64, error)   { return math.Ln2 / d.params.Lambda, nil }
func (d *Exponential) Variance() (float64, error) { return 1 / square(d.params.Lambda), nil }
func (d *Exponential) Mode() ([]float64, error)   { return []float64{0}, nil }
