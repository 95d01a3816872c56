package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultWeibullAlpha  = 1.0
	DefaultWeibullLambda = 1.0
)

// WeibullParams are the parameters of the Weibull distribution
type WeibullParams struct {
	Alpha  float64 // shape
	Lambda float64 // scale
}

func (p WeibullParams) names() []string { return []string{ParamAlpha, ParamLambda} }

func (p WeibullParams) invalid() []string {
	var out []string
	if !IsValidWeibullAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidWeibullLambda(p.Lambda) {
		out = append(out, ParamLambda)
	}
	return out
}

func IsValidWeibullAlpha(v float64) bool  { return v > 0 }
func IsValidWeibullLambda(v float64) bool { return v > 0 }

func AreValidWeibullParams(p WeibullParams) bool {
	return IsValidWeibullAlpha(p.Alpha) && IsValidWeibullLambda(p.Lambda)
}

func SampleWeibull(g ports.Generator, p WeibullParams) float64 {
	return p.Lambda * math.Pow(-math.Log(1-g.NextDouble()), 1/p.Alpha)
}

type Weibull struct {
	model[WeibullParams, float64]
}

var (
	_ Continuous                 = (*Weibull)(nil)
	_ AlphaDistribution[float64] = (*Weibull)(nil)
	_ LambdaDistribution         = (*Weibull)(nil)
)

func NewWeibull(gen ports.Generator, alpha, lambda float64, opts ...Option[WeibullParams, float64]) (*Weibull, error) {
	m, err := newModel("weibull", gen, WeibullParams{Alpha: alpha, Lambda: lambda}, AreValidWeibullParams, SampleWeibull, opts)
	if err != nil {
		return nil, err
	}
	return &Weibull{m}, nil
}

func (d *Weibull) Alpha() float64  { return d.params.Alpha }
func (d *Weibull) Lambda() float64 { return d.params.Lambda }

func (d *Weibull) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Weibull) IsValidLambda(v float64) bool {
	p := d.params
	p.Lambda = v
	return d.valid(p)
}

func (d *Weibull) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Weibull) SetLambda(v float64) error {
	p := d.params
	p.Lambda = v
	return d.update(p, ParamLambda)
}

func (d *Weibull) Minimum() float64 { return 0 }
func (d *Weibull) Maximum() float64 { return math.Inf(1) }

func (d *Weibull) Mean() (float64, error) {
	return d.params.Lambda * math.Gamma(1+1/d.params.Alpha), nil
}

func (d *Weibull) Median() (float64, error) {
	return d.params.Lambda * math.Pow(math.Ln2, 1/d.params.Alpha), nil
}

func (d *Weibull) Variance() (float64, error) {
	a := d.params.Alpha
	return square(d.params.Lambda) * (math.Gamma(1+2/a) - square(math.Gamma(1+1/a))), nil
}

func (d *Weibull) Mode() ([]float64, error) {
	a := d.params.Alpha
	if a < 1 {
		return nil, notSupported("weibull", "mode")
	}
	return []float64{d.params.Lambda * math.Pow((a-1)/a, 1/a)}, nil
}
