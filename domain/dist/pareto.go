package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultParetoAlpha = 1.0
	DefaultParetoBeta  = 1.0
)

// ParetoParams are the parameters of the Pareto distribution
type ParetoParams struct {
	Alpha float64 // scale, the minimum value
	Beta  float64 // shape
}

func (p ParetoParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p ParetoParams) invalid() []string {
	var out []string
	if !IsValidParetoAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidParetoBeta(p.Beta) {
		out = append(out, ParamBeta)
	}
	return out
}

func IsValidParetoAlpha(v float64) bool { return v > 0 }
func IsValidParetoBeta(v float64) bool  { return v > 0 }

func AreValidParetoParams(p ParetoParams) bool {
	return IsValidParetoAlpha(p.Alpha) && IsValidParetoBeta(p.Beta)
}

func SamplePareto(g ports.Generator, p ParetoParams) float64 {
	return p.Alpha / math.Pow(1-g.NextDouble(), 1/p.Beta)
}

type Pareto struct {
	model[ParetoParams, float64]
}

var (
	_ Continuous                 = (*Pareto)(nil)
	_ AlphaDistribution[float64] = (*Pareto)(nil)
	_ BetaDistribution[float64]  = (*Pareto)(nil)
)

func NewPareto(gen ports.Generator, alpha, beta float64, opts ...Option[ParetoParams, float64]) (*Pareto, error) {
	m, err := newModel("pareto", gen, ParetoParams{Alpha: alpha, Beta: beta}, AreValidParetoParams, SamplePareto, opts)
	if err != nil {
		return nil, err
	}
	return &Pareto{m}, nil
}

func (d *Pareto) Alpha() float64 { return d.params.Alpha }
func (d *Pareto) Beta() float64  { return d.params.Beta }

func (d *Pareto) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Pareto) IsValidBeta(v float64) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *Pareto) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Pareto) SetBeta(v float64) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *Pareto) Minimum() float64 { return d.params.Alpha }
func (d *Pareto) Maximum() float64 { return math.Inf(1) }

func (d *Pareto) Mean() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 1 {
		return 0, notSupported("pareto", "mean")
	}
	return a * b / (b - 1), nil
}

func (d *Pareto) Median() (float64, error) {
	return d.params.Alpha * math.Pow(2, 1/d.params.Beta), nil
}

func (d *Pareto) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 2 {
		return 0, notSupported("pareto", "variance")
	}
	return square(a) * b / (square(b-1) * (b - 2)), nil
}

func (d *Pareto) Mode() ([]float64, error) {
	return []float64{d.params.Alpha}, nil
}
