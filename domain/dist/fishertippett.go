package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultFisherTippettAlpha = 1.0
	DefaultFisherTippettMu    = 0.0

	eulerMascheroni = 0.57721566490153286060651209008240243
)

// FisherTippettParams are the parameters of the Fisher-Tippett (Gumbel)
// distribution
type FisherTippettParams struct {
	Alpha float64 // scale
	Mu    float64 // location
}

func (p FisherTippettParams) names() []string { return []string{ParamAlpha, ParamMu} }

func (p FisherTippettParams) invalid() []string {
	var out []string
	if !IsValidFisherTippettAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidFisherTippettMu(p.Mu) {
		out = append(out, ParamMu)
	}
	return out
}

func IsValidFisherTippettAlpha(v float64) bool { return v > 0 }
func IsValidFisherTippettMu(v float64) bool    { return !math.IsNaN(v) }

func AreValidFisherTippettParams(p FisherTippettParams) bool {
	return IsValidFisherTippettAlpha(p.Alpha) && IsValidFisherTippettMu(p.Mu)
}

func SampleFisherTippett(g ports.Generator, p FisherTippettParams) float64 {
	return p.Mu - p.Alpha*math.Log(-math.Log(1-g.NextDouble()))
}

type FisherTippett struct {
	model[FisherTippettParams, float64]
}

var (
	_ Continuous                 = (*FisherTippett)(nil)
	_ AlphaDistribution[float64] = (*FisherTippett)(nil)
	_ MuDistribution             = (*FisherTippett)(nil)
)

func NewFisherTippett(gen ports.Generator, alpha, mu float64, opts ...Option[FisherTippettParams, float64]) (*FisherTippett, error) {
	m, err := newModel("fisher-tippett", gen, FisherTippettParams{Alpha: alpha, Mu: mu}, AreValidFisherTippettParams, SampleFisherTippett, opts)
	if err != nil {
		return nil, err
	}
	return &FisherTippett{m}, nil
}

func (d *FisherTippett) Alpha() float64 { return d.params.Alpha }
func (d *FisherTippett) Mu() float64    { return d.params.Mu }

func (d *FisherTippett) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *FisherTippett) IsValidMu(v float64) bool {
	p := d.params
	p.Mu = v
	return d.valid(p)
}

func (d *FisherTippett) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *FisherTippett) SetMu(v float64) error {
	p := d.params
	p.Mu = v
	return d.update(p, ParamMu)
}

func (d *FisherTippett) Minimum() float64 { return math.Inf(-1) }
func (d *FisherTippett) Maximum() float64 { return math.Inf(1) }

func (d *FisherTippett) Mean() (float64, error) {
	return d.params.Mu + d.params.Alpha*eulerMascheroni, nil
}

func (d *FisherTippett) Median() (float64, error) {
	return d.params.Mu - d.params.Alpha*math.Log(math.Ln2), nil
}

func (d *FisherTippett) Variance() (float64, error) {
	return square(math.Pi*d.params.Alpha) / 6, nil
}

func (d *FisherTippett) Mode() ([]float64, error) {
	return []float64{d.params.Mu}, nil
}
