package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultFisherSnedecorAlpha = 1
	DefaultFisherSnedecorBeta  = 1
)

// FisherSnedecorParams are the degrees of freedom of the F-distribution
type FisherSnedecorParams struct {
	Alpha int // numerator degrees of freedom
	Beta  int // denominator degrees of freedom
}

func (p FisherSnedecorParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p FisherSnedecorParams) invalid() []string {
	var out []string
	if !IsValidFisherSnedecorAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidFisherSnedecorBeta(p.Beta) {
		out = append(out, ParamBeta)
	}
	return out
}

func IsValidFisherSnedecorAlpha(v int) bool { return v > 0 }
func IsValidFisherSnedecorBeta(v int) bool  { return v > 0 }

func AreValidFisherSnedecorParams(p FisherSnedecorParams) bool {
	return IsValidFisherSnedecorAlpha(p.Alpha) && IsValidFisherSnedecorBeta(p.Beta)
}

// SampleFisherSnedecor is the ratio of two chi-square draws, each divided by
// its degrees of freedom
func SampleFisherSnedecor(g ports.Generator, p FisherSnedecorParams) float64 {
	num := SampleChiSquare(g, ChiSquareParams{Alpha: p.Alpha}) / float64(p.Alpha)
	den := SampleChiSquare(g, ChiSquareParams{Alpha: p.Beta}) / float64(p.Beta)
	return num / den
}

type FisherSnedecor struct {
	model[FisherSnedecorParams, float64]
}

var (
	_ Continuous             = (*FisherSnedecor)(nil)
	_ AlphaDistribution[int] = (*FisherSnedecor)(nil)
	_ BetaDistribution[int]  = (*FisherSnedecor)(nil)
)

func NewFisherSnedecor(gen ports.Generator, alpha, beta int, opts ...Option[FisherSnedecorParams, float64]) (*FisherSnedecor, error) {
	m, err := newModel("fisher-snedecor", gen, FisherSnedecorParams{Alpha: alpha, Beta: beta}, AreValidFisherSnedecorParams, SampleFisherSnedecor, opts)
	if err != nil {
		return nil, err
	}
	return &FisherSnedecor{m}, nil
}

func (d *FisherSnedecor) Alpha() int { return d.params.Alpha }
func (d *FisherSnedecor) Beta() int  { return d.params.Beta }

func (d *FisherSnedecor) IsValidAlpha(v int) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *FisherSnedecor) IsValidBeta(v int) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *FisherSnedecor) SetAlpha(v int) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *FisherSnedecor) SetBeta(v int) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *FisherSnedecor) Minimum() float64 { return 0 }
func (d *FisherSnedecor) Maximum() float64 { return math.Inf(1) }

func (d *FisherSnedecor) Mean() (float64, error) {
	if d.params.Beta <= 2 {
		return 0, notSupported("fisher-snedecor", "mean")
	}
	b := float64(d.params.Beta)
	return b / (b - 2), nil
}

func (d *FisherSnedecor) Median() (float64, error) {
	return 0, notSupported("fisher-snedecor", "median")
}

func (d *FisherSnedecor) Variance() (float64, error) {
	if d.params.Beta <= 4 {
		return 0, notSupported("fisher-snedecor", "variance")
	}
	a, b := float64(d.params.Alpha), float64(d.params.Beta)
	return 2 * b * b * (a + b - 2) / (a * square(b-2) * (b - 4)), nil
}

func (d *FisherSnedecor) Mode() ([]float64, error) {
	if d.params.Alpha <= 2 {
		return nil, notSupported("fisher-snedecor", "mode")
	}
	a, b := float64(d.params.Alpha), float64(d.params.Beta)
	return []float64{(a - 2) / a * b / (b + 2)}, nil
}
