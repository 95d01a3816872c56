package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultBetaPrimeAlpha = 1.0
	DefaultBetaPrimeBeta  = 1.0
)

// BetaPrimeParams are the two shape parameters of the beta prime
// distribution
type BetaPrimeParams struct {
	Alpha float64
	Beta  float64
}

func (p BetaPrimeParams) names() []string { return []string{ParamAlpha, ParamBeta} }

func (p BetaPrimeParams) invalid() []string {
	return BetaParams(p).invalid()
}

func IsValidBetaPrimeAlpha(v float64) bool { return v > 0 }
func IsValidBetaPrimeBeta(v float64) bool  { return v > 0 }

func AreValidBetaPrimeParams(p BetaPrimeParams) bool {
	return IsValidBetaPrimeAlpha(p.Alpha) && IsValidBetaPrimeBeta(p.Beta)
}

// SampleBetaPrime maps a beta draw b to b/(1-b)
func SampleBetaPrime(g ports.Generator, p BetaPrimeParams) float64 {
	b := SampleBeta(g, BetaParams(p))
	if b == 1 {
		return math.Inf(1)
	}
	return b / (1 - b)
}

type BetaPrime struct {
	model[BetaPrimeParams, float64]
}

var (
	_ Continuous                 = (*BetaPrime)(nil)
	_ AlphaDistribution[float64] = (*BetaPrime)(nil)
	_ BetaDistribution[float64]  = (*BetaPrime)(nil)
)

func NewBetaPrime(gen ports.Generator, alpha, beta float64, opts ...Option[BetaPrimeParams, float64]) (*BetaPrime, error) {
	m, err := newModel("beta prime", gen, BetaPrimeParams{Alpha: alpha, Beta: beta}, AreValidBetaPrimeParams, SampleBetaPrime, opts)
	if err != nil {
		return nil, err
	}
	return &BetaPrime{m}, nil
}

func (d *BetaPrime) Alpha() float64 { return d.params.Alpha }
func (d *BetaPrime) Beta() float64  { return d.params.Beta }

func (d *BetaPrime) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *BetaPrime) IsValidBeta(v float64) bool {
	p := d.params
	p.Beta = v
	return d.valid(p)
}

func (d *BetaPrime) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *BetaPrime) SetBeta(v float64) error {
	p := d.params
	p.Beta = v
	return d.update(p, ParamBeta)
}

func (d *BetaPrime) Minimum() float64 { return 0 }
func (d *BetaPrime) Maximum() float64 { return math.Inf(1) }

func (d *BetaPrime) Mean() (float64, error) {
	if d.params.Beta <= 1 {
		return 0, notSupported("beta prime", "mean")
	}
	return d.params.Alpha / (d.params.Beta - 1), nil
}

func (d *BetaPrime) Median() (float64, error) {
	return 0, notSupported("beta prime", "median")
}

func (d *BetaPrime) Variance() (float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if b <= 2 {
		return 0, notSupported("beta prime", "variance")
	}
	return a * (a + b - 1) / ((b - 2) * square(b-1)), nil
}

// Mode is zero for alpha below one, where the density diverges at the origin
func (d *BetaPrime) Mode() ([]float64, error) {
	a, b := d.params.Alpha, d.params.Beta
	if a < 1 {
		return []float64{0}, nil
	}
	return []float64{(a - 1) / (b + 1)}, nil
}
