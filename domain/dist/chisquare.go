package dist

import (
	"math"

	"randist/ports"
)

const DefaultChiSquareAlpha = 1

// ChiSquareParams are the parameters of the chi-square distribution
type ChiSquareParams struct {
	Alpha int // degrees of freedom
}

func (p ChiSquareParams) names() []string { return []string{ParamAlpha} }

func (p ChiSquareParams) invalid() []string {
	if !IsValidChiSquareAlpha(p.Alpha) {
		return []string{ParamAlpha}
	}
	return nil
}

func IsValidChiSquareAlpha(v int) bool { return v > 0 }

func AreValidChiSquareParams(p ChiSquareParams) bool {
	return IsValidChiSquareAlpha(p.Alpha)
}

// SampleChiSquare sums the squares of alpha standard normals
func SampleChiSquare(g ports.Generator, p ChiSquareParams) float64 {
	sum := 0.0
	for i := 0; i < p.Alpha; i++ {
		sum += square(standardNormal(g))
	}
	return sum
}

type ChiSquare struct {
	model[ChiSquareParams, float64]
}

var (
	_ Continuous             = (*ChiSquare)(nil)
	_ AlphaDistribution[int] = (*ChiSquare)(nil)
)

func NewChiSquare(gen ports.Generator, alpha int, opts ...Option[ChiSquareParams, float64]) (*ChiSquare, error) {
	m, err := newModel("chi-square", gen, ChiSquareParams{Alpha: alpha}, AreValidChiSquareParams, SampleChiSquare, opts)
	if err != nil {
		return nil, err
	}
	return &ChiSquare{m}, nil
}

func (d *ChiSquare) Alpha() int { return d.params.Alpha }

func (d *ChiSquare) IsValidAlpha(v int) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *ChiSquare) SetAlpha(v int) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *ChiSquare) Minimum() float64 { return 0 }
func (d *ChiSquare) Maximum() float64 { return math.Inf(1) }

func (d *ChiSquare) Mean() (float64, error) { return float64(d.params.Alpha), nil }

// Median uses the Wilson-Hilferty approximation
func (d *ChiSquare) Median() (float64, error) {
	k := float64(d.params.Alpha)
	return k * math.Pow(1-2/(9*k), 3), nil
}

func (d *ChiSquare) Variance() (float64, error) { return 2 * float64(d.params.Alpha), nil }

func (d *ChiSquare) Mode() ([]float64, error) {
	return []float64{math.Max(float64(d.params.Alpha-2), 0)}, nil
}
