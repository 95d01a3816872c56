package dist

import (
	"math"

	"randist/ports"
)

const DefaultGeometricAlpha = 0.5

// GeometricParams are the parameters of the geometric distribution over the
// number of trials up to and including the first success
type GeometricParams struct {
	Alpha float64 // success probability
}

func (p GeometricParams) names() []string { return []string{ParamAlpha} }

func (p GeometricParams) invalid() []string {
	if !IsValidGeometricAlpha(p.Alpha) {
		return []string{ParamAlpha}
	}
	return nil
}

func IsValidGeometricAlpha(v float64) bool { return v > 0 && v <= 1 }

func AreValidGeometricParams(p GeometricParams) bool {
	return IsValidGeometricAlpha(p.Alpha)
}

func SampleGeometric(g ports.Generator, p GeometricParams) int {
	n := 1
	for g.NextDouble() >= p.Alpha {
		n++
	}
	return n
}

type Geometric struct {
	model[GeometricParams, int]
}

var (
	_ Discrete                   = (*Geometric)(nil)
	_ AlphaDistribution[float64] = (*Geometric)(nil)
)

func NewGeometric(gen ports.Generator, alpha float64, opts ...Option[GeometricParams, int]) (*Geometric, error) {
	m, err := newModel("geometric", gen, GeometricParams{Alpha: alpha}, AreValidGeometricParams, SampleGeometric, opts)
	if err != nil {
		return nil, err
	}
	return &Geometric{m}, nil
}

func (d *Geometric) Alpha() float64 { return d.params.Alpha }

func (d *Geometric) IsValidAlpha(v float64) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Geometric) SetAlpha(v float64) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Geometric) Minimum() float64 { return 1 }
func (d *Geometric) Maximum() float64 { return math.Inf(1) }

func (d *Geometric) Mean() (float64, error) {
	return 1 / d.params.Alpha, nil
}

func (d *Geometric) Median() (float64, error) {
	a := d.params.Alpha
	if isZero(a - 1) {
		return 1, nil
	}
	return math.Ceil(-1 / math.Log2(1-a)), nil
}

func (d *Geometric) Variance() (float64, error) {
	a := d.params.Alpha
	return (1 - a) / square(a), nil
}

func (d *Geometric) Mode() ([]float64, error) {
	return []float64{1}, nil
}
