package dist

import (
	"math"

	"randist/ports"
)

const DefaultChiAlpha = 1

// ChiParams are the parameters of the chi distribution
type ChiParams struct {
	Alpha int // degrees of freedom
}

func (p ChiParams) names() []string { return []string{ParamAlpha} }

func (p ChiParams) invalid() []string {
	if !IsValidChiAlpha(p.Alpha) {
		return []string{ParamAlpha}
	}
	return nil
}

func IsValidChiAlpha(v int) bool { return v > 0 }

func AreValidChiParams(p ChiParams) bool {
	return IsValidChiAlpha(p.Alpha)
}

// SampleChi is the Euclidean norm of alpha standard normals
func SampleChi(g ports.Generator, p ChiParams) float64 {
	sum := 0.0
	for i := 0; i < p.Alpha; i++ {
		sum += square(standardNormal(g))
	}
	return math.Sqrt(sum)
}

type Chi struct {
	model[ChiParams, float64]
}

var (
	_ Continuous             = (*Chi)(nil)
	_ AlphaDistribution[int] = (*Chi)(nil)
)

func NewChi(gen ports.Generator, alpha int, opts ...Option[ChiParams, float64]) (*Chi, error) {
	m, err := newModel("chi", gen, ChiParams{Alpha: alpha}, AreValidChiParams, SampleChi, opts)
	if err != nil {
		return nil, err
	}
	return &Chi{m}, nil
}

func (d *Chi) Alpha() int { return d.params.Alpha }

func (d *Chi) IsValidAlpha(v int) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Chi) SetAlpha(v int) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Chi) Minimum() float64 { return 0 }
func (d *Chi) Maximum() float64 { return math.Inf(1) }

func (d *Chi) Mean() (float64, error) {
	k := float64(d.params.Alpha)
	lhi, _ := math.Lgamma((k + 1) / 2)
	llo, _ := math.Lgamma(k / 2)
	return math.Sqrt2 * math.Exp(lhi-llo), nil
}

func (d *Chi) Median() (float64, error) {
	return 0, notSupported("chi", "median")
}

func (d *Chi) Variance() (float64, error) {
	mean, _ := d.Mean()
	return float64(d.params.Alpha) - square(mean), nil
}

func (d *Chi) Mode() ([]float64, error) {
	return []float64{math.Sqrt(float64(d.params.Alpha - 1))}, nil
}
