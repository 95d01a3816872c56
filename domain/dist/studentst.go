package dist

import (
	"math"

	"randist/ports"
)

const DefaultStudentsTNu = 1

// StudentsTParams are the parameters of Student's t-distribution
type StudentsTParams struct {
	Nu int // degrees of freedom
}

func (p StudentsTParams) names() []string { return []string{ParamNu} }

func (p StudentsTParams) invalid() []string {
	if !IsValidStudentsTNu(p.Nu) {
		return []string{ParamNu}
	}
	return nil
}

func IsValidStudentsTNu(v int) bool { return v > 0 }

func AreValidStudentsTParams(p StudentsTParams) bool {
	return IsValidStudentsTNu(p.Nu)
}

// SampleStudentsT divides a standard normal by the root of a scaled
// chi-square draw with nu degrees of freedom
func SampleStudentsT(g ports.Generator, p StudentsTParams) float64 {
	n := standardNormal(g)
	c := SampleChiSquare(g, ChiSquareParams{Alpha: p.Nu})
	return n / math.Sqrt(c/float64(p.Nu))
}

type StudentsT struct {
	model[StudentsTParams, float64]
}

var (
	_ Continuous     = (*StudentsT)(nil)
	_ NuDistribution = (*StudentsT)(nil)
)

func NewStudentsT(gen ports.Generator, nu int, opts ...Option[StudentsTParams, float64]) (*StudentsT, error) {
	m, err := newModel("student's t", gen, StudentsTParams{Nu: nu}, AreValidStudentsTParams, SampleStudentsT, opts)
	if err != nil {
		return nil, err
	}
	return &StudentsT{m}, nil
}

func (d *StudentsT) Nu() int { return d.params.Nu }

func (d *StudentsT) IsValidNu(v int) bool {
	p := d.params
	p.Nu = v
	return d.valid(p)
}

func (d *StudentsT) SetNu(v int) error {
	p := d.params
	p.Nu = v
	return d.update(p, ParamNu)
}

func (d *StudentsT) Minimum() float64 { return math.Inf(-1) }
func (d *StudentsT) Maximum() float64 { return math.Inf(1) }

func (d *StudentsT) Mean() (float64, error) {
	if d.params.Nu <= 1 {
		return 0, notSupported("student's t", "mean")
	}
	return 0, nil
}

func (d *StudentsT) Median() (float64, error) { return 0, nil }

func (d *StudentsT) Variance() (float64, error) {
	if d.params.Nu <= 2 {
		return 0, notSupported("student's t", "variance")
	}
	nu := float64(d.params.Nu)
	return nu / (nu - 2), nil
}

func (d *StudentsT) Mode() ([]float64, error) { return []float64{0}, nil }
