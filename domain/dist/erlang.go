package dist

import (
	"math"

	"randist/ports"
)

const (
	DefaultErlangAlpha  = 1
	DefaultErlangLambda = 1.0
)

// ErlangParams are the parameters of the Erlang distribution, a gamma
// distribution with integer shape and a rate instead of a scale
type ErlangParams struct {
	Alpha  int     // shape
	Lambda float64 // rate
}

func (p ErlangParams) names() []string { return []string{ParamAlpha, ParamLambda} }

func (p ErlangParams) invalid() []string {
	var out []string
	if !IsValidErlangAlpha(p.Alpha) {
		out = append(out, ParamAlpha)
	}
	if !IsValidErlangLambda(p.Lambda) {
		out = append(out, ParamLambda)
	}
	return out
}

func IsValidErlangAlpha(v int) bool      { return v > 0 }
func IsValidErlangLambda(v float64) bool { return v > 0 }

func AreValidErlangParams(p ErlangParams) bool {
	return IsValidErlangAlpha(p.Alpha) && IsValidErlangLambda(p.Lambda)
}

func SampleErlang(g ports.Generator, p ErlangParams) float64 {
	return sampleGammaCore(g, float64(p.Alpha)) / p.Lambda
}

type Erlang struct {
	model[ErlangParams, float64]
}

var (
	_ Continuous             = (*Erlang)(nil)
	_ AlphaDistribution[int] = (*Erlang)(nil)
	_ LambdaDistribution     = (*Erlang)(nil)
)

func NewErlang(gen ports.Generator, alpha int, lambda float64, opts ...Option[ErlangParams, float64]) (*Erlang, error) {
	m, err := newModel("erlang", gen, ErlangParams{Alpha: alpha, Lambda: lambda}, AreValidErlangParams, SampleErlang, opts)
	if err != nil {
		return nil, err
	}
	return &Erlang{m}, nil
}

func (d *Erlang) Alpha() int      { return d.params.Alpha }
func (d *Erlang) Lambda() float64 { return d.params.Lambda }

func (d *Erlang) IsValidAlpha(v int) bool {
	p := d.params
	p.Alpha = v
	return d.valid(p)
}

func (d *Erlang) IsValidLambda(v float64) bool {
	p := d.params
	p.Lambda = v
	return d.valid(p)
}

func (d *Erlang) SetAlpha(v int) error {
	p := d.params
	p.Alpha = v
	return d.update(p, ParamAlpha)
}

func (d *Erlang) SetLambda(v float64) error {
	p := d.params
	p.Lambda = v
	return d.update(p, ParamLambda)
}

func (d *Erlang) Minimum() float64 { return 0 }
func (d *Erlang) Maximum() float64 { return math.Inf(1) }

func (d *Erlang) Mean() (float64, error) {
	return float64(d.params.Alpha) / d.params.Lambda, nil
}

// Median has no closed form for the Erlang distribution
func (d *Erlang) Median() (float64, error) {
	return 0, notSupported("erlang", "median")
}

func (d *Erlang) Variance() (float64, error) {
	return float64(d.params.Alpha) / square(d.params.Lambda), nil
}

func (d *Erlang) Mode() ([]float64, error) {
	return []float64{float64(d.params.Alpha-1) / d.params.Lambda}, nil
}
