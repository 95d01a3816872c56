package dist

import (
	"math"

	"randist/ports"
)

const DefaultPoissonLambda = 1.0

// poissonStep bounds how much of lambda the product loop absorbs at once;
// e^-lambda underflows past roughly 745
const poissonStep = 500.0

// PoissonParams are the parameters of the Poisson distribution
type PoissonParams struct {
	Lambda float64 // expected number of events
}

func (p PoissonParams) names() []string { return []string{ParamLambda} }

func (p PoissonParams) invalid() []string {
	if !IsValidPoissonLambda(p.Lambda) {
		return []string{ParamLambda}
	}
	return nil
}

// IsValidPoissonLambda also rejects an infinite rate, which would never
// terminate the product loop
func IsValidPoissonLambda(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func AreValidPoissonParams(p PoissonParams) bool {
	return IsValidPoissonLambda(p.Lambda)
}

// SamplePoisson multiplies uniforms until the product reaches e^-lambda.
// Rates of poissonStep and above rescale the product in chunks instead.
func SamplePoisson(g ports.Generator, p PoissonParams) int {
	if p.Lambda >= poissonStep {
		return samplePoissonChunked(g, p.Lambda)
	}
	limit := math.Exp(-p.Lambda)
	product := g.NextDouble()
	count := 0
	for product > limit {
		product *= g.NextDouble()
		count++
	}
	return count
}

func samplePoissonChunked(g ports.Generator, lambda float64) int {
	left := lambda
	product := 1.0
	count := 0
	for {
		count++
		product *= uniformOpen(g)
		for product < 1 && left > 0 {
			step := math.Min(left, poissonStep)
			product *= math.Exp(step)
			left -= step
		}
		if product <= 1 {
			return count - 1
		}
	}
}

type Poisson struct {
	model[PoissonParams, int]
}

var (
	_ Discrete           = (*Poisson)(nil)
	_ LambdaDistribution = (*Poisson)(nil)
)

func NewPoisson(gen ports.Generator, lambda float64, opts ...Option[PoissonParams, int]) (*Poisson, error) {
	m, err := newModel("poisson", gen, PoissonParams{Lambda: lambda}, AreValidPoissonParams, SamplePoisson, opts)
	if err != nil {
		return nil, err
	}
	return &Poisson{m}, nil
}

func (d *Poisson) Lambda() float64 { return d.params.Lambda }

func (d *Poisson) IsValidLambda(v float64) bool {
	p := d.params
	p.Lambda = v
	return d.valid(p)
}

func (d *Poisson) SetLambda(v float64) error {
	p := d.params
	p.Lambda = v
	return d.update(p, ParamLambda)
}

func (d *Poisson) Minimum() float64 { return 0 }
func (d *Poisson) Maximum() float64 { return math.Inf(1) }

func (d *Poisson) Mean() (float64, error) {
	return d.params.Lambda, nil
}

func (d *Poisson) Median() (float64, error) {
	l := d.params.Lambda
	return math.Floor(l + 1.0/3 - 0.02/l), nil
}

func (d *Poisson) Variance() (float64, error) {
	return d.params.Lambda, nil
}

func (d *Poisson) Mode() ([]float64, error) {
	l := d.params.Lambda
	if isZero(l - math.Floor(l)) {
		return []float64{l - 1, l}, nil
	}
	return []float64{math.Floor(l)}, nil
}
