package dist

import (
	"math"
	"slices"

	"randist/internal/errors"
	"randist/ports"
)

// DefaultCategoricalWeights puts all mass on category zero
var DefaultCategoricalWeights = []float64{1}

// CategoricalParams are the unnormalized weights of categories 0..n-1
type CategoricalParams struct {
	Weights []float64
}

func (p CategoricalParams) names() []string { return []string{ParamWeights} }

func (p CategoricalParams) invalid() []string {
	if !IsValidCategoricalWeights(p.Weights) {
		return []string{ParamWeights}
	}
	return nil
}

// IsValidCategoricalWeights requires a non-empty set of finite, non-negative
// weights with a positive sum
func IsValidCategoricalWeights(w []float64) bool {
	if len(w) == 0 {
		return false
	}
	sum := 0.0
	for _, v := range w {
		if !isFinite(v) || v < 0 {
			return false
		}
		sum += v
	}
	return sum > 0 && isFinite(sum)
}

func AreValidCategoricalParams(p CategoricalParams) bool {
	return IsValidCategoricalWeights(p.Weights)
}

// SampleCategorical scales one uniform draw by the weight total and walks
// the cumulative weights
func SampleCategorical(g ports.Generator, p CategoricalParams) int {
	sum := 0.0
	for _, w := range p.Weights {
		sum += w
	}
	u := g.NextDouble() * sum
	acc := 0.0
	last := 0
	for i, w := range p.Weights {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if u < acc {
			return i
		}
	}
	// rounding left u at or past the total
	return last
}

type Categorical struct {
	model[CategoricalParams, int]
}

var (
	_ Discrete            = (*Categorical)(nil)
	_ WeightsDistribution = (*Categorical)(nil)
)

// NewCategorical copies weights, so later changes to the caller's slice do
// not reach the distribution
func NewCategorical(gen ports.Generator, weights []float64, opts ...Option[CategoricalParams, int]) (*Categorical, error) {
	m, err := newModel("categorical", gen, CategoricalParams{Weights: slices.Clone(weights)}, AreValidCategoricalParams, SampleCategorical, opts)
	if err != nil {
		return nil, err
	}
	return &Categorical{m}, nil
}

// NewCategoricalUniform builds n equally likely categories
func NewCategoricalUniform(gen ports.Generator, n int, opts ...Option[CategoricalParams, int]) (*Categorical, error) {
	if n <= 0 {
		return nil, errors.InvalidArgument("category count must be positive", ParamWeights)
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return NewCategorical(gen, w, opts...)
}

func (d *Categorical) Weights() []float64 { return slices.Clone(d.params.Weights) }

func (d *Categorical) IsValidWeights(w []float64) bool {
	return d.valid(CategoricalParams{Weights: w})
}

func (d *Categorical) SetWeights(w []float64) error {
	return d.update(CategoricalParams{Weights: slices.Clone(w)}, ParamWeights)
}

func (d *Categorical) Minimum() float64 { return 0 }
func (d *Categorical) Maximum() float64 { return float64(len(d.params.Weights) - 1) }

func (d *Categorical) probabilities() []float64 {
	sum := 0.0
	for _, w := range d.params.Weights {
		sum += w
	}
	out := make([]float64, len(d.params.Weights))
	for i, w := range d.params.Weights {
		out[i] = w / sum
	}
	return out
}

func (d *Categorical) Mean() (float64, error) {
	mean := 0.0
	for i, p := range d.probabilities() {
		mean += float64(i) * p
	}
	return mean, nil
}

// Median is the first category whose cumulative probability reaches one half
func (d *Categorical) Median() (float64, error) {
	acc := 0.0
	probs := d.probabilities()
	for i, p := range probs {
		acc += p
		if acc >= 0.5 {
			return float64(i), nil
		}
	}
	return float64(len(probs) - 1), nil
}

func (d *Categorical) Variance() (float64, error) {
	mean, _ := d.Mean()
	variance := 0.0
	for i, p := range d.probabilities() {
		variance += p * square(float64(i)-mean)
	}
	return variance, nil
}

func (d *Categorical) Mode() ([]float64, error) {
	top := math.Inf(-1)
	for _, w := range d.params.Weights {
		top = math.Max(top, w)
	}
	var modes []float64
	for i, w := range d.params.Weights {
		if w == top {
			modes = append(modes, float64(i))
		}
	}
	return modes, nil
}
