package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randist/adapters/generators"
	"randist/domain/dist"
	"randist/internal/errors"
	"randist/internal/testkit"
)

const sampleCount = 100000

func TestExponentialMean(t *testing.T) {
	d, err := dist.NewExponential(generators.NewDefaultSeeded(2024), 2)
	require.NoError(t, err)

	mean, _ := testkit.Moments(t, d.SampleN(sampleCount))
	testkit.RequireClose(t, "mean", 0.5, mean, 0.05)
}

func TestContinuousMoments(t *testing.T) {
	g := generators.NewDefaultSeeded(77)

	tests := []struct {
		name    string
		dist    dist.Continuous
		meanTol float64
		varTol  float64
	}{
		{"normal", must[*dist.Normal](t)(dist.NewNormal(g, 0, 1)), 0.02, 0.03},
		{"normal shifted", must[*dist.Normal](t)(dist.NewNormal(g, 10, 3)), 0.02, 0.03},
		{"gamma", must[*dist.Gamma](t)(dist.NewGamma(g, 2, 3)), 0.03, 0.05},
		{"gamma small shape", must[*dist.Gamma](t)(dist.NewGamma(g, 0.5, 1)), 0.03, 0.06},
		{"erlang", must[*dist.Erlang](t)(dist.NewErlang(g, 3, 2)), 0.03, 0.05},
		{"beta", must[*dist.Beta](t)(dist.NewBeta(g, 2, 3)), 0.03, 0.05},
		{"beta prime", must[*dist.BetaPrime](t)(dist.NewBetaPrime(g, 3, 6)), 0.03, 0.12},
		{"chi", must[*dist.Chi](t)(dist.NewChi(g, 3)), 0.03, 0.05},
		{"chi square", must[*dist.ChiSquare](t)(dist.NewChiSquare(g, 4)), 0.03, 0.05},
		{"students t", must[*dist.StudentsT](t)(dist.NewStudentsT(g, 6)), 0.03, 0.1},
		{"fisher snedecor", must[*dist.FisherSnedecor](t)(dist.NewFisherSnedecor(g, 5, 12)), 0.03, 0.15},
		{"continuous uniform", must[*dist.ContinuousUniform](t)(dist.NewContinuousUniform(g, -1, 3)), 0.03, 0.03},
		{"fisher tippett", must[*dist.FisherTippett](t)(dist.NewFisherTippett(g, 1, 2)), 0.03, 0.05},
		{"laplace", must[*dist.Laplace](t)(dist.NewLaplace(g, 1, 4)), 0.03, 0.05},
		{"lognormal", must[*dist.Lognormal](t)(dist.NewLognormal(g, 0, 0.5)), 0.03, 0.06},
		{"pareto", must[*dist.Pareto](t)(dist.NewPareto(g, 1, 6)), 0.03, 0.12},
		{"power", must[*dist.Power](t)(dist.NewPower(g, 2, 1)), 0.03, 0.05},
		{"rayleigh", must[*dist.Rayleigh](t)(dist.NewRayleigh(g, 2)), 0.03, 0.05},
		{"triangular", must[*dist.Triangular](t)(dist.NewTriangular(g, 0, 2, 0.5)), 0.03, 0.05},
		{"weibull", must[*dist.Weibull](t)(dist.NewWeibull(g, 2, 1)), 0.03, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := make([]float64, sampleCount)
			for i := range samples {
				v := tt.dist.Sample()
				if v < tt.dist.Minimum() || v > tt.dist.Maximum() {
					t.Fatalf("sample %v outside [%v, %v]", v, tt.dist.Minimum(), tt.dist.Maximum())
				}
				samples[i] = v
			}

			wantMean, err := tt.dist.Mean()
			require.NoError(t, err)
			wantVar, err := tt.dist.Variance()
			require.NoError(t, err)

			mean, variance := testkit.Moments(t, samples)
			testkit.RequireClose(t, "mean", wantMean, mean, tt.meanTol)
			testkit.RequireClose(t, "variance", wantVar, variance, tt.varTol)
		})
	}
}

func TestDiscreteMoments(t *testing.T) {
	g := generators.NewDefaultSeeded(99)

	tests := []struct {
		name string
		dist dist.Discrete
	}{
		{"bernoulli", must[*dist.Bernoulli](t)(dist.NewBernoulli(g, 0.3))},
		{"binomial", must[*dist.Binomial](t)(dist.NewBinomial(g, 0.4, 20))},
		{"categorical", must[*dist.Categorical](t)(dist.NewCategorical(g, []float64{1, 2, 3, 4}))},
		{"discrete uniform", must[*dist.DiscreteUniform](t)(dist.NewDiscreteUniform(g, -3, 7))},
		{"geometric", must[*dist.Geometric](t)(dist.NewGeometric(g, 0.25))},
		{"poisson", must[*dist.Poisson](t)(dist.NewPoisson(g, 4.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := make([]int, sampleCount)
			for i := range samples {
				v := tt.dist.Sample()
				if float64(v) < tt.dist.Minimum() || float64(v) > tt.dist.Maximum() {
					t.Fatalf("sample %d outside [%v, %v]", v, tt.dist.Minimum(), tt.dist.Maximum())
				}
				samples[i] = v
			}

			wantMean, err := tt.dist.Mean()
			require.NoError(t, err)
			wantVar, err := tt.dist.Variance()
			require.NoError(t, err)

			mean, variance := testkit.Moments(t, testkit.Floats(samples))
			testkit.RequireClose(t, "mean", wantMean, mean, 0.03)
			testkit.RequireClose(t, "variance", wantVar, variance, 0.05)
		})
	}
}

func TestPoissonLargeRates(t *testing.T) {
	for _, lambda := range []float64{500, 1000, 5000} {
		d, err := dist.NewPoisson(generators.NewDefaultSeeded(42), lambda)
		require.NoError(t, err)

		mean, variance := testkit.Moments(t, testkit.Floats(d.SampleN(2000)))
		testkit.RequireClose(t, "mean", lambda, mean, 0.01)
		testkit.RequireClose(t, "variance", lambda, variance, 0.15)
	}
}

func TestPoissonSmallRateSequence(t *testing.T) {
	d, err := dist.NewPoisson(generators.NewDefaultSeeded(42), 4.5)
	require.NoError(t, err)

	g := generators.NewDefaultSeeded(42)
	limit := math.Exp(-4.5)
	for i := 0; i < 1000; i++ {
		product := g.NextDouble()
		want := 0
		for product > limit {
			product *= g.NextDouble()
			want++
		}
		require.Equal(t, want, d.Sample(), "draw %d", i)
	}
}

func TestCategoricalSkipsZeroWeights(t *testing.T) {
	d, err := dist.NewCategorical(generators.NewDefaultSeeded(5), []float64{0, 1, 0, 1, 0})
	require.NoError(t, err)

	for _, v := range d.SampleN(10000) {
		assert.Contains(t, []int{1, 3}, v)
	}
}

func TestDiscreteUniformCoversBounds(t *testing.T) {
	d, err := dist.NewDiscreteUniform(generators.NewDefaultSeeded(5), 2, 4)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, v := range d.SampleN(1000) {
		seen[v] = true
	}
	assert.Equal(t, map[int]bool{2: true, 3: true, 4: true}, seen)
}

func TestUndefinedProperties(t *testing.T) {
	g := generators.NewDefaultSeeded(1)

	cauchy := must[*dist.Cauchy](t)(dist.NewCauchy(g, 0, 1))
	erlang := must[*dist.Erlang](t)(dist.NewErlang(g, 2, 1))
	weibull := must[*dist.Weibull](t)(dist.NewWeibull(g, 0.5, 1))
	power := must[*dist.Power](t)(dist.NewPower(g, 1, 1))
	gamma := must[*dist.Gamma](t)(dist.NewGamma(g, 0.5, 1))
	st1 := must[*dist.StudentsT](t)(dist.NewStudentsT(g, 1))
	st2 := must[*dist.StudentsT](t)(dist.NewStudentsT(g, 2))
	du := must[*dist.DiscreteUniform](t)(dist.NewDiscreteUniform(g, 0, 3))
	cu := must[*dist.ContinuousUniform](t)(dist.NewContinuousUniform(g, 0, 3))
	pareto := must[*dist.Pareto](t)(dist.NewPareto(g, 1, 2))

	tests := []struct {
		name string
		call func() error
	}{
		{"cauchy mean", func() error { _, err := cauchy.Mean(); return err }},
		{"cauchy variance", func() error { _, err := cauchy.Variance(); return err }},
		{"erlang median", func() error { _, err := erlang.Median(); return err }},
		{"weibull mode below one", func() error { _, err := weibull.Mode(); return err }},
		{"power mode at one", func() error { _, err := power.Mode(); return err }},
		{"gamma mode below one", func() error { _, err := gamma.Mode(); return err }},
		{"gamma median", func() error { _, err := gamma.Median(); return err }},
		{"students t mean", func() error { _, err := st1.Mean(); return err }},
		{"students t variance", func() error { _, err := st2.Variance(); return err }},
		{"discrete uniform mode", func() error { _, err := du.Mode(); return err }},
		{"continuous uniform mode", func() error { _, err := cu.Mode(); return err }},
		{"pareto variance", func() error { _, err := pareto.Variance(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.IsNotSupported(err))
		})
	}

	_, err := cauchy.Median()
	assert.NoError(t, err)
	_, err = st2.Mean()
	assert.NoError(t, err)
}

func TestModes(t *testing.T) {
	g := generators.NewDefaultSeeded(1)

	tests := []struct {
		name string
		dist dist.Distribution
		want []float64
	}{
		{"binomial integral", must[*dist.Binomial](t)(dist.NewBinomial(g, 0.5, 3)), []float64{1, 2}},
		{"binomial", must[*dist.Binomial](t)(dist.NewBinomial(g, 0.3, 10)), []float64{3}},
		{"binomial certain", must[*dist.Binomial](t)(dist.NewBinomial(g, 1, 4)), []float64{4}},
		{"poisson integral", must[*dist.Poisson](t)(dist.NewPoisson(g, 3)), []float64{2, 3}},
		{"poisson", must[*dist.Poisson](t)(dist.NewPoisson(g, 3.7)), []float64{3}},
		{"bernoulli fair", must[*dist.Bernoulli](t)(dist.NewBernoulli(g, 0.5)), []float64{0, 1}},
		{"categorical tie", must[*dist.Categorical](t)(dist.NewCategorical(g, []float64{1, 3, 3})), []float64{1, 2}},
		{"geometric", must[*dist.Geometric](t)(dist.NewGeometric(g, 0.2)), []float64{1}},
		{"triangular", must[*dist.Triangular](t)(dist.NewTriangular(g, 0, 4, 1)), []float64{1}},
		{"power above one", must[*dist.Power](t)(dist.NewPower(g, 2, 4)), []float64{0.25}},
		{"erlang", must[*dist.Erlang](t)(dist.NewErlang(g, 3, 2)), []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dist.Mode()
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestMedians(t *testing.T) {
	g := generators.NewDefaultSeeded(1)

	tests := []struct {
		name string
		dist dist.Distribution
		want float64
	}{
		{"exponential", must[*dist.Exponential](t)(dist.NewExponential(g, 2)), 0.34657359027997264},
		{"geometric certain", must[*dist.Geometric](t)(dist.NewGeometric(g, 1)), 1},
		{"geometric", must[*dist.Geometric](t)(dist.NewGeometric(g, 0.5)), 1},
		{"categorical", must[*dist.Categorical](t)(dist.NewCategorical(g, []float64{1, 1, 2})), 1},
		{"triangular symmetric", must[*dist.Triangular](t)(dist.NewTriangular(g, 0, 2, 1)), 1},
		{"bernoulli", must[*dist.Bernoulli](t)(dist.NewBernoulli(g, 0.7)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dist.Median()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}
