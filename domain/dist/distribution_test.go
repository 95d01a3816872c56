package dist_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randist/adapters/generators"
	"randist/domain/dist"
	"randist/internal/errors"
	"randist/internal/testkit"
	"randist/ports"
)

func TestNilGeneratorIsNullReference(t *testing.T) {
	_, err := dist.NewNormal(nil, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.IsNullReference(err))

	_, err = dist.NewPoisson(nil, 1)
	assert.True(t, errors.IsNullReference(err))

	d, err := dist.NewExponential(generators.NewDefaultSeeded(1), 1)
	require.NoError(t, err)
	assert.True(t, errors.IsNullReference(d.SetGenerator(nil)))
	assert.NotNil(t, d.Generator())
}

func TestInvalidConstructionNamesParameters(t *testing.T) {
	g := generators.NewDefaultSeeded(1)

	_, err := dist.NewNormal(g, math.NaN(), 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.ElementsMatch(t, []string{dist.ParamMu, dist.ParamSigma}, errors.GetParams(err))

	_, err = dist.NewGamma(g, 2, -1)
	assert.Equal(t, []string{dist.ParamTheta}, errors.GetParams(err))

	// joint predicates blame every parameter
	_, err = dist.NewContinuousUniform(g, 3, 1)
	assert.ElementsMatch(t, []string{dist.ParamAlpha, dist.ParamBeta}, errors.GetParams(err))
}

func TestDiscreteUniformRejectsMaxInt32Beta(t *testing.T) {
	_, err := dist.NewDiscreteUniform(generators.NewDefaultSeeded(1), 50, math.MaxInt32)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, errors.GetParams(err), dist.ParamBeta)
}

func TestGeometricRejectsAlphaAboveOne(t *testing.T) {
	d, err := dist.NewGeometric(generators.NewDefaultSeeded(1), dist.DefaultGeometricAlpha)
	require.NoError(t, err)

	err = d.SetAlpha(1.5)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, dist.DefaultGeometricAlpha, d.Alpha())

	require.NoError(t, d.SetAlpha(1))
	assert.Equal(t, 1, d.Sample())
}

func TestWithSamplerReplacesAlgorithm(t *testing.T) {
	g := generators.NewDefaultSeeded(1)
	fixed := dist.WithSampler[dist.ExponentialParams, float64](func(ports.Generator, dist.ExponentialParams) float64 {
		return 42
	})

	d, err := dist.NewExponential(g, 1, fixed)
	require.NoError(t, err)
	assert.Equal(t, 42.0, d.Sample())
	assert.Equal(t, []float64{42, 42}, d.SampleN(2))
}

func TestWithValidatorReplacesPredicate(t *testing.T) {
	g := generators.NewDefaultSeeded(1)
	anything := dist.WithValidator[dist.NormalParams, float64](func(dist.NormalParams) bool { return true })

	d, err := dist.NewNormal(g, 0, -1, anything)
	require.NoError(t, err)
	assert.True(t, d.IsValidSigma(-2))
	require.NoError(t, d.SetSigma(-2))
	assert.Equal(t, -2.0, d.Sigma())

	// the package-level predicate is untouched
	assert.False(t, dist.IsValidNormalSigma(-2))
}

func TestSameSeedSameSamples(t *testing.T) {
	a, err := dist.NewGamma(generators.NewDefaultSeeded(42), 0.7, 2)
	require.NoError(t, err)
	b, err := dist.NewGamma(generators.NewDefaultSeeded(42), 0.7, 2)
	require.NoError(t, err)

	assert.Equal(t, a.SampleN(500), b.SampleN(500))

	a.Generator().Reset()
	b.Generator().Reset()
	assert.Equal(t, a.Sample(), b.Sample())
}

func TestSamplingDoesNotChangeParameters(t *testing.T) {
	d, err := dist.NewWeibull(generators.NewDefaultSeeded(3), 1.5, 2)
	require.NoError(t, err)
	before := d.Params()
	d.SampleN(100)
	assert.Equal(t, before, d.Params())
}

func TestSamplesStream(t *testing.T) {
	d, err := dist.NewPoisson(generators.NewDefaultSeeded(9), 3)
	require.NoError(t, err)
	ref, err := dist.NewPoisson(generators.NewDefaultSeeded(9), 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := d.Samples(ctx)

	got := make([]int, 10)
	for i := range got {
		got[i] = <-ch
	}
	cancel()
	for range ch {
	}

	assert.Equal(t, ref.SampleN(10), got)
}

func TestSampleNNonPositive(t *testing.T) {
	d, err := dist.NewBernoulli(generators.NewDefaultSeeded(1), 0.5)
	require.NoError(t, err)
	assert.Nil(t, d.SampleN(0))
	assert.Nil(t, d.SampleN(-3))
}

func TestNormalDiscardsOneOfThePair(t *testing.T) {
	// v1 = 0.5, v2 = -0.5, then a coin word whose low bit is 1
	engine := testkit.NewCountingEngine(testkit.NewScriptedEngine(0xC0000000, 0x40000000, 1))
	g := generators.New(engine, 0)

	d, err := dist.NewNormal(g, 0, 1)
	require.NoError(t, err)

	y := math.Sqrt(-2 * math.Log(0.5) / 0.5)
	assert.InDelta(t, 0.5*y, d.Sample(), 1e-12)
	assert.Equal(t, 3, engine.Draws)

	// the next coin comes from the buffered word, so no extra draw
	assert.InDelta(t, -0.5*y, d.Sample(), 1e-12)
	assert.Equal(t, 5, engine.Draws)
}

func TestExponentialRedrawsZero(t *testing.T) {
	engine := testkit.NewCountingEngine(testkit.NewScriptedEngine(0, 0, 0x80000000))
	d, err := dist.NewExponential(generators.New(engine, 0), 1)
	require.NoError(t, err)

	assert.InDelta(t, math.Ln2, d.Sample(), 1e-12)
	assert.Equal(t, 3, engine.Draws)
}
