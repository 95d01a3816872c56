package catalog

import (
	"randist/domain/dist"
	"randist/ports"
)

const (
	alpha   = dist.ParamAlpha
	beta    = dist.ParamBeta
	gamma   = dist.ParamGamma
	lambda  = dist.ParamLambda
	mu      = dist.ParamMu
	nu      = dist.ParamNu
	sigma   = dist.ParamSigma
	theta   = dist.ParamTheta
	weights = dist.ParamWeights
)

func init() {
	// continuous
	register(Entry{
		Name:   "beta",
		Params: []Param{fparam(alpha, dist.DefaultBetaAlpha), fparam(beta, dist.DefaultBetaBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewBeta(g, a.float(alpha, dist.DefaultBetaAlpha), a.float(beta, dist.DefaultBetaBeta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "betaprime",
		Params: []Param{fparam(alpha, dist.DefaultBetaPrimeAlpha), fparam(beta, dist.DefaultBetaPrimeBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewBetaPrime(g, a.float(alpha, dist.DefaultBetaPrimeAlpha), a.float(beta, dist.DefaultBetaPrimeBeta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "cauchy",
		Params: []Param{fparam(alpha, dist.DefaultCauchyAlpha), fparam(gamma, dist.DefaultCauchyGamma)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewCauchy(g, a.float(alpha, dist.DefaultCauchyAlpha), a.float(gamma, dist.DefaultCauchyGamma))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "chi",
		Params: []Param{iparam(alpha, dist.DefaultChiAlpha)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewChi(g, a.int(alpha, dist.DefaultChiAlpha))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "chisquare",
		Params: []Param{iparam(alpha, dist.DefaultChiSquareAlpha)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewChiSquare(g, a.int(alpha, dist.DefaultChiSquareAlpha))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "continuousuniform",
		Params: []Param{fparam(alpha, dist.DefaultContinuousUniformAlpha), fparam(beta, dist.DefaultContinuousUniformBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewContinuousUniform(g, a.float(alpha, dist.DefaultContinuousUniformAlpha), a.float(beta, dist.DefaultContinuousUniformBeta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "erlang",
		Params: []Param{iparam(alpha, dist.DefaultErlangAlpha), fparam(lambda, dist.DefaultErlangLambda)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewErlang(g, a.int(alpha, dist.DefaultErlangAlpha), a.float(lambda, dist.DefaultErlangLambda))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "exponential",
		Params: []Param{fparam(lambda, dist.DefaultExponentialLambda)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewExponential(g, a.float(lambda, dist.DefaultExponentialLambda))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "fishersnedecor",
		Params: []Param{iparam(alpha, dist.DefaultFisherSnedecorAlpha), iparam(beta, dist.DefaultFisherSnedecorBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewFisherSnedecor(g, a.int(alpha, dist.DefaultFisherSnedecorAlpha), a.int(beta, dist.DefaultFisherSnedecorBeta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "fishertippett",
		Params: []Param{fparam(alpha, dist.DefaultFisherTippettAlpha), fparam(mu, dist.DefaultFisherTippettMu)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewFisherTippett(g, a.float(alpha, dist.DefaultFisherTippettAlpha), a.float(mu, dist.DefaultFisherTippettMu))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "gamma",
		Params: []Param{fparam(alpha, dist.DefaultGammaAlpha), fparam(theta, dist.DefaultGammaTheta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewGamma(g, a.float(alpha, dist.DefaultGammaAlpha), a.float(theta, dist.DefaultGammaTheta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "laplace",
		Params: []Param{fparam(alpha, dist.DefaultLaplaceAlpha), fparam(mu, dist.DefaultLaplaceMu)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewLaplace(g, a.float(alpha, dist.DefaultLaplaceAlpha), a.float(mu, dist.DefaultLaplaceMu))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "lognormal",
		Params: []Param{fparam(mu, dist.DefaultLognormalMu), fparam(sigma, dist.DefaultLognormalSigma)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewLognormal(g, a.float(mu, dist.DefaultLognormalMu), a.float(sigma, dist.DefaultLognormalSigma))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "normal",
		Params: []Param{fparam(mu, dist.DefaultNormalMu), fparam(sigma, dist.DefaultNormalSigma)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewNormal(g, a.float(mu, dist.DefaultNormalMu), a.float(sigma, dist.DefaultNormalSigma))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "pareto",
		Params: []Param{fparam(alpha, dist.DefaultParetoAlpha), fparam(beta, dist.DefaultParetoBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewPareto(g, a.float(alpha, dist.DefaultParetoAlpha), a.float(beta, dist.DefaultParetoBeta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "power",
		Params: []Param{fparam(alpha, dist.DefaultPowerAlpha), fparam(beta, dist.DefaultPowerBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewPower(g, a.float(alpha, dist.DefaultPowerAlpha), a.float(beta, dist.DefaultPowerBeta))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "rayleigh",
		Params: []Param{fparam(sigma, dist.DefaultRayleighSigma)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewRayleigh(g, a.float(sigma, dist.DefaultRayleighSigma))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "studentst",
		Params: []Param{iparam(nu, dist.DefaultStudentsTNu)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewStudentsT(g, a.int(nu, dist.DefaultStudentsTNu))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name: "triangular",
		Params: []Param{
			fparam(alpha, dist.DefaultTriangularAlpha),
			fparam(beta, dist.DefaultTriangularBeta),
			fparam(gamma, dist.DefaultTriangularGamma),
		},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewTriangular(g,
				a.float(alpha, dist.DefaultTriangularAlpha),
				a.float(beta, dist.DefaultTriangularBeta),
				a.float(gamma, dist.DefaultTriangularGamma))
			return continuous(d, err)
		},
	})
	register(Entry{
		Name:   "weibull",
		Params: []Param{fparam(alpha, dist.DefaultWeibullAlpha), fparam(lambda, dist.DefaultWeibullLambda)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewWeibull(g, a.float(alpha, dist.DefaultWeibullAlpha), a.float(lambda, dist.DefaultWeibullLambda))
			return continuous(d, err)
		},
	})

	// discrete
	register(Entry{
		Name:     "bernoulli",
		Discrete: true,
		Params:   []Param{fparam(alpha, dist.DefaultBernoulliAlpha)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewBernoulli(g, a.float(alpha, dist.DefaultBernoulliAlpha))
			return discreteOf(d, err)
		},
	})
	register(Entry{
		Name:     "binomial",
		Discrete: true,
		Params:   []Param{fparam(alpha, dist.DefaultBinomialAlpha), iparam(beta, dist.DefaultBinomialBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewBinomial(g, a.float(alpha, dist.DefaultBinomialAlpha), a.int(beta, dist.DefaultBinomialBeta))
			return discreteOf(d, err)
		},
	})
	register(Entry{
		Name:     "categorical",
		Discrete: true,
		Params:   []Param{{weights, formatFloats(dist.DefaultCategoricalWeights)}},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewCategorical(g, a.floats(weights, dist.DefaultCategoricalWeights))
			return discreteOf(d, err)
		},
	})
	register(Entry{
		Name:     "discreteuniform",
		Discrete: true,
		Params:   []Param{iparam(alpha, dist.DefaultDiscreteUniformAlpha), iparam(beta, dist.DefaultDiscreteUniformBeta)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewDiscreteUniform(g, a.int(alpha, dist.DefaultDiscreteUniformAlpha), a.int(beta, dist.DefaultDiscreteUniformBeta))
			return discreteOf(d, err)
		},
	})
	register(Entry{
		Name:     "geometric",
		Discrete: true,
		Params:   []Param{fparam(alpha, dist.DefaultGeometricAlpha)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewGeometric(g, a.float(alpha, dist.DefaultGeometricAlpha))
			return discreteOf(d, err)
		},
	})
	register(Entry{
		Name:     "poisson",
		Discrete: true,
		Params:   []Param{fparam(lambda, dist.DefaultPoissonLambda)},
		build: func(g ports.Generator, a *args) (Sampler, error) {
			d, err := dist.NewPoisson(g, a.float(lambda, dist.DefaultPoissonLambda))
			return discreteOf(d, err)
		},
	})
}
