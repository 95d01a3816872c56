package catalog

import (
	"gonum.org/v1/gonum/stat/distuv"

	"randist/domain/dist"
)

// Reference is an independent implementation of a continuous distribution,
// used to check samples against
type Reference interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}

// ReferenceFor returns the gonum counterpart of s with the same parameters.
// Discrete distributions and those gonum lacks report false.
func ReferenceFor(s Sampler) (Reference, bool) {
	switch d := Unwrap(s).(type) {
	case *dist.Normal:
		return distuv.Normal{Mu: d.Mu(), Sigma: d.Sigma()}, true
	case *dist.Exponential:
		return distuv.Exponential{Rate: d.Lambda()}, true
	case *dist.Gamma:
		return distuv.Gamma{Alpha: d.Alpha(), Beta: 1 / d.Theta()}, true
	case *dist.Erlang:
		return distuv.Gamma{Alpha: float64(d.Alpha()), Beta: d.Lambda()}, true
	case *dist.Beta:
		return distuv.Beta{Alpha: d.Alpha(), Beta: d.Beta()}, true
	case *dist.Chi:
		return distuv.Chi{K: float64(d.Alpha())}, true
	case *dist.ChiSquare:
		return distuv.ChiSquared{K: float64(d.Alpha())}, true
	case *dist.StudentsT:
		return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(d.Nu())}, true
	case *dist.FisherSnedecor:
		return distuv.F{D1: float64(d.Alpha()), D2: float64(d.Beta())}, true
	case *dist.Lognormal:
		if d.Sigma() == 0 {
			return nil, false
		}
		return distuv.LogNormal{Mu: d.Mu(), Sigma: d.Sigma()}, true
	case *dist.Laplace:
		return distuv.Laplace{Mu: d.Mu(), Scale: d.Alpha()}, true
	case *dist.FisherTippett:
		return distuv.GumbelRight{Mu: d.Mu(), Beta: d.Alpha()}, true
	case *dist.Pareto:
		return distuv.Pareto{Xm: d.Alpha(), Alpha: d.Beta()}, true
	case *dist.ContinuousUniform:
		if d.Alpha() == d.Beta() {
			return nil, false
		}
		return distuv.Uniform{Min: d.Alpha(), Max: d.Beta()}, true
	case *dist.Weibull:
		return distuv.Weibull{K: d.Alpha(), Lambda: d.Lambda()}, true
	case *dist.Triangular:
		return distuv.NewTriangle(d.Alpha(), d.Beta(), d.Gamma(), nil), true
	}
	return nil, false
}
