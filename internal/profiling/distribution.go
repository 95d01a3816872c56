package profiling

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"randist/domain/core"
	"randist/domain/dist"
	"randist/internal/errors"
)

// Reference is a continuous distribution with a CDF and its inverse
type Reference interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}

// Summary holds sample statistics
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
}

// Expected holds the closed-form properties of the sampled distribution;
// nil fields are undefined for its parameters
type Expected struct {
	Mean     *float64 `json:"mean,omitempty"`
	Variance *float64 `json:"variance,omitempty"`
	Median   *float64 `json:"median,omitempty"`
}

// GoodnessOfFit is a Kolmogorov-Smirnov comparison against a reference
type GoodnessOfFit struct {
	Statistic       float64 `json:"statistic"`
	PValue          float64 `json:"p_value"`
	ReferencePoints int     `json:"reference_points"`
}

// Profile describes a sample and how it compares to its distribution
type Profile struct {
	ID           core.ProfileID `json:"id"`
	Distribution string         `json:"distribution"`
	Summary      Summary        `json:"summary"`
	Skewness     float64        `json:"skewness"`
	Kurtosis     float64        `json:"excess_kurtosis"`
	Expected     Expected       `json:"expected"`
	Fit          *GoodnessOfFit `json:"fit,omitempty"`
}

const (
	minReferencePoints = 1000
	maxReferencePoints = 20000
)

// Analyzer profiles samples against their distribution
type Analyzer struct{}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Summarize computes summary statistics
func (da *Analyzer) Summarize(data []float64) (Summary, error) {
	summary := Summary{Count: len(data)}
	if len(data) == 0 {
		return summary, errors.InvalidArgument("cannot summarize an empty sample", "samples")
	}

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, errors.Wrap(err, "mean")
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, errors.Wrap(err, "min")
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, errors.Wrap(err, "max")
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, errors.Wrap(err, "median")
	}
	if summary.Q25, err = quartile(data, 25); err != nil {
		return summary, errors.Wrap(err, "q25")
	}
	if summary.Q75, err = quartile(data, 75); err != nil {
		return summary, errors.Wrap(err, "q75")
	}

	// a single observation has no sample variance
	if len(data) > 1 {
		if summary.Variance, err = stats.SampleVariance(data); err != nil {
			return summary, errors.Wrap(err, "variance")
		}
		summary.StdDev = math.Sqrt(summary.Variance)
	}
	return summary, nil
}

// quartile falls back to the nearest rank below four observations, where the
// interpolating percentile has no lower neighbour to average with
func quartile(data []float64, percent float64) (float64, error) {
	if len(data) < 4 {
		return stats.PercentileNearestRank(data, percent)
	}
	return stats.Percentile(data, percent)
}

// Profile summarizes data drawn from d. ref may be nil when no reference
// implementation exists, in which case the goodness of fit is skipped.
func (da *Analyzer) Profile(name string, data []float64, d dist.Distribution, ref Reference) (*Profile, error) {
	summary, err := da.Summarize(data)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		ID:           core.NewProfileID(),
		Distribution: name,
		Summary:      summary,
	}
	if len(data) > 3 {
		p.Skewness = stat.Skew(data, nil)
		p.Kurtosis = stat.ExKurtosis(data, nil)
	}

	if d != nil {
		p.Expected = expectedOf(d)
	}
	if ref != nil {
		fit := da.KolmogorovSmirnov(data, ref)
		p.Fit = &fit
	}
	return p, nil
}

func expectedOf(d dist.Distribution) Expected {
	var e Expected
	if v, err := d.Mean(); err == nil {
		e.Mean = &v
	}
	if v, err := d.Variance(); err == nil {
		e.Variance = &v
	}
	if v, err := d.Median(); err == nil {
		e.Median = &v
	}
	return e
}

// KolmogorovSmirnov compares data with a quantile grid of ref. The
// statistic is the largest distance between the two empirical CDFs and the
// p-value uses the asymptotic Kolmogorov distribution at the effective
// sample size of the two-sample test.
func (da *Analyzer) KolmogorovSmirnov(data []float64, ref Reference) GoodnessOfFit {
	x := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			x = append(x, v)
		}
	}
	sort.Float64s(x)

	m := len(x)
	if m < minReferencePoints {
		m = minReferencePoints
	}
	if m > maxReferencePoints {
		m = maxReferencePoints
	}
	grid := make([]float64, m)
	for i := range grid {
		grid[i] = ref.Quantile((float64(i) + 0.5) / float64(m))
	}
	sort.Float64s(grid)

	d := stat.KolmogorovSmirnov(x, nil, grid, nil)
	n := float64(len(x)) * float64(m) / float64(len(x)+m)
	return GoodnessOfFit{
		Statistic:       d,
		PValue:          kolmogorovPValue(d, n),
		ReferencePoints: m,
	}
}

// kolmogorovPValue is the survival function of the Kolmogorov distribution
// with the small sample correction of Stephens
func kolmogorovPValue(d, n float64) float64 {
	if n <= 0 || math.IsNaN(d) {
		return 0
	}
	sn := math.Sqrt(n)
	lambda := (sn + 0.12 + 0.11/sn) * d
	if lambda < 0.2 {
		return 1
	}

	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}
	return math.Max(0, math.Min(1, 2*sum))
}
