package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"randist/domain/core"
	"randist/internal/profiling"
)

func fixture() *profiling.Profile {
	mean := 0.5
	return &profiling.Profile{
		ID:           core.NewProfileID(),
		Distribution: "continuousuniform",
		Summary:      profiling.Summary{Count: 10, Mean: 0.49, Variance: 0.08},
		Expected:     profiling.Expected{Mean: &mean},
		Fit:          &profiling.GoodnessOfFit{Statistic: 0.1, PValue: 0.9, ReferencePoints: 1000},
	}
}

func TestMarkdown(t *testing.T) {
	h := Header{Engine: "xorshift128", Seed: 42, Params: map[string]string{"beta": "1", "alpha": "0"}}
	md := string(Markdown(h, fixture()))

	assert.Contains(t, md, "# Profile: continuousuniform")
	assert.Contains(t, md, "xorshift128 (seed 42)")
	assert.Contains(t, md, "alpha=0, beta=1")
	assert.Contains(t, md, "| Mean | 0.49 | 0.5 |")
	assert.Contains(t, md, "| Variance | 0.08 | undefined |")
	assert.Contains(t, md, "D = 0.1, p = 0.9 (1000 reference points)")
}

func TestMarkdownWithoutReference(t *testing.T) {
	p := fixture()
	p.Fit = nil
	md := string(Markdown(Header{Engine: "mt19937"}, p))

	assert.Contains(t, md, "No reference distribution")
	assert.NotContains(t, md, "Parameters:")
}

func TestHTML(t *testing.T) {
	out := string(HTML(Header{Engine: "alf", Seed: 1}, fixture()))

	assert.True(t, strings.HasPrefix(out, "<h1"))
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>0.49</td>")
}
