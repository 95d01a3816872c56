// Package report renders profiles as markdown and HTML
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"randist/internal/profiling"
)

// Header describes how the profiled sample was drawn
type Header struct {
	Engine string
	Seed   uint32
	Params map[string]string
}

// Markdown renders a profile as a markdown document
func Markdown(h Header, p *profiling.Profile) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profile: %s\n\n", p.Distribution)
	fmt.Fprintf(&b, "- Profile: `%s`\n", p.ID)
	fmt.Fprintf(&b, "- Engine: %s (seed %d)\n", h.Engine, h.Seed)
	if len(h.Params) > 0 {
		keys := make([]string, 0, len(h.Params))
		for k := range h.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%s", k, h.Params[k])
		}
		fmt.Fprintf(&b, "- Parameters: %s\n", strings.Join(pairs, ", "))
	}
	b.WriteString("\n## Summary\n\n")

	s := p.Summary
	b.WriteString("| Statistic | Sample | Expected |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Count | %d | |\n", s.Count)
	fmt.Fprintf(&b, "| Mean | %s | %s |\n", num(s.Mean), expected(p.Expected.Mean))
	fmt.Fprintf(&b, "| Variance | %s | %s |\n", num(s.Variance), expected(p.Expected.Variance))
	fmt.Fprintf(&b, "| Std. dev. | %s | |\n", num(s.StdDev))
	fmt.Fprintf(&b, "| Median | %s | %s |\n", num(s.Median), expected(p.Expected.Median))
	fmt.Fprintf(&b, "| Q25 | %s | |\n", num(s.Q25))
	fmt.Fprintf(&b, "| Q75 | %s | |\n", num(s.Q75))
	fmt.Fprintf(&b, "| Min | %s | |\n", num(s.Min))
	fmt.Fprintf(&b, "| Max | %s | |\n", num(s.Max))
	fmt.Fprintf(&b, "| Skewness | %s | |\n", num(p.Skewness))
	fmt.Fprintf(&b, "| Excess kurtosis | %s | |\n", num(p.Kurtosis))

	b.WriteString("\n## Goodness of fit\n\n")
	if p.Fit == nil {
		b.WriteString("No reference distribution is available for this sampler.\n")
	} else {
		fmt.Fprintf(&b, "Kolmogorov-Smirnov D = %s, p = %s (%d reference points).\n",
			num(p.Fit.Statistic), num(p.Fit.PValue), p.Fit.ReferencePoints)
	}
	return []byte(b.String())
}

// HTML renders a profile as a standalone HTML fragment
func HTML(h Header, p *profiling.Profile) []byte {
	md := Markdown(h, p)
	ps := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(md, ps, renderer)
}

func num(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

func expected(v *float64) string {
	if v == nil {
		return "undefined"
	}
	return num(*v)
}
