package main

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"randist/adapters/excel"
	"randist/internal/catalog"
	"randist/internal/errors"
	"randist/internal/profiling"
	"randist/internal/report"
)

func newProfileCmd(a *app) *cobra.Command {
	var (
		n        int
		htmlPath string
		asJSON   bool
		input    string
		column   string
	)

	cmd := &cobra.Command{
		Use:   "profile <distribution> [name=value...]",
		Short: "Compare samples against the distribution they should follow",
		Long: "Draws samples, or reads them from --input, and reports summary statistics, " +
			"the closed-form moments and a Kolmogorov-Smirnov goodness of fit.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, params, err := a.sampler(args)
			if err != nil {
				return err
			}

			var data []float64
			if input != "" {
				if data, err = readColumn(input, column); err != nil {
					return err
				}
			} else {
				data = make([]float64, a.count(n))
				for i := range data {
					data[i] = s.Sample()
				}
			}

			ref, _ := catalog.ReferenceFor(s)
			p, err := profiling.NewAnalyzer().Profile(args[0], data, catalog.Unwrap(s), ref)
			if err != nil {
				return err
			}
			a.log.Info("profiled", "distribution", args[0], "profile_id", p.ID, "count", p.Summary.Count)

			h := report.Header{Engine: a.cfg.Sampling.Engine, Seed: a.cfg.Sampling.Seed, Params: params}
			if htmlPath != "" {
				if err := os.WriteFile(htmlPath, report.HTML(h, p), 0o644); err != nil {
					return errors.Wrapf(err, "failed to write %s", htmlPath)
				}
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			_, err = cmd.OutOrStdout().Write(report.Markdown(h, p))
			return err
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of samples (default from RANDIST_SAMPLES)")
	cmd.Flags().StringVar(&htmlPath, "html", "", "also write an HTML report to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON instead of markdown")
	cmd.Flags().StringVar(&input, "input", "", "profile samples from an .xlsx or .csv file instead of drawing them")
	cmd.Flags().StringVar(&column, "column", "", "column of --input to profile (default the first)")
	return cmd
}

func readColumn(path, name string) ([]float64, error) {
	t, err := excel.Read(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(t.Columns) == 0 {
			return nil, errors.InvalidArgument(path+" has no columns", "input")
		}
		return t.Columns[0].Values, nil
	}
	c, ok := t.Column(name)
	if !ok {
		return nil, errors.InvalidArgument("no column named "+name+" in "+path, "column")
	}
	return c.Values, nil
}
