package main

import (
	"bufio"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		n      int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sample <distribution> [name=value...]",
		Short: "Draw samples from a distribution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := a.sampler(args)
			if err != nil {
				return err
			}

			samples := make([]float64, a.count(n))
			for i := range samples {
				samples[i] = s.Sample()
			}
			a.log.Debug("sampled", "distribution", args[0], "count", len(samples))

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(samples)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, v := range samples {
				w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of samples (default from RANDIST_SAMPLES)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}
