package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"randist/adapters/generators"
	"randist/internal/catalog"
)

func newGeneratorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List generator engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range generators.Names() {
				marker := ""
				if name == generators.DefaultEngine {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
			}
			return nil
		},
	}
}

func newDistributionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distributions",
		Short: "List distributions and their parameter defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.Names() {
				e, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				kind := "continuous"
				if e.Discrete {
					kind = "discrete"
				}
				params := make([]string, len(e.Params))
				for i, p := range e.Params {
					params[i] = p.Name + "=" + p.Default
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10s %s\n", e.Name, kind, strings.Join(params, " "))
			}
			return nil
		},
	}
}
