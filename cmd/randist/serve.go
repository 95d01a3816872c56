package main

import (
	"github.com/spf13/cobra"

	"randist/adapters/api"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve samples and profiles over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.NewServer(api.ConfigFrom(a.cfg), a.log).ListenAndServe(cmd.Context())
		},
	}
}
