package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/digigo-nu/landscape"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the whole graph as JSON nodes and edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			executor, cleanup, err := connect(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			manager := landscape.NewManager(executor)
			graph, err := manager.ExportGraph(ctx)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(graph)
		},
	}
}
