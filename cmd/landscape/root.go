package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/digigo-nu/landscape"
)

// registry drives which node and relationship types the commands accept.
var registry = landscape.DefaultRegistry()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "landscape",
		Short:         "Manage the software landscape graph",
		Long:          "landscape manages a Neo4j graph of project phases, roles, companies, software and categories.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPingCmd(),
		newSeedCmd(),
		newClearCmd(),
		newStatsCmd(),
		newTypesCmd(),
		newLsCmd(),
		newShowCmd(),
		newAddCmd(),
		newRmCmd(),
		newRelateCmd(),
		newRelationsCmd(),
		newExportCmd(),
	)
	return root
}

// connect builds the executor from the environment. The returned cleanup
// must be deferred; it releases the connection pool.
func connect(ctx context.Context) (*landscape.Neo4jExecutor, func(), error) {
	cfg, err := landscape.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	executor, err := landscape.NewNeo4jExecutor(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = executor.Close(ctx) }
	return executor, cleanup, nil
}

// connectCRUD is the common preamble of every data command.
func connectCRUD(ctx context.Context) (*landscape.GraphCRUD, func(), error) {
	executor, cleanup, err := connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	return landscape.NewGraphCRUD(executor), cleanup, nil
}
