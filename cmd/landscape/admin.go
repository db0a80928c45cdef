package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digigo-nu/landscape"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity to the graph store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			executor, cleanup, err := connect(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !executor.IsAlive(ctx) {
				return fmt.Errorf("store did not answer")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "store is alive")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the baseline landscape dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if clear {
				if err := crud.ClearAll(ctx); err != nil {
					return err
				}
			}
			if err := landscape.Seed(ctx, crud); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed complete")
			return nil
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "empty the database before seeding")
	return cmd
}

func newClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every node and relationship",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the database without --yes")
			}
			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := crud.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "database cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive operation")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show node counts per type and store totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			counts := crud.CountsByLabels(ctx, registry.NodeTypes())
			for _, nodeType := range registry.NodeTypes() {
				fmt.Fprintf(out, "%-12s %d\n", nodeType, counts[nodeType])
			}

			nodes, err := crud.TotalNodeCount(ctx)
			if err != nil {
				return err
			}
			rels, err := crud.TotalRelationshipCount(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\ntotal nodes         %d\n", nodes)
			fmt.Fprintf(out, "total relationships %d\n", rels)
			return nil
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the configured node and relationship types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, spec := range registry.Nodes {
				fmt.Fprintf(out, "%s:\n", spec.Type)
				for _, field := range spec.Fields {
					fmt.Fprintf(out, "  %-20s %s\n", field.Name, describeField(field.Field))
				}
			}
			fmt.Fprintln(out)
			for _, rel := range registry.Relations {
				fmt.Fprintf(out, "(%s)-[%s]->(%s)\n", rel.StartNodeType, rel.Type, rel.EndNodeType)
			}
			return nil
		},
	}
}

func describeField(field landscape.Field) string {
	switch f := field.(type) {
	case landscape.TextField:
		return "text"
	case landscape.TextAreaField:
		return "multi-line text"
	case landscape.ChoiceField:
		return fmt.Sprintf("one of %v", f.Options)
	default:
		return "unknown"
	}
}
