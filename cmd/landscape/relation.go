package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRelateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relate <relation-type> <start-name> <end-name>",
		Short: "Create a relationship between two existing nodes",
		Long: `Create a relationship of the given type. The endpoint node types come
from the relation configuration; the nodes themselves are matched by name.
Creating the same relationship twice is a no-op.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			relType, startName, endName := args[0], args[1], args[2]
			spec, ok := registry.Relation(relType)
			if !ok {
				return fmt.Errorf("unknown relation type %q, try 'landscape types'", relType)
			}

			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			_, created, err := crud.CreateRelationship(ctx, spec.StartNodeType, startName, spec.EndNodeType, endName, relType, nil)
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("no relationship created: %s %q or %s %q not found",
					spec.StartNodeType, startName, spec.EndNodeType, endName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "(%s)-[%s]->(%s) saved\n", startName, relType, endName)
			return nil
		},
	}
}

func newRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations <node-type> <name>",
		Short: "Show a node's relationships in both directions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeType, name := args[0], args[1]
			if _, ok := registry.Node(nodeType); !ok {
				return fmt.Errorf("unknown node type %q, try 'landscape types'", nodeType)
			}

			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			relations, err := crud.RelationsByName(ctx, nodeType, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for relType, sides := range relations {
				for _, neighbor := range sides.Out {
					fmt.Fprintf(out, "(%s)-[%s]->(%s %s)\n", name, relType, neighbor.Label, neighbor.Name)
				}
				for _, neighbor := range sides.In {
					fmt.Fprintf(out, "(%s %s)-[%s]->(%s)\n", neighbor.Label, neighbor.Name, relType, name)
				}
			}
			return nil
		},
	}
}
