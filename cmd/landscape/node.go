package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digigo-nu/landscape"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <node-type>",
		Short: "List the names of all nodes of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeType := args[0]
			if _, ok := registry.Node(nodeType); !ok {
				return fmt.Errorf("unknown node type %q, try 'landscape types'", nodeType)
			}

			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := crud.NodeNamesByType(ctx, nodeType)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <node-type> <name>",
		Short: "Show the properties of one node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeType, name := args[0], args[1]
			spec, ok := registry.Node(nodeType)
			if !ok {
				return fmt.Errorf("unknown node type %q, try 'landscape types'", nodeType)
			}

			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			props, err := crud.NodeProperties(ctx, nodeType, name)
			if errors.Is(err, landscape.ErrNotFound) {
				return fmt.Errorf("no %s named %q", nodeType, name)
			}
			if err != nil {
				return err
			}

			// Configured fields first, in form order, then anything extra.
			out := cmd.OutOrStdout()
			printed := make(map[string]bool)
			for _, field := range spec.Fields {
				if value, ok := props[field.Name]; ok {
					fmt.Fprintf(out, "%-20s %v\n", field.Name, value)
					printed[field.Name] = true
				}
			}
			for key, value := range props {
				if !printed[key] {
					fmt.Fprintf(out, "%-20s %v\n", key, value)
				}
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var insertOnly bool
	cmd := &cobra.Command{
		Use:   "add <node-type> <field>=<value>...",
		Short: "Create or update a node",
		Long: `Create or update a node of the given type. Fields are passed as
field=value pairs and validated against the type's form configuration. By
default an existing node with the same name is updated in place; with
--insert-only a name collision leaves the store untouched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeType := args[0]
			spec, ok := registry.Node(nodeType)
			if !ok {
				return fmt.Errorf("unknown node type %q, try 'landscape types'", nodeType)
			}

			props, err := parseFields(spec, args[1:])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if insertOnly {
				_, inserted, err := crud.InsertNode(ctx, nodeType, props)
				if err != nil {
					return err
				}
				if !inserted {
					fmt.Fprintf(out, "%s %q already exists, nothing inserted\n", nodeType, props["name"])
					return nil
				}
				fmt.Fprintf(out, "%s %q inserted\n", nodeType, props["name"])
				return nil
			}

			if _, err := crud.UpsertNode(ctx, nodeType, props); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %q saved\n", nodeType, props["name"])
			return nil
		},
	}
	cmd.Flags().BoolVar(&insertOnly, "insert-only", false, "fail softly instead of updating when the name already exists")
	return cmd
}

func newRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <node-type> <name>",
		Short: "Delete a node and its relationships",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeType, name := args[0], args[1]
			if _, ok := registry.Node(nodeType); !ok {
				return fmt.Errorf("unknown node type %q, try 'landscape types'", nodeType)
			}
			if !yes {
				return fmt.Errorf("refusing to delete %s %q without --yes", nodeType, name)
			}

			ctx := cmd.Context()
			crud, cleanup, err := connectCRUD(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			deleted, err := crud.DeleteNode(ctx, nodeType, name)
			if err != nil {
				return err
			}
			if deleted == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no %s named %q\n", nodeType, name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q deleted\n", nodeType, name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

// parseFields turns field=value arguments into a property map, validated
// against the node type's form configuration: unknown fields are rejected
// and choice fields only accept one of their configured options.
func parseFields(spec landscape.NodeSpec, args []string) (map[string]interface{}, error) {
	fields := make(map[string]landscape.Field, len(spec.Fields))
	for _, f := range spec.Fields {
		fields[f.Name] = f.Field
	}

	props := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		field, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%s has no field %q", spec.Type, key)
		}
		if choice, ok := field.(landscape.ChoiceField); ok {
			if !slices.Contains(choice.Options, value) {
				return nil, fmt.Errorf("%q is not a valid %s, expected one of %v", value, key, choice.Options)
			}
		}
		props[key] = value
	}

	if name, _ := props["name"].(string); name == "" {
		return nil, fmt.Errorf("a non-empty name is required")
	}
	return props, nil
}
