package landscape

import (
	"context"
	"fmt"
)

// Neighbor identifies the node on the far side of a relationship.
type Neighbor struct {
	Label string
	Name  string
}

// RelationSides groups the neighbors of a node for one relationship type,
// split by direction.
type RelationSides struct {
	// Out lists neighbors reached by relationships leaving the node.
	Out []Neighbor
	// In lists neighbors with relationships pointing at the node.
	In []Neighbor
}

// RelationsByName returns, per relationship type, the incoming and outgoing
// neighbors of the node identified by (label, name). Types with no
// relationships are absent from the map; a node without any relationships
// yields an empty map, not an error.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - label: The node label. Must match the identifier pattern.
//   - name: The name of the node whose surroundings are requested.
//
// Returns:
//
//	A map from relationship type to its neighbors in both directions.
func (c *GraphCRUD) RelationsByName(ctx context.Context, label, name string) (map[string]*RelationSides, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: 'name' must be provided to look up relations", ErrValidation)
	}
	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return nil, err
	}

	relations := make(map[string]*RelationSides)

	outQuery := fmt.Sprintf(
		"MATCH (n:%s {name: $name})-[r]->(m) "+
			"RETURN type(r) AS rel_type, head(labels(m)) AS other_label, m.name AS other_name",
		quotedLabel,
	)
	if err := c.collectNeighbors(ctx, outQuery, name, relations, true); err != nil {
		return nil, err
	}

	inQuery := fmt.Sprintf(
		"MATCH (n:%s {name: $name})<-[r]-(m) "+
			"RETURN type(r) AS rel_type, head(labels(m)) AS other_label, m.name AS other_name",
		quotedLabel,
	)
	if err := c.collectNeighbors(ctx, inQuery, name, relations, false); err != nil {
		return nil, err
	}

	return relations, nil
}

// collectNeighbors runs one directional neighbor query and folds its records
// into the relations map.
func (c *GraphCRUD) collectNeighbors(ctx context.Context, query, name string, relations map[string]*RelationSides, outgoing bool) error {
	result, err := c.runner.Run(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		return err
	}

	for _, record := range result.Records {
		relType, ok := recordString(record.Get("rel_type"))
		if !ok {
			continue
		}
		otherName, ok := recordString(record.Get("other_name"))
		if !ok {
			// Neighbors without a name cannot be addressed by the caller.
			continue
		}
		otherLabel, _ := recordString(record.Get("other_label"))

		sides, ok := relations[relType]
		if !ok {
			sides = &RelationSides{}
			relations[relType] = sides
		}
		neighbor := Neighbor{Label: otherLabel, Name: otherName}
		if outgoing {
			sides.Out = append(sides.Out, neighbor)
		} else {
			sides.In = append(sides.In, neighbor)
		}
	}
	return nil
}

// recordString narrows a record value lookup to a non-empty string.
func recordString(value interface{}, ok bool) (string, bool) {
	if !ok || value == nil {
		return "", false
	}
	s, isString := value.(string)
	if !isString || s == "" {
		return "", false
	}
	return s, true
}
