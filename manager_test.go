package landscape

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digigo-nu/landscape/models"
)

func TestManagerCreateRelation(t *testing.T) {
	ctx := context.Background()

	t.Run("merges an idempotent edge between typed entities", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"rel_id"}, "5:m:1")),
		}}
		manager := NewManager(runner)

		role := &models.Role{Name: "Architect"}
		fase := &models.Fase{Name: "Ontwerp"}
		err := manager.CreateRelation(ctx, role, fase, "WORKS_IN", nil)

		require.NoError(t, err)
		require.Len(t, runner.calls, 1)
		call := runner.calls[0]
		assert.Contains(t, call.query, "MATCH (a:`role` {`name`: $from_pk}), (b:`fase` {`name`: $to_pk})")
		assert.Contains(t, call.query, "MERGE (a)-[r:`WORKS_IN`]->(b)")
		assert.Contains(t, call.query, "SET r += $props")
		assert.Equal(t, "Architect", call.params["from_pk"])
		assert.Equal(t, "Ontwerp", call.params["to_pk"])
		assert.Equal(t, map[string]interface{}{}, call.params["props"])
	})

	t.Run("rejects an unsafe relationship type", func(t *testing.T) {
		runner := &fakeRunner{}
		manager := NewManager(runner)

		err := manager.CreateRelation(ctx, &models.Role{Name: "A"}, &models.Fase{Name: "B"}, "WORKS IN", nil)

		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.Empty(t, runner.calls)
	})

	t.Run("requires pointer entities", func(t *testing.T) {
		manager := NewManager(&fakeRunner{})

		err := manager.CreateRelation(ctx, models.Role{Name: "A"}, &models.Fase{Name: "B"}, "WORKS_IN", nil)

		assert.ErrorContains(t, err, "non-nil pointer")
	})

	t.Run("caches entity metadata between calls", func(t *testing.T) {
		runner := &fakeRunner{}
		manager := NewManager(runner)

		for i := 0; i < 3; i++ {
			err := manager.CreateRelation(ctx, &models.Role{Name: "A"}, &models.Fase{Name: "B"}, "WORKS_IN", nil)
			require.NoError(t, err)
		}
		assert.Len(t, runner.calls, 3)
	})
}

func TestManagerExportGraph(t *testing.T) {
	ctx := context.Background()

	t.Run("collects and de-duplicates nodes and edges", func(t *testing.T) {
		roleNode := neo4j.Node{ElementId: "4:g:1", Labels: []string{"role"}, Props: map[string]interface{}{"name": "Architect"}}
		faseNode := neo4j.Node{ElementId: "4:g:2", Labels: []string{"fase"}, Props: map[string]interface{}{"name": "Ontwerp"}}
		edge := neo4j.Relationship{
			ElementId:      "5:g:1",
			StartElementId: "4:g:1",
			EndElementId:   "4:g:2",
			Type:           "WORKS_IN",
			Props:          map[string]interface{}{},
		}

		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(
				record([]string{"n", "r", "m"}, roleNode, edge, faseNode),
				// The same row repeated, as happens with multi-path matches.
				record([]string{"n", "r", "m"}, roleNode, edge, faseNode),
				// An isolated node: OPTIONAL MATCH yields nils.
				record([]string{"n", "r", "m"}, neo4j.Node{ElementId: "4:g:3", Labels: []string{"category"}, Props: map[string]interface{}{"name": "BIM"}}, nil, nil),
			),
		}}
		manager := NewManager(runner)

		graph, err := manager.ExportGraph(ctx)

		require.NoError(t, err)
		require.Len(t, graph.Nodes, 3)
		require.Len(t, graph.Edges, 1)
		assert.Equal(t, "4:g:1", graph.Edges[0].Source)
		assert.Equal(t, "4:g:2", graph.Edges[0].Target)
		assert.Equal(t, "WORKS_IN", graph.Edges[0].Type)
	})

	t.Run("an empty store yields an empty graph", func(t *testing.T) {
		manager := NewManager(&fakeRunner{})

		graph, err := manager.ExportGraph(ctx)

		require.NoError(t, err)
		assert.Empty(t, graph.Nodes)
		assert.Empty(t, graph.Edges)
	})
}
