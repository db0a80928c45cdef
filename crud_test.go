package landscape

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertNode(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects properties without name or emailaddress", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		_, err := crud.UpsertNode(ctx, "fase", map[string]interface{}{"description": "x"})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, runner.calls, "no query should run on validation failure")
	})

	t.Run("rejects an unsafe label before any query runs", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		_, err := crud.UpsertNode(ctx, "fase`) MATCH (m) DETACH DELETE m //", map[string]interface{}{"name": "X"})

		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.Empty(t, runner.calls)
	})

	t.Run("updates the existing node when the name matches", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"node_id"}, "4:abc:7")),
			eager(record([]string{"node_id"}, "4:abc:7")),
		}}
		crud := NewGraphCRUD(runner)

		props := map[string]interface{}{"name": "Ontwerp", "description": "updated"}
		id, err := crud.UpsertNode(ctx, "fase", props)

		require.NoError(t, err)
		assert.Equal(t, "4:abc:7", id)
		require.Len(t, runner.calls, 2)
		assert.Contains(t, runner.calls[0].query, "MATCH (n:`fase` {name: $name})")
		assert.Equal(t, "Ontwerp", runner.calls[0].params["name"])
		assert.Contains(t, runner.calls[1].query, "SET n += $props")
		assert.Equal(t, props, runner.calls[1].params["props"])
	})

	t.Run("merge-creates by name when no node matches", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(), // probe misses
			eager(record([]string{"node_id"}, "4:abc:9")),
		}}
		crud := NewGraphCRUD(runner)

		id, err := crud.UpsertNode(ctx, "fase", map[string]interface{}{"name": "Sloop"})

		require.NoError(t, err)
		assert.Equal(t, "4:abc:9", id)
		require.Len(t, runner.calls, 2)
		assert.Contains(t, runner.calls[1].query, "MERGE (n:`fase` {`name`: $merge_value})")
		assert.Contains(t, runner.calls[1].query, "ON CREATE SET n += $props")
		assert.Contains(t, runner.calls[1].query, "ON MATCH SET n += $props")
		assert.Equal(t, "Sloop", runner.calls[1].params["merge_value"])
	})

	t.Run("prefers emailaddress as merge key on the create branch", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(), // name probe misses
			eager(record([]string{"node_id"}, "4:abc:11")),
		}}
		crud := NewGraphCRUD(runner)

		props := map[string]interface{}{"name": "Acme", "emailaddress": "info@acme.example"}
		id, err := crud.UpsertNode(ctx, "company", props)

		require.NoError(t, err)
		assert.Equal(t, "4:abc:11", id)
		require.Len(t, runner.calls, 2)
		assert.Contains(t, runner.calls[1].query, "MERGE (n:`company` {`emailaddress`: $merge_value})")
		assert.Equal(t, "info@acme.example", runner.calls[1].params["merge_value"])
	})

	t.Run("skips the name probe when only emailaddress is present", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"node_id"}, "4:abc:12")),
		}}
		crud := NewGraphCRUD(runner)

		id, err := crud.UpsertNode(ctx, "company", map[string]interface{}{"emailaddress": "sales@acme.example"})

		require.NoError(t, err)
		assert.Equal(t, "4:abc:12", id)
		require.Len(t, runner.calls, 1)
		assert.Contains(t, runner.calls[0].query, "MERGE (n:`company` {`emailaddress`: $merge_value})")
	})

	t.Run("propagates store failures", func(t *testing.T) {
		boom := errors.New("connection reset")
		runner := &fakeRunner{errs: []error{boom}}
		crud := NewGraphCRUD(runner)

		_, err := crud.UpsertNode(ctx, "fase", map[string]interface{}{"name": "X"})

		assert.ErrorIs(t, err, boom)
	})
}

func TestInsertNode(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a name", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		_, _, err := crud.InsertNode(ctx, "role", map[string]interface{}{"description": "x"})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, runner.calls)
	})

	t.Run("creates a fresh node and reports insertion", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(), // no existing node
			eager(record([]string{"node_id"}, "4:abc:21")),
		}}
		crud := NewGraphCRUD(runner)

		id, inserted, err := crud.InsertNode(ctx, "role", map[string]interface{}{"name": "Architect"})

		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, "4:abc:21", id)
		require.Len(t, runner.calls, 2)
		assert.Contains(t, runner.calls[1].query, "CREATE (n:`role`)")
	})

	t.Run("name collision is a signaled no-op, not an error", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"node_id"}, "4:abc:21")),
		}}
		crud := NewGraphCRUD(runner)

		id, inserted, err := crud.InsertNode(ctx, "role", map[string]interface{}{"name": "Architect"})

		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Empty(t, id)
		assert.Len(t, runner.calls, 1, "the create statement must not run")
	})
}

func TestNodeNamesByType(t *testing.T) {
	ctx := context.Background()

	t.Run("deduplicates and sorts lexicographically", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(
				record([]string{"name"}, "Ontwerp"),
				record([]string{"name"}, "Initiatief"),
				record([]string{"name"}, "Haalbaarheid"),
				record([]string{"name"}, "Initiatief"),
				record([]string{"name"}, nil),
			),
		}}
		crud := NewGraphCRUD(runner)

		names, err := crud.NodeNamesByType(ctx, "fase")

		require.NoError(t, err)
		assert.Equal(t, []string{"Haalbaarheid", "Initiatief", "Ontwerp"}, names)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		names, err := crud.NodeNamesByType(ctx, "software")

		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestNodeProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the full property map", func(t *testing.T) {
		props := map[string]interface{}{"name": "Architect", "description": "Maakt het ontwerp van de woning."}
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"props"}, props)),
		}}
		crud := NewGraphCRUD(runner)

		got, err := crud.NodeProperties(ctx, "role", "Architect")

		require.NoError(t, err)
		assert.Equal(t, props, got)
		assert.Equal(t, "Architect", runner.calls[0].params["name"])
	})

	t.Run("missing node yields ErrNotFound", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		_, err := crud.NodeProperties(ctx, "role", "Nobody")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteNode(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a name", func(t *testing.T) {
		crud := NewGraphCRUD(&fakeRunner{})

		_, err := crud.DeleteNode(ctx, "fase", "")

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("detach-deletes and returns the count", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"deleted_count"}, int64(1))),
		}}
		crud := NewGraphCRUD(runner)

		deleted, err := crud.DeleteNode(ctx, "fase", "Ontwerp")

		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
		assert.Contains(t, runner.calls[0].query, "DETACH DELETE n")
	})

	t.Run("deleting a nonexistent node returns zero without error", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"deleted_count"}, int64(0))),
		}}
		crud := NewGraphCRUD(runner)

		deleted, err := crud.DeleteNode(ctx, "fase", "Nergens")

		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestCreateRelationship(t *testing.T) {
	ctx := context.Background()

	t.Run("merges the edge and overwrites its properties", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"rel_id"}, "5:abc:3")),
		}}
		crud := NewGraphCRUD(runner)

		props := map[string]interface{}{"since": "2024"}
		id, created, err := crud.CreateRelationship(ctx, "role", "Architect", "fase", "Ontwerp", "WORKS_IN", props)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "5:abc:3", id)
		require.Len(t, runner.calls, 1)
		call := runner.calls[0]
		assert.Contains(t, call.query, "MERGE (a)-[r:`WORKS_IN`]->(b)")
		assert.Contains(t, call.query, "SET r += $properties")
		assert.Equal(t, "Architect", call.params["start_name"])
		assert.Equal(t, "Ontwerp", call.params["end_name"])
		assert.Equal(t, props, call.params["properties"])
	})

	t.Run("missing endpoint is a no-op, not an error", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		id, created, err := crud.CreateRelationship(ctx, "role", "Ghost", "fase", "Ontwerp", "WORKS_IN", nil)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Empty(t, id)
	})

	t.Run("relationship type passes the identifier check", func(t *testing.T) {
		runner := &fakeRunner{}
		crud := NewGraphCRUD(runner)

		_, _, err := crud.CreateRelationship(ctx, "role", "A", "fase", "B", "WORKS IN", nil)

		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.Empty(t, runner.calls)
	})

	t.Run("nil properties become an empty parameter map", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"rel_id"}, "5:abc:4")),
		}}
		crud := NewGraphCRUD(runner)

		_, _, err := crud.CreateRelationship(ctx, "fase", "Ontwerp", "fase", "Vergunning", "NEXT", nil)

		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{}, runner.calls[0].params["properties"])
	})
}

func TestCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("count per label", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"total"}, int64(3))),
		}}
		crud := NewGraphCRUD(runner)

		total, err := crud.Count(ctx, "fase")

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Contains(t, runner.calls[0].query, "MATCH (n:`fase`) RETURN count(n) AS total")
	})

	t.Run("store totals", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"total"}, int64(40))),
			eager(record([]string{"total"}, int64(44))),
		}}
		crud := NewGraphCRUD(runner)

		nodes, err := crud.TotalNodeCount(ctx)
		require.NoError(t, err)
		rels, err := crud.TotalRelationshipCount(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(40), nodes)
		assert.Equal(t, int64(44), rels)
	})

	t.Run("counts by labels swallows per-label failures as zero", func(t *testing.T) {
		boom := errors.New("label exploded")
		runner := &fakeRunner{
			results: []*neo4j.EagerResult{
				eager(record([]string{"total"}, int64(8))),
				nil,
				eager(record([]string{"total"}, int64(15))),
			},
			errs: []error{nil, boom, nil},
		}
		crud := NewGraphCRUD(runner)

		counts := crud.CountsByLabels(ctx, []string{"fase", "role", "category"})

		assert.Equal(t, map[string]int64{
			"fase":     8,
			"role":     0,
			"category": 15,
		}, counts)
		assert.Len(t, runner.calls, 3, "a failing label must not abort the batch")
	})

	t.Run("an invalid label counts as zero in a batch", func(t *testing.T) {
		runner := &fakeRunner{results: []*neo4j.EagerResult{
			eager(record([]string{"total"}, int64(2))),
		}}
		crud := NewGraphCRUD(runner)

		counts := crud.CountsByLabels(ctx, []string{"fase", "no such label"})

		assert.Equal(t, map[string]int64{"fase": 2, "no such label": 0}, counts)
	})
}

func TestClearAll(t *testing.T) {
	runner := &fakeRunner{}
	crud := NewGraphCRUD(runner)

	require.NoError(t, crud.ClearAll(context.Background()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "MATCH (n) DETACH DELETE n", runner.calls[0].query)
}
