package landscape

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/digigo-nu/landscape/models"
)

// Manager is the orchestrator of the typed persistence layer. It hands out
// repositories and implements the cross-entity operations: relationship
// creation between typed entities and whole-graph export.
type Manager struct {
	runner DBRunner
	// metaCache stores parsed entityMetadata to avoid costly reflection on every call.
	metaCache sync.Map
}

// NewManager creates a new instance of the Manager.
func NewManager(runner DBRunner) *Manager {
	return &Manager{runner: runner}
}

// RepositoryFor is a generic function that creates and returns a repository
// for a specific struct type T, managed by the given Manager.
func RepositoryFor[T any](m *Manager) (*Repository[T], error) {
	return NewRepository[T](m.runner)
}

// CreateRelation merge-creates a directed relationship between two existing
// entities. It uses reflection to find the entities' primary keys and labels
// and builds an idempotent MERGE, so repeating the call does not duplicate
// the edge; the given properties overwrite the edge's properties each time.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - fromEntity, toEntity: Pointers to the tagged entity structs at either end.
//   - relType: The relationship type. Must match the identifier pattern.
//   - relProps: Properties to set on the relationship, may be nil.
//
// Returns:
//
//	An error when either entity lacks valid tags, the type name fails the
//	identifier check, or the query fails. A missing endpoint node is not an
//	error; the merge simply matches nothing.
func (m *Manager) CreateRelation(ctx context.Context, fromEntity any, toEntity any, relType string, relProps map[string]interface{}) error {
	fromMeta, fromPKVal, err := m.entityMetaAndPK(fromEntity)
	if err != nil {
		return err
	}
	toMeta, toPKVal, err := m.entityMetaAndPK(toEntity)
	if err != nil {
		return err
	}

	quotedFrom, err := QuoteIdentifier(fromMeta.Label)
	if err != nil {
		return err
	}
	quotedTo, err := QuoteIdentifier(toMeta.Label)
	if err != nil {
		return err
	}
	quotedType, err := QuoteIdentifier(relType)
	if err != nil {
		return err
	}
	quotedFromPK, err := QuoteIdentifier(fromMeta.PKProp)
	if err != nil {
		return err
	}
	quotedToPK, err := QuoteIdentifier(toMeta.PKProp)
	if err != nil {
		return err
	}
	if relProps == nil {
		relProps = map[string]interface{}{}
	}

	query := fmt.Sprintf(
		"MATCH (a:%s {%s: $from_pk}), (b:%s {%s: $to_pk}) "+
			"MERGE (a)-[r:%s]->(b) SET r += $props RETURN elementId(r) AS rel_id",
		quotedFrom, quotedFromPK, quotedTo, quotedToPK, quotedType,
	)
	_, err = m.runner.Run(ctx, query, map[string]interface{}{
		"from_pk": fromPKVal,
		"to_pk":   toPKVal,
		"props":   relProps,
	})
	return err
}

// entityMetaAndPK retrieves an entity's metadata and primary key value.
// It uses a cache to avoid repeated reflection over the same type.
func (m *Manager) entityMetaAndPK(entity any) (*entityMetadata, any, error) {
	val := reflect.ValueOf(entity)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return nil, nil, fmt.Errorf("entity must be a non-nil pointer")
	}

	typ := val.Elem().Type()

	// First, attempt to load metadata from the cache.
	if cached, ok := m.metaCache.Load(typ); ok {
		meta := cached.(*entityMetadata)
		pkValue := val.Elem().FieldByName(meta.PKField).Interface()
		return meta, pkValue, nil
	}

	meta, err := parseTagsFromType(typ)
	if err != nil {
		return nil, nil, err
	}
	m.metaCache.Store(typ, meta)

	pkValue := val.Elem().FieldByName(meta.PKField).Interface()
	return meta, pkValue, nil
}

// ExportGraph dumps the whole graph as a flat node/edge structure, the shape
// graph visualization frontends consume. Isolated nodes are included via the
// OPTIONAL MATCH; nodes and relationships appearing in several result rows
// are de-duplicated by their element id.
//
// Returns:
//
//	A models.Graph with every node and relationship in the store. An empty
//	store yields an empty graph, not an error.
func (m *Manager) ExportGraph(ctx context.Context) (*models.Graph, error) {
	query := "MATCH (n) OPTIONAL MATCH (n)-[r]->(m) RETURN n, r, m"
	eagerResult, err := m.runner.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	graph := &models.Graph{
		Nodes: make([]*models.GraphNode, 0),
		Edges: make([]*models.GraphEdge, 0),
	}
	seenNodeIDs := make(map[string]bool)
	seenEdgeIDs := make(map[string]bool)

	for _, record := range eagerResult.Records {
		for _, value := range record.Values {
			// OPTIONAL MATCH yields nil for r and m on isolated nodes.
			switch v := value.(type) {
			case neo4j.Node:
				if !seenNodeIDs[v.ElementId] {
					graph.Nodes = append(graph.Nodes, &models.GraphNode{
						ID:         v.ElementId,
						Labels:     v.Labels,
						Properties: v.Props,
					})
					seenNodeIDs[v.ElementId] = true
				}

			case neo4j.Relationship:
				if !seenEdgeIDs[v.ElementId] {
					graph.Edges = append(graph.Edges, &models.GraphEdge{
						ID:         v.ElementId,
						Source:     v.StartElementId,
						Target:     v.EndElementId,
						Type:       v.Type,
						Properties: v.Props,
					})
					seenEdgeIDs[v.ElementId] = true
				}
			}
		}
	}

	return graph, nil
}
