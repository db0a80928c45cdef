package landscape

import (
	"context"
	"fmt"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphCRUD implements the dynamic data-access operations over the graph
// store. Labels, relationship types and property maps come in as plain
// strings chosen by the caller (typically from the form registry); every
// identifier passes through QuoteIdentifier before it is interpolated into
// query text, and every property value is bound as a query parameter.
//
// A GraphCRUD is safe for concurrent use; it holds no state besides the
// injected runner. Note that UpsertNode is a probe-then-write sequence
// without a wrapping transaction: two concurrent upserts for the same brand
// new name can both miss the probe and create two nodes. The window is
// narrow and tolerated; name uniqueness per label is a convention enforced
// at write time, not a database constraint.
type GraphCRUD struct {
	runner DBRunner
}

// NewGraphCRUD creates a GraphCRUD on top of the given query runner.
func NewGraphCRUD(runner DBRunner) *GraphCRUD {
	return &GraphCRUD{runner: runner}
}

// UpsertNode creates or updates a node with the given label.
//
// The lookup order is deliberate: a node is first matched by its name so
// that changing the emailaddress of a stable name still resolves to the same
// node. Only when no name match exists does the operation fall back to a
// MERGE keyed by emailaddress (preferred) or name. Properties are applied as
// a union on both branches, with the supplied map winning on overlapping
// keys. Last write wins; there is no optimistic concurrency check.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - label: The node label. Must match the identifier pattern.
//   - properties: The full property map. Must contain a non-empty "name" or
//     "emailaddress".
//
// Returns:
//
//	The elementId of the created or updated node, ErrValidation when both
//	key properties are absent, or ErrInvalidIdentifier for a bad label.
func (c *GraphCRUD) UpsertNode(ctx context.Context, label string, properties map[string]interface{}) (string, error) {
	name, _ := properties["name"].(string)
	email, _ := properties["emailaddress"].(string)
	if name == "" && email == "" {
		return "", fmt.Errorf("%w: at least one of 'name' or 'emailaddress' must be provided for matching", ErrValidation)
	}

	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return "", err
	}

	// Step 1: check if a node with the same label + name exists.
	if name != "" {
		checkQuery := fmt.Sprintf("MATCH (n:%s {name: $name}) RETURN elementId(n) AS node_id", quotedLabel)
		result, err := c.runner.Run(ctx, checkQuery, map[string]interface{}{"name": name})
		if err != nil {
			return "", err
		}

		// Step 2: update the existing node in place.
		if nodeID, ok := firstString(result, "node_id"); ok {
			updateQuery := "MATCH (n) WHERE elementId(n) = $node_id SET n += $props RETURN elementId(n) AS node_id"
			updated, err := c.runner.Run(ctx, updateQuery, map[string]interface{}{
				"node_id": nodeID,
				"props":   properties,
			})
			if err != nil {
				return "", err
			}
			if id, ok := firstString(updated, "node_id"); ok {
				return id, nil
			}
			return nodeID, nil
		}
	}

	// Step 3: create via MERGE, keyed by emailaddress when available.
	mergeKey, mergeValue := "name", name
	if email != "" {
		mergeKey, mergeValue = "emailaddress", email
	}
	quotedKey, err := QuoteIdentifier(mergeKey)
	if err != nil {
		return "", err
	}

	createQuery := fmt.Sprintf(
		"MERGE (n:%s {%s: $merge_value}) ON CREATE SET n += $props ON MATCH SET n += $props RETURN elementId(n) AS node_id",
		quotedLabel, quotedKey,
	)
	result, err := c.runner.Run(ctx, createQuery, map[string]interface{}{
		"merge_value": mergeValue,
		"props":       properties,
	})
	if err != nil {
		return "", err
	}
	id, ok := firstString(result, "node_id")
	if !ok {
		return "", fmt.Errorf("merge for label %s returned no node id", label)
	}
	return id, nil
}

// InsertNode creates a fresh node with the given label, but only when no
// node of that label carries the same name yet. Unlike UpsertNode it never
// overwrites an existing node: a name collision is a signaled no-op, not an
// error.
//
// Returns:
//
//	(elementId, true, nil) when the node was created,
//	("", false, nil) when a node with that name already exists,
//	ErrValidation when the name is missing.
func (c *GraphCRUD) InsertNode(ctx context.Context, label string, properties map[string]interface{}) (string, bool, error) {
	name, _ := properties["name"].(string)
	if name == "" {
		return "", false, fmt.Errorf("%w: 'name' must be provided to insert a node", ErrValidation)
	}

	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return "", false, err
	}

	checkQuery := fmt.Sprintf("MATCH (n:%s {name: $name}) RETURN elementId(n) AS node_id", quotedLabel)
	existing, err := c.runner.Run(ctx, checkQuery, map[string]interface{}{"name": name})
	if err != nil {
		return "", false, err
	}
	if _, ok := firstString(existing, "node_id"); ok {
		return "", false, nil
	}

	createQuery := fmt.Sprintf("CREATE (n:%s) SET n += $props RETURN elementId(n) AS node_id", quotedLabel)
	result, err := c.runner.Run(ctx, createQuery, map[string]interface{}{"props": properties})
	if err != nil {
		return "", false, err
	}
	id, ok := firstString(result, "node_id")
	if !ok {
		return "", false, fmt.Errorf("create for label %s returned no node id", label)
	}
	return id, true, nil
}

// NodeNamesByType returns every distinct non-null name among nodes of the
// given label, deduplicated and lexicographically ordered. An empty result
// is valid, not an error.
func (c *GraphCRUD) NodeNamesByType(ctx context.Context, label string) ([]string, error) {
	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("MATCH (n:%s) RETURN DISTINCT n.name AS name ORDER BY name", quotedLabel)
	result, err := c.runner.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, record := range result.Records {
		value, ok := record.Get("name")
		if !ok {
			continue
		}
		if name, ok := value.(string); ok && name != "" {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// NodeProperties returns the full property map of the node of the given
// label with the given name, or ErrNotFound when no node matches. When
// several nodes share the name (an invariant violation the store cannot
// rule out) the first returned record wins; which one that is stays
// unspecified.
func (c *GraphCRUD) NodeProperties(ctx context.Context, label, name string) (map[string]interface{}, error) {
	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("MATCH (n:%s) WHERE n.name = $name RETURN properties(n) AS props", quotedLabel)
	result, err := c.runner.Run(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, label, name)
	}

	value, ok := result.Records[0].Get("props")
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, label, name)
	}
	props, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected properties type %T for %s %q", value, label, name)
	}
	return props, nil
}

// DeleteNode removes the node of the given label and name together with
// every relationship touching it. Deletion is permanent.
//
// Returns:
//
//	The number of nodes actually deleted (0 when nothing matched, which is
//	not an error), or ErrValidation when the name is empty.
func (c *GraphCRUD) DeleteNode(ctx context.Context, label, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: 'name' must be provided to delete a node", ErrValidation)
	}
	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("MATCH (n:%s {name: $name}) DETACH DELETE n RETURN count(n) AS deleted_count", quotedLabel)
	result, err := c.runner.Run(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		return 0, err
	}
	count, _ := firstInt(result, "deleted_count")
	return count, nil
}

// CreateRelationship merge-creates a directed, typed edge between two nodes
// identified by (label, name). Repeating the call with the same endpoints
// and type does not duplicate the edge; the supplied properties overwrite
// the existing ones on every call.
//
// A missing endpoint is a legitimate transient state (a stale dropdown in
// the calling UI, for example) and yields a no-op, not a failure.
//
// Returns:
//
//	(elementId, true, nil) when the edge exists after the call,
//	("", false, nil) when either endpoint was not found.
func (c *GraphCRUD) CreateRelationship(ctx context.Context, startLabel, startName, endLabel, endName, relType string, properties map[string]interface{}) (string, bool, error) {
	quotedStart, err := QuoteIdentifier(startLabel)
	if err != nil {
		return "", false, err
	}
	quotedEnd, err := QuoteIdentifier(endLabel)
	if err != nil {
		return "", false, err
	}
	quotedType, err := QuoteIdentifier(relType)
	if err != nil {
		return "", false, err
	}
	if properties == nil {
		properties = map[string]interface{}{}
	}

	query := fmt.Sprintf(
		"MATCH (a:%s {name: $start_name}), (b:%s {name: $end_name}) "+
			"MERGE (a)-[r:%s]->(b) SET r += $properties RETURN elementId(r) AS rel_id",
		quotedStart, quotedEnd, quotedType,
	)
	result, err := c.runner.Run(ctx, query, map[string]interface{}{
		"start_name": startName,
		"end_name":   endName,
		"properties": properties,
	})
	if err != nil {
		return "", false, err
	}
	relID, ok := firstString(result, "rel_id")
	if !ok {
		return "", false, nil
	}
	return relID, true, nil
}

// Count returns the number of nodes carrying the given label.
func (c *GraphCRUD) Count(ctx context.Context, label string) (int64, error) {
	quotedLabel, err := QuoteIdentifier(label)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf("MATCH (n:%s) RETURN count(n) AS total", quotedLabel)
	result, err := c.runner.Run(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	total, _ := firstInt(result, "total")
	return total, nil
}

// TotalNodeCount returns the number of nodes in the store, across all labels.
func (c *GraphCRUD) TotalNodeCount(ctx context.Context) (int64, error) {
	result, err := c.runner.Run(ctx, "MATCH (n) RETURN count(n) AS total", nil)
	if err != nil {
		return 0, err
	}
	total, _ := firstInt(result, "total")
	return total, nil
}

// TotalRelationshipCount returns the number of relationships in the store.
func (c *GraphCRUD) TotalRelationshipCount(ctx context.Context) (int64, error) {
	result, err := c.runner.Run(ctx, "MATCH ()-[r]->() RETURN count(r) AS total", nil)
	if err != nil {
		return 0, err
	}
	total, _ := firstInt(result, "total")
	return total, nil
}

// CountsByLabels counts nodes per label for a batch of labels. A failure for
// one label is swallowed and reported as 0 so a single bad label never
// aborts the batch.
func (c *GraphCRUD) CountsByLabels(ctx context.Context, labels []string) map[string]int64 {
	counts := make(map[string]int64, len(labels))
	for _, label := range labels {
		total, err := c.Count(ctx, label)
		if err != nil {
			counts[label] = 0
			continue
		}
		counts[label] = total
	}
	return counts
}

// ClearAll deletes every node and relationship in the database. It is meant
// for test and seed setup; any confirmation guard belongs to the caller.
func (c *GraphCRUD) ClearAll(ctx context.Context) error {
	_, err := c.runner.Run(ctx, "MATCH (n) DETACH DELETE n", nil)
	return err
}

// firstString extracts a string value from the first record of a result.
func firstString(result *neo4j.EagerResult, key string) (string, bool) {
	if result == nil || len(result.Records) == 0 {
		return "", false
	}
	value, ok := result.Records[0].Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// firstInt extracts an integer value from the first record of a result.
// Neo4j returns Cypher integers as int64.
func firstInt(result *neo4j.EagerResult, key string) (int64, bool) {
	if result == nil || len(result.Records) == 0 {
		return 0, false
	}
	value, ok := result.Records[0].Get(key)
	if !ok {
		return 0, false
	}
	n, ok := value.(int64)
	return n, ok
}
