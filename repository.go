package landscape

import (
	"context"
	"fmt"
	"reflect"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
)

// Repository provides a typed abstraction for CRUD operations on one entity
// type T. It relies on `graph` struct tags to map struct fields to node
// properties; the dynamic GraphCRUD layer is the stringly-typed counterpart
// for callers that work from the form registry instead of Go structs.
type Repository[T any] struct {
	runner DBRunner
	meta   *entityMetadata
}

// NewRepository creates a new generic repository for the type T.
// It parses the struct tags of T to understand its mapping to a Neo4j node.
//
// Parameters:
//   - runner: An instance of DBRunner, used to execute all Cypher queries.
//
// Returns:
//
//	A new Repository instance or an error if the struct tags are invalid.
func NewRepository[T any](runner DBRunner) (*Repository[T], error) {
	meta, err := parseTags[T]()
	if err != nil {
		return nil, err
	}
	return &Repository[T]{
		runner: runner,
		meta:   meta,
	}, nil
}

// Save creates a new node or updates an existing one.
// It uses a MERGE query based on the struct's primary key (`pk` tag).
// All other tagged fields are set on the node.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - entity: A pointer to the struct instance to be saved.
//
// Returns:
//
//	An error if the query building or execution fails.
func (r *Repository[T]) Save(ctx context.Context, entity *T) error {
	val := reflect.ValueOf(entity).Elem()
	pkValue := val.FieldByName(r.meta.PKField).Interface()
	mergeProps := map[string]interface{}{r.meta.PKProp: pkValue}

	setProps := make(map[string]interface{})
	for fieldName, propName := range r.meta.Mappings {
		if fieldName != r.meta.PKField {
			// The property is prefixed with 'n.' for the SET clause.
			setProps["n."+propName] = val.FieldByName(fieldName).Interface()
		}
	}

	qb := gocypher.NewQueryBuilder().
		Merge(gocypher.N("n", r.meta.Label).WithProperties(mergeProps)).
		Set(setProps).
		Return("n")

	query, params, err := qb.Build()
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, query, params)
	return err
}

// FindByID retrieves a single entity from the database by its primary key.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - id: The primary key value of the entity to find.
//
// Returns:
//
//	A pointer to the found entity, ErrNotFound if no record is found, or
//	another error if the query or mapping fails.
func (r *Repository[T]) FindByID(ctx context.Context, id interface{}) (*T, error) {
	props := map[string]interface{}{r.meta.PKProp: id}
	qb := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", r.meta.Label).WithProperties(props)).
		Return("n")

	entities, err := r.Find(ctx, qb)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, ErrNotFound
	}
	if len(entities) > 1 {
		// A primary key lookup returning several rows is a data integrity issue.
		return nil, fmt.Errorf("expected 1 record but found %d", len(entities))
	}
	return entities[0], nil
}

// FindAll retrieves every entity of type T.
func (r *Repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	qb := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", r.meta.Label)).
		Return("n")
	return r.Find(ctx, qb)
}

// FindByProperty retrieves every entity of type T whose given property
// equals the given value. The property name is the database property, not
// the Go field name.
func (r *Repository[T]) FindByProperty(ctx context.Context, property string, value interface{}) ([]*T, error) {
	props := map[string]interface{}{property: value}
	qb := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", r.meta.Label).WithProperties(props)).
		Return("n")
	return r.Find(ctx, qb)
}

// Find executes a caller-supplied query and maps every returned node onto a
// new instance of T. The query must RETURN the node itself (for example
// `RETURN n`), not individual properties.
//
// Returns:
//
//	The mapped entities; an empty slice when the query matched nothing.
func (r *Repository[T]) Find(ctx context.Context, qb *gocypher.QueryBuilder) ([]*T, error) {
	query, params, err := qb.Build()
	if err != nil {
		return nil, err
	}

	eagerResult, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}

	entities := make([]*T, 0, len(eagerResult.Records))
	for _, record := range eagerResult.Records {
		for _, value := range record.Values {
			node, ok := value.(neo4j.Node)
			if !ok {
				continue
			}
			entity := new(T)
			if err := mapNodeToStruct(node, entity, r.meta); err != nil {
				return nil, err
			}
			entities = append(entities, entity)
		}
	}
	return entities, nil
}

// FindOne executes a caller-supplied query that is expected to match exactly
// one entity.
//
// Returns:
//
//	The single matched entity, ErrNotFound for zero matches, or an error
//	when the query matches more than one record.
func (r *Repository[T]) FindOne(ctx context.Context, qb *gocypher.QueryBuilder) (*T, error) {
	entities, err := r.Find(ctx, qb)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, ErrNotFound
	}
	if len(entities) > 1 {
		return nil, fmt.Errorf("expected 1 record but found %d", len(entities))
	}
	return entities[0], nil
}

// Count returns the total number of nodes carrying the label of T.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	quotedLabel, err := QuoteIdentifier(r.meta.Label)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf("MATCH (n:%s) RETURN count(n) AS total", quotedLabel)
	result, err := r.runner.Run(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	total, _ := firstInt(result, "total")
	return total, nil
}

// CountByProperty returns the number of nodes of T whose given property
// equals the given value.
func (r *Repository[T]) CountByProperty(ctx context.Context, property string, value interface{}) (int64, error) {
	quotedLabel, err := QuoteIdentifier(r.meta.Label)
	if err != nil {
		return 0, err
	}
	quotedProp, err := QuoteIdentifier(property)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf("MATCH (n:%s {%s: $value}) RETURN count(n) AS total", quotedLabel, quotedProp)
	result, err := r.runner.Run(ctx, query, map[string]interface{}{"value": value})
	if err != nil {
		return 0, err
	}
	total, _ := firstInt(result, "total")
	return total, nil
}

// Delete removes a node from the database by its primary key.
// It uses a DETACH DELETE query to also remove any relationships connected
// to the node.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - id: The primary key value of the entity to delete.
//
// Returns:
//
//	An error if the query building or execution fails.
func (r *Repository[T]) Delete(ctx context.Context, id interface{}) error {
	props := map[string]interface{}{r.meta.PKProp: id}
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", r.meta.Label).WithProperties(props)).
		DetachDelete("n").
		Build()
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, query, params)
	return err
}

// mapNodeToStruct populates a struct's fields from a neo4j.Node's
// properties, based on the parsed metadata.
func mapNodeToStruct(node neo4j.Node, entity any, meta *entityMetadata) error {
	val := reflect.ValueOf(entity).Elem()

	for fieldName, propName := range meta.Mappings {
		field := val.FieldByName(fieldName)
		if !field.IsValid() || !field.CanSet() {
			continue // Skip if the struct field cannot be set.
		}

		propValue, ok := node.Props[propName]
		if !ok {
			continue // Skip if the property does not exist on the node.
		}

		// Set the struct field's value.
		field.Set(reflect.ValueOf(propValue))
	}
	return nil
}
