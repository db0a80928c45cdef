// Package landscape provides the persistence layer for a labeled-property
// graph of software-landscape entities (phases, roles, companies, software,
// categories) stored in Neo4j. It wraps the official Neo4j Go driver behind
// a small set of typed CRUD and aggregate operations.
package landscape

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DBRunner defines the interface for a generic query executor.
// It abstracts the execution of a Cypher query, allowing for different
// implementations or mocking in tests.
type DBRunner interface {
	// Run executes a given Cypher query with parameters and returns a fully-buffered result.
	Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error)
}

//---

// Neo4jExecutor is a concrete implementation of the DBRunner interface that
// uses the official Neo4j Go driver. It owns the pooled driver instance and
// the target database name. One executor per process is the intended usage;
// the driver pools and reuses physical connections internally.
type Neo4jExecutor struct {
	Driver neo4j.DriverWithContext
	DBName string
}

// NewNeo4jExecutor creates and initializes a new Neo4jExecutor from the given
// configuration. The connection pool is sized from the config knobs rather
// than the driver defaults.
//
// Parameters:
//   - cfg: The validated store configuration (endpoint, credentials, pool sizing).
//
// Returns:
//
//	A pointer to the newly created Neo4jExecutor, an error wrapping ErrConfig
//	when the configuration is invalid, or an error when driver creation fails.
func NewNeo4jExecutor(cfg *Config) (*Neo4jExecutor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is nil", ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionPoolSize = cfg.MaxPoolSize
			c.SocketConnectTimeout = time.Duration(cfg.ConnectionTimeoutSec) * time.Second
			c.MaxConnectionLifetime = time.Duration(cfg.MaxConnectionLifetimeSec) * time.Second
		},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &Neo4jExecutor{Driver: driver, DBName: cfg.Database}, nil
}

// Verify checks the connectivity to the Neo4j database.
//
// Returns:
//
//	An error if the connection cannot be established.
func (e *Neo4jExecutor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

// IsAlive reports whether the store answers a trivial round trip. Any failure
// is converted into false; this method never returns an error, which makes it
// safe to call from health checks.
func (e *Neo4jExecutor) IsAlive(ctx context.Context) bool {
	_, err := e.Run(ctx, "RETURN 1 AS ok", nil)
	return err == nil
}

// Close releases the driver and every pooled connection. It is intended to be
// deferred once at process shutdown.
func (e *Neo4jExecutor) Close(ctx context.Context) error {
	return e.Driver.Close(ctx)
}

// Run executes a Cypher query using the modern ExecuteQuery function, which
// handles session and transaction management automatically: a scoped session
// is acquired from the pool and released on every exit path, including error
// paths. This function is suitable for both read and write operations.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - query: The Cypher query string to execute.
//   - params: A map of parameters to be used in the query.
//
// Returns:
//
//	An EagerResult containing all buffered records from the query, or an
//	error wrapping ErrStoreUnavailable if the execution fails.
func (e *Neo4jExecutor) Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		e.Driver,
		query,
		params,
		neo4j.EagerResultTransformer, // Buffers all results in memory before returning.
		neo4j.ExecuteQueryWithDatabase(e.DBName),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return result, nil
}
