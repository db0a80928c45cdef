package landscape

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type runnerCall struct {
	query  string
	params map[string]interface{}
}

// fakeRunner scripts DBRunner responses for tests. Each Run call consumes
// the next queued result or error; once the queues are exhausted it answers
// with an empty result.
type fakeRunner struct {
	calls   []runnerCall
	results []*neo4j.EagerResult
	errs    []error
}

func (f *fakeRunner) Run(_ context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	idx := len(f.calls)
	f.calls = append(f.calls, runnerCall{query: query, params: params})
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if idx < len(f.results) && f.results[idx] != nil {
		return f.results[idx], nil
	}
	return &neo4j.EagerResult{}, nil
}

// mergeRunner answers every call with the same node and relationship ids,
// which makes every upsert and merge look successful. Used by the seed tests.
type mergeRunner struct {
	calls []runnerCall
}

func (m *mergeRunner) Run(_ context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	m.calls = append(m.calls, runnerCall{query: query, params: params})
	return eager(record([]string{"node_id", "rel_id"}, "4:fake:1", "5:fake:1")), nil
}

func record(keys []string, values ...interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func eager(records ...*neo4j.Record) *neo4j.EagerResult {
	return &neo4j.EagerResult{Records: records}
}
