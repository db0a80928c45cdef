package models

// GraphNode represents a generic node from the graph. It is domain-agnostic,
// capturing the essential components of any node: its unique internal ID,
// its labels, and its properties. Designed to serialize cleanly to JSON.
type GraphNode struct {
	// ID is the unique internal identifier assigned by Neo4j (ElementId).
	ID string `json:"id"`

	// Labels contains all the labels attached to the node.
	Labels []string `json:"labels"`

	// Properties is a map containing the key-value properties of the node.
	Properties map[string]interface{} `json:"properties"`
}

// GraphEdge represents a generic relationship between two nodes.
type GraphEdge struct {
	// ID is the unique internal identifier assigned by Neo4j (ElementId).
	ID string `json:"id"`

	// Source is the ElementId of the node where the relationship starts.
	Source string `json:"source"`

	// Target is the ElementId of the node where the relationship ends.
	Target string `json:"target"`

	// Type is the relationship's type (e.g., "NEXT", "WORKS_IN").
	Type string `json:"type"`

	// Properties is a map containing the key-value properties of the relationship.
	Properties map[string]interface{} `json:"properties"`
}

// Graph is a flat node/edge container, the standard format consumed by
// graph visualization libraries (e.g., D3.js, Cytoscape.js).
type Graph struct {
	Nodes []*GraphNode `json:"nodes"`
	Edges []*GraphEdge `json:"edges"`
}
