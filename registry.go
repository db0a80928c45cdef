package landscape

// The form registry is the static description of which node and relationship
// types exist and which fields their forms expose. The data-access layer is
// agnostic to it; only the presentation side (the CLI here) reads it.

// Field describes the input kind of a single form field. It is a closed sum:
// TextField, TextAreaField or ChoiceField.
type Field interface {
	fieldKind() string
}

// TextField is a single-line free-text input.
type TextField struct{}

// TextAreaField is a multi-line free-text input.
type TextAreaField struct{}

// ChoiceField is a closed, ordered set of allowed values.
type ChoiceField struct {
	Options []string
}

func (TextField) fieldKind() string     { return "text" }
func (TextAreaField) fieldKind() string { return "textarea" }
func (ChoiceField) fieldKind() string   { return "choice" }

// FieldSpec pairs a property name with its input kind. Order matters: forms
// render fields in declaration order.
type FieldSpec struct {
	Name  string
	Field Field
}

// NodeSpec describes one node type and its ordered form fields.
type NodeSpec struct {
	Type   string
	Fields []FieldSpec
}

// RelationSpec describes one relationship type: which node types it connects
// and which properties, if any, its form exposes.
type RelationSpec struct {
	Type          string
	StartNodeType string
	EndNodeType   string
	Properties    []FieldSpec
}

// Registry is the static configuration consumed by the presentation layer.
type Registry struct {
	Nodes     []NodeSpec
	Relations []RelationSpec
}

// NodeTypes returns the configured node type names in declaration order.
func (r *Registry) NodeTypes() []string {
	types := make([]string, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		types = append(types, n.Type)
	}
	return types
}

// Node returns the spec for the given node type.
func (r *Registry) Node(nodeType string) (NodeSpec, bool) {
	for _, n := range r.Nodes {
		if n.Type == nodeType {
			return n, true
		}
	}
	return NodeSpec{}, false
}

// RelationTypes returns the configured relationship type names in
// declaration order.
func (r *Registry) RelationTypes() []string {
	types := make([]string, 0, len(r.Relations))
	for _, rel := range r.Relations {
		types = append(types, rel.Type)
	}
	return types
}

// Relation returns the spec for the given relationship type.
func (r *Registry) Relation(relType string) (RelationSpec, bool) {
	for _, rel := range r.Relations {
		if rel.Type == relType {
			return rel, true
		}
	}
	return RelationSpec{}, false
}

// DefaultRegistry returns the landscape model: the five node types with
// their form fields and the relationship types between them.
func DefaultRegistry() *Registry {
	return &Registry{
		Nodes: []NodeSpec{
			{
				Type: "category",
				Fields: []FieldSpec{
					{Name: "name", Field: TextField{}},
				},
			},
			{
				Type: "company",
				Fields: []FieldSpec{
					{Name: "name", Field: TextField{}},
					{Name: "address", Field: TextField{}},
					{Name: "website", Field: TextField{}},
					{Name: "telefoonnummer", Field: TextField{}},
					{Name: "emailaddress", Field: TextField{}},
					{Name: "description", Field: TextAreaField{}},
				},
			},
			{
				Type: "fase",
				Fields: []FieldSpec{
					{Name: "name", Field: TextField{}},
					{Name: "description", Field: TextAreaField{}},
				},
			},
			{
				Type: "role",
				Fields: []FieldSpec{
					{Name: "name", Field: TextField{}},
					{Name: "description", Field: TextAreaField{}},
				},
			},
			{
				Type: "software",
				Fields: []FieldSpec{
					{Name: "name", Field: TextField{}},
					{Name: "description", Field: TextAreaField{}},
					{Name: "subscription_model", Field: ChoiceField{Options: []string{
						"Flat rate", "Tiered pricing", "Usage-Based", "Freemium", "Feature-Based",
					}}},
				},
			},
		},
		Relations: []RelationSpec{
			{Type: "NEXT", StartNodeType: "fase", EndNodeType: "fase"},
			{Type: "WORKS_IN", StartNodeType: "role", EndNodeType: "fase"},
		},
	}
}
