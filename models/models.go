// Package models contains the domain entities of the software landscape.
// The structs use `graph` tags to define their mapping to Neo4j nodes; the
// `name` property is the de-facto unique key within each label.
package models

// Fase is one phase of a housing-development project, chained to the next
// phase by a NEXT relationship.
type Fase struct {
	Name        string `graph:"pk,property:name,label:fase"`
	Description string `graph:"property:description"`
}

// Role is a party involved in the project, linked to the phases it works in
// by WORKS_IN relationships.
type Role struct {
	Name        string `graph:"pk,property:name,label:role"`
	Description string `graph:"property:description"`
}

// Company is a vendor or organization in the landscape. EmailAddress serves
// as an alternate key when the dynamic layer upserts company records.
type Company struct {
	Name           string `graph:"pk,property:name,label:company"`
	Address        string `graph:"property:address"`
	Website        string `graph:"property:website"`
	Telefoonnummer string `graph:"property:telefoonnummer"`
	EmailAddress   string `graph:"property:emailaddress"`
	Description    string `graph:"property:description"`
}

// Software is a software product in the landscape.
type Software struct {
	Name              string `graph:"pk,property:name,label:software"`
	Description       string `graph:"property:description"`
	SubscriptionModel string `graph:"property:subscription_model"`
}

// Category groups software products.
type Category struct {
	Name string `graph:"pk,property:name,label:category"`
}
