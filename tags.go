package landscape

import (
	"fmt"
	"reflect"
	"strings"
)

// entityMetadata holds the parsed `graph` tag information for a struct type.
// It is cached by the Manager to avoid costly reflection on every operation.
type entityMetadata struct {
	// Label is the node label, defaulting to the struct's name when no
	// label component is present on any field tag.
	Label string
	// PKField is the name of the struct field marked as the primary key.
	PKField string
	// PKProp is the property name of the primary key in the database.
	PKProp string
	// Mappings maps struct field names to their database property names.
	Mappings map[string]string
}

// parseTagsFromType inspects a reflect.Type and extracts persistence
// metadata from `graph` struct tags. Tag grammar, comma separated:
//
//	pk              marks the field as the merge/match key
//	property:<name> maps the field to a node property (required)
//	label:<name>    overrides the node label (the landscape model uses
//	                lowercase labels like "fase", so every domain struct
//	                sets this on its pk field)
func parseTagsFromType(typ reflect.Type) (*entityMetadata, error) {
	// If the type is a pointer, get the underlying element's type.
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %s is not a struct", typ.Name())
	}

	meta := &entityMetadata{
		Label:    typ.Name(),
		Mappings: make(map[string]string),
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("graph")

		// Skip fields that are not part of the persistence mapping.
		if tag == "" {
			continue
		}

		isPk := false
		propName := ""
		for _, part := range strings.Split(tag, ",") {
			switch {
			case part == "pk":
				isPk = true
			case strings.HasPrefix(part, "property:"):
				propName = strings.TrimPrefix(part, "property:")
			case strings.HasPrefix(part, "label:"):
				meta.Label = strings.TrimPrefix(part, "label:")
			}
		}

		if propName == "" {
			return nil, fmt.Errorf("field %s is missing 'property' tag component", field.Name)
		}

		if isPk {
			meta.PKField = field.Name
			meta.PKProp = propName
		}
		meta.Mappings[field.Name] = propName
	}

	if meta.PKField == "" {
		return nil, fmt.Errorf("no primary key ('pk') tag defined for struct %s", typ.Name())
	}

	return meta, nil
}

// parseTags is a generic convenience wrapper around parseTagsFromType. It
// allows getting metadata from a compile-time type T instead of a runtime
// reflect.Type, which is what the generic Repository needs.
func parseTags[T any]() (*entityMetadata, error) {
	var instance T
	typ := reflect.TypeOf(instance)
	return parseTagsFromType(typ)
}
