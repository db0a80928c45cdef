package landscape

import (
	"fmt"
	"regexp"
	"strings"
)

// identifierPattern matches the label and relationship-type names we are
// willing to splice into query text. Cypher cannot bind schema identifiers
// as query parameters, so anything outside this pattern is rejected outright.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QuoteIdentifier validates a label, relationship-type or property-key name
// and returns it backtick-quoted for safe interpolation into a Cypher query.
//
// This is the single choke point for every identifier that ends up in query
// text; property values never pass through here, they are always bound as
// parameters.
//
// Parameters:
//   - raw: The identifier as supplied by the caller. Surrounding whitespace
//     is trimmed before validation.
//
// Returns:
//
//	The quoted identifier, or ErrInvalidIdentifier when the trimmed input is
//	empty or does not match ^[A-Za-z_][A-Za-z0-9_]*$.
func QuoteIdentifier(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: identifier is empty", ErrInvalidIdentifier)
	}
	if !identifierPattern.MatchString(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, trimmed)
	}
	return "`" + trimmed + "`", nil
}
