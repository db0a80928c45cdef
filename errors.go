package landscape

import "errors"

// ErrNotFound is a sentinel error returned by read operations when no record
// matching the criteria is found in the database.
var ErrNotFound = errors.New("record not found")

// ErrConfig indicates that required connection configuration is missing or
// malformed. It is raised at construction time, before any query runs, so a
// process never starts serving against a half-configured store.
var ErrConfig = errors.New("invalid store configuration")

// ErrValidation indicates that caller-supplied arguments violate an operation
// precondition, such as a missing key property or an empty name on delete.
// It is always correctable by the caller and is never retried.
var ErrValidation = errors.New("invalid arguments")

// ErrInvalidIdentifier indicates that a label or relationship-type string
// failed the identifier pattern check. Labels come from static configuration,
// so this is a configuration defect rather than a runtime condition.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrStoreUnavailable indicates a connectivity or transport failure while
// talking to the graph store.
var ErrStoreUnavailable = errors.New("graph store unavailable")
