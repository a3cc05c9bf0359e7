package reveal

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ConstructionError.
var (
	// ErrMalformedPath indicates path data that cannot be parsed.
	ErrMalformedPath = errors.New("reveal: malformed path data")

	// ErrNonFiniteMatrix indicates an authored matrix containing NaN or Inf.
	ErrNonFiniteMatrix = errors.New("reveal: non-finite matrix")

	// ErrDuplicateID indicates two elements sharing one identifier.
	ErrDuplicateID = errors.New("reveal: duplicate element id")

	// ErrUnknownID indicates a reveal entry naming no glyph.
	ErrUnknownID = errors.New("reveal: unknown glyph id")

	// ErrInvalidDuration indicates a negative or non-finite duration.
	ErrInvalidDuration = errors.New("reveal: invalid duration")

	// ErrMissingOutline indicates a glyph with neither path data nor outline.
	ErrMissingOutline = errors.New("reveal: missing outline")

	// ErrInvalidDash indicates a dash pattern that cannot be applied to its
	// outline: a non-finite length, or a cycle so short that the outline
	// would split into millions of dashes.
	ErrInvalidDash = errors.New("reveal: invalid dash pattern")
)

// ConstructionError reports authored data that cannot be assembled into a
// diagram. Assembly stops at the first one; no partial diagram is returned.
type ConstructionError struct {
	ID    string // element identifier, empty for asset-level problems
	Field string // offending field ("data", "color", "matrix", ...)
	Err   error
}

func (e *ConstructionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("reveal: assemble: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("reveal: assemble %q: %s: %v", e.ID, e.Field, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionError(id, field string, err error) error {
	return &ConstructionError{ID: id, Field: field, Err: err}
}
