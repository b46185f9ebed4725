// Package guard provides the constructor guard pattern used by domain objects
// to ensure instances are only created through their factory functions.
//
// A zero-value ConstructorGuard fails validation, so any struct embedding one
// can detect direct instantiation that bypassed its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// Embed one in a struct and set it via NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed instances from
// zero values.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking the owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard.
// For a zero-value guard it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr != nil {
		return notConstructedErr
	}

	return ErrDefaultConstructorGuard
}
