// Package guard provides a defensive construction check for value objects and
// entities. Embedding a ConstructorGuard in a struct makes it possible to tell
// apart instances created through their designated constructor from zero
// values, so that validation can reject the latter.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which is the whole point: a struct literal
// that bypasses the constructor carries a zero-value guard.
//
// Usage:
//
//	type Barcode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBarcode(value string) (Barcode, error) {
//	    if value == "" {
//	        return Barcode{}, errors.New("barcode is required")
//	    }
//	    return Barcode{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b Barcode) Validate() error {
//	    return b.guard.Validate(ErrBarcodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that passes validation. Call it only
// from the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
