package kernel

import (
	"strings"

	"transportation/internal/pkg/errs"
	"transportation/internal/pkg/guard"
)

// BarcodeMaxLength bounds the business key length; matches the column size
// used by the persistence layer.
const BarcodeMaxLength = 40

// ErrBarcodeIsNotConstructed indicates a zero-value Barcode that was not
// created via NewBarcode.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError(
	"Barcode must be created via NewBarcode")

// Barcode is the business key of a transport unit, the physical item moved by
// a transport order. It is an immutable value object; an empty or blank key is
// not a valid Barcode.
type Barcode struct {
	value string

	guard guard.ConstructorGuard
}

// NewBarcode creates a Barcode from a business key. The key must be non-blank
// and at most BarcodeMaxLength characters long.
func NewBarcode(value string) (Barcode, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if len(trimmed) > BarcodeMaxLength {
		return Barcode{}, errs.NewValueIsOutOfRangeError("barcode length", len(trimmed), 1, BarcodeMaxLength)
	}

	return Barcode{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the business key.
func (b Barcode) String() string {
	return b.value
}

// IsEqual reports whether both barcodes carry the same business key.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// Validate returns ErrBarcodeIsNotConstructed for the zero value.
func (b Barcode) Validate() error {
	return b.guard.Validate(ErrBarcodeIsNotConstructed)
}
