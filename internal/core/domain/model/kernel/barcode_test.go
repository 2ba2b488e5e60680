package kernel_test

import (
	"strings"
	"testing"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarcode(t *testing.T) {
	t.Run("creates barcode from business key", func(t *testing.T) {
		bc, err := kernel.NewBarcode("TU000001")

		require.NoError(t, err)
		require.NoError(t, bc.Validate())
		assert.Equal(t, "TU000001", bc.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		bc, err := kernel.NewBarcode("  TU000001  ")

		require.NoError(t, err)
		assert.Equal(t, "TU000001", bc.String())
	})

	t.Run("rejects empty key", func(t *testing.T) {
		_, err := kernel.NewBarcode("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects blank key", func(t *testing.T) {
		_, err := kernel.NewBarcode("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects over-long key", func(t *testing.T) {
		_, err := kernel.NewBarcode(strings.Repeat("X", kernel.BarcodeMaxLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("accepts key at maximum length", func(t *testing.T) {
		bc, err := kernel.NewBarcode(strings.Repeat("X", kernel.BarcodeMaxLength))

		require.NoError(t, err)
		assert.Len(t, bc.String(), kernel.BarcodeMaxLength)
	})
}

func TestBarcode_IsEqual(t *testing.T) {
	a, _ := kernel.NewBarcode("TU000001")
	b, _ := kernel.NewBarcode("TU000001")
	c, _ := kernel.NewBarcode("TU000002")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestBarcode_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var bc kernel.Barcode

		require.ErrorIs(t, bc.Validate(), kernel.ErrBarcodeIsNotConstructed)
	})
}
