// Package i18n renders message codes into human-readable text. It holds the
// built-in English catalog; the domain core only works with codes.
package i18n

import (
	"fmt"

	"transportation/internal/core/domain/model/transportorder"
)

// CatalogTranslator is a map-backed Translator. Unknown codes render as the
// code itself so a missing catalog entry never hides the error class.
type CatalogTranslator struct {
	catalog map[string]string
}

// NewEnglishTranslator creates a translator with the built-in English
// catalog.
func NewEnglishTranslator() *CatalogTranslator {
	return &CatalogTranslator{
		catalog: map[string]string{
			transportorder.CodeStateChangeNullState:      "requested state for order %s is missing or unknown",
			transportorder.CodeStateChangeBackwards:      "order %s must not move back in its lifecycle",
			transportorder.CodeStateChangeNotReady:       "transition to %s is not allowed for created order %s",
			transportorder.CodeStateChangeIncomplete:     "order %s misses a transport unit or a target and cannot proceed",
			transportorder.CodeStateChangeInitialized:    "transition to %s is not allowed for initialized order %s",
			transportorder.CodeStateChangeAlreadyStarted: "transport unit %s already moves, order %s cannot start",
			transportorder.CodeStateChangeCompleted:      "order %s is already completed",
			transportorder.CodeStateChangeUnreachable:    "order state %s is unmanaged, order %s needs attention",
		},
	}
}

// Translate renders the code with its arguments.
func (t *CatalogTranslator) Translate(code string, args ...any) string {
	pattern, ok := t.catalog[code]
	if !ok {
		return code
	}
	return fmt.Sprintf(pattern, args...)
}
