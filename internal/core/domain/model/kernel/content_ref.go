package kernel

import (
	"fmt"
	"strings"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// maxContentRefLength bounds the length of a content reference. References
// point into an external document store; the ledger never fetches or inspects
// the content itself.
const maxContentRefLength = 512

// ErrContentRefIsNotConstructed indicates that a ContentRef was not properly
// initialized through NewContentRef.
var ErrContentRefIsNotConstructed = errs.NewValueIsRequiredError("ContentRef must be created via NewContentRef")

// ContentRef is a value object referencing externally stored content: shipment
// details, order metadata, or an attached document. It is an opaque string to
// the ledger.
//
// The zero value of ContentRef is invalid and must be constructed using
// NewContentRef. ContentRef is immutable and safe for concurrent use.
type ContentRef struct {
	value string
}

// NewContentRef creates a ContentRef from its string form. The string must be
// non-empty after trimming and not exceed the length bound.
func NewContentRef(value string) (ContentRef, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ContentRef{}, errs.NewValueIsRequiredError("contentRef")
	}
	if len(trimmed) > maxContentRefLength {
		return ContentRef{}, errs.NewValueIsInvalidErrorWithCause("contentRef",
			fmt.Errorf("length %d exceeds maximum %d", len(trimmed), maxContentRefLength))
	}

	return ContentRef{value: trimmed}, nil
}

// String returns the reference in its original string form.
func (c ContentRef) String() string {
	return c.value
}

// IsEqual compares two content references for equality.
func (c ContentRef) IsEqual(other ContentRef) bool {
	return c.value == other.value
}

// Validate checks if the ContentRef is properly constructed.
// Returns ErrContentRefIsNotConstructed for the zero value.
func (c ContentRef) Validate() error {
	if c.value == "" {
		return ErrContentRefIsNotConstructed
	}
	return nil
}
