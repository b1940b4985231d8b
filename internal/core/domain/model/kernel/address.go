package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// maxAddressLength bounds the length of an account address. Addresses are
// produced by external wallet tooling; the ledger only stores and compares them.
const maxAddressLength = 128

// ErrAddressIsNotConstructed indicates that an Address was not properly
// initialized through NewAddress. This error is returned when validating a
// zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object identifying an external account: a staff member,
// packer, carrier, buyer, or administrator. The ledger treats addresses as
// opaque identities; it never derives meaning from their bytes.
//
// The zero value of Address is invalid and must be constructed using NewAddress.
// Address is immutable and safe for concurrent use.
//
// Example usage:
//
//	buyer, err := kernel.NewAddress("0x7f3b9c2a")
//	if err != nil {
//	    // handle malformed address
//	}
type Address struct {
	value string
}

// NewAddress creates an Address from its string form. The string must be
// non-empty after trimming, contain no whitespace, and not exceed the length
// bound. Returns a ValueIsInvalidError otherwise.
func NewAddress(value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(trimmed) > maxAddressLength {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("length %d exceeds maximum %d", len(trimmed), maxAddressLength))
	}
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
				fmt.Errorf("%q contains whitespace", trimmed))
		}
	}

	return Address{value: trimmed}, nil
}

// String returns the address in its original string form.
// For a zero value Address, this returns the empty string.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses for equality. Comparison is exact and
// case-sensitive: the ledger never normalizes addresses it did not mint.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// IsZero reports whether the address is the unset zero value. Used for
// optional fields such as a shipment's carrier before binding.
func (a Address) IsZero() bool {
	return a.value == ""
}

// Validate checks if the Address is properly constructed.
// Returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if a.value == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
