package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderCodeIsNotConstructed indicates that an OrderCode was not created
// through NewOrderCode or OrderCodeFromString. The zero value is invalid.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderCode must be created via NewOrderCode or OrderCodeFromString",
)

// orderCodePattern matches the client-facing code format: "ORD-" followed by
// eight uppercase hexadecimal characters.
var orderCodePattern = regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

// OrderCode is a value object representing the client-facing order identifier,
// distinct from the internal numeric storage key. Codes are generated once at
// order creation and never change.
//
// The zero value is invalid; construct through NewOrderCode or
// OrderCodeFromString. OrderCode is immutable and safe for concurrent use.
//
// Example:
//
//	code := kernel.NewOrderCode()
//	fmt.Println(code.String()) // e.g. "ORD-5F3A9C21"
type OrderCode struct {
	value string
}

// NewOrderCode generates a new unique order code from the first eight
// hex characters of a random UUID, uppercased.
func NewOrderCode() OrderCode {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return OrderCode{
		value: "ORD-" + strings.ToUpper(raw[:8]),
	}
}

// OrderCodeFromString parses an order code from its string representation.
// Returns an error if the string does not match the expected format.
// Used when reconstructing orders from persistence or parsing client input.
func OrderCodeFromString(s string) (OrderCode, error) {
	if !orderCodePattern.MatchString(s) {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause(
			"orderCode",
			fmt.Errorf("%q does not match format ORD-XXXXXXXX", s),
		)
	}
	return OrderCode{value: s}, nil
}

// String returns the code in its client-facing form, e.g. "ORD-5F3A9C21".
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two order codes for equality.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate checks that the OrderCode was properly constructed.
// Returns ErrOrderCodeIsNotConstructed for the zero value.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return ErrOrderCodeIsNotConstructed
	}
	return nil
}
