package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Order represents one customer submission. It is the aggregate root that
// manages the order lifecycle from creation through claiming, preparation
// and pickup.
//
// Order follows these invariants:
//   - The order code is assigned exactly once and never changes
//   - Customer name must be non-empty
//   - An order always has at least one line item
//   - Status transitions follow the Pending -> InProgress -> Ready -> Completed
//     workflow and never move backward
//   - ClaimedAt is nil if and only if the status is Pending
//   - CompletedAt is nil unless the status is Completed
//
// The struct uses private fields to ensure encapsulation; state is mutated
// only through the transition methods, each of which is the sole writer of
// its target fields.
type Order struct {
	// id is the internal storage key, zero until the order is persisted
	id int64

	// code is the client-facing identifier used for all lookups
	code kernel.OrderCode

	// customerName identifies the customer (required)
	customerName string

	// customerPhone is the customer's contact number (optional)
	customerPhone string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set at creation and never changes
	createdAt time.Time

	// claimedAt is set exactly once, when a worker claims the order
	claimedAt *time.Time

	// completedAt is set exactly once, when the order is picked up
	completedAt *time.Time

	// items is the ordered collection of line items owned by this order
	items []Item

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// The code must come from kernel.NewOrderCode; the creation timestamp is
// taken from the wall clock. Customer phone may be empty.
//
// Returns ErrOrderHasNoItems when items is empty, and validation errors for
// an invalid code, empty customer name or invalid items.
func NewOrder(code kernel.OrderCode, customerName string, customerPhone string, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.customerPhone = customerPhone
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All lifecycle fields are taken as stored; consistency between status and
// timestamps is verified so corrupted rows are rejected rather than revived.
func RestoreOrder(
	id int64,
	code kernel.OrderCode,
	customerName string,
	customerPhone string,
	status Status,
	createdAt time.Time,
	claimedAt *time.Time,
	completedAt *time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		status.Validate(),
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if (claimedAt == nil) != (status == Pending) {
		return nil, errs.NewValueIsInvalidErrorWithCause("claimedAt",
			fmt.Errorf("claim timestamp is inconsistent with status %s", status))
	}
	if completedAt != nil && status != Completed {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedAt",
			fmt.Errorf("completion timestamp is inconsistent with status %s", status))
	}

	o.id = id
	o.customerPhone = customerPhone
	o.claimedAt = claimedAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order codes.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.code.IsEqual(other.code)
}

// ID returns the internal storage key, or zero if the order is not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// Code returns the client-facing order code.
func (o *Order) Code() kernel.OrderCode {
	return o.code
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number, empty if not given.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ClaimedAt returns the claim timestamp, nil while the order is Pending.
func (o *Order) ClaimedAt() *time.Time {
	return o.claimedAt
}

// CompletedAt returns the pickup timestamp, nil until the order is Completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Items returns a copy of the order's line items in submission order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Claim transitions the order from Pending to InProgress and records the
// claim timestamp. Returns InvalidTransitionError, carrying the order code
// and the actual current status, when the order is not Pending.
//
// Callers coordinating concurrent workers must resolve the order under the
// store's exclusive lock before invoking Claim, so that two workers can
// never both observe Pending.
func (o *Order) Claim() error {
	if !o.status.CanClaim() {
		return NewInvalidTransitionError(o.code.String(), "claimed", Pending, o.status)
	}

	now := time.Now().UTC()
	o.status = InProgress
	o.claimedAt = &now
	return nil
}

// MarkReady transitions the order from InProgress to Ready.
// Returns InvalidTransitionError when the order is not InProgress.
func (o *Order) MarkReady() error {
	if !o.status.CanMarkReady() {
		return NewInvalidTransitionError(o.code.String(), "marked ready", InProgress, o.status)
	}

	o.status = Ready
	return nil
}

// Complete transitions the order from Ready to Completed and records the
// pickup timestamp. Completed is terminal; no further transitions are allowed.
// Returns InvalidTransitionError when the order is not Ready.
func (o *Order) Complete() error {
	if !o.status.CanComplete() {
		return NewInvalidTransitionError(o.code.String(), "completed", Ready, o.status)
	}

	now := time.Now().UTC()
	o.status = Completed
	o.completedAt = &now
	return nil
}

func (o *Order) setCode(code kernel.OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
