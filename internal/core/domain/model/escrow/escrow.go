package escrow

import (
	"errors"
	"fmt"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// MilestoneCount is the number of payout checkpoints per escrow.
const MilestoneCount = 4

// cumulativeBps holds the cumulative payout per milestone in basis points of
// the escrow total: 30%, 60%, 80%, 100%. The increments are therefore
// 30/30/20/20.
var cumulativeBps = [MilestoneCount]int64{3000, 6000, 8000, 10000}

const bpsDenominator = 10000

var (
	// ErrEscrowIsNotConstructed is returned when an Escrow instance was not
	// created through the NewEscrow factory method.
	ErrEscrowIsNotConstructed = errors.New("Escrow must be created via NewEscrow constructor")
)

// Escrow is the aggregate root for a per-shipment holding of funds, released
// incrementally against shipment milestones or refunded to the buyer.
//
// Escrow follows these invariants:
//   - released never exceeds total
//   - each milestone slot releases at most once
//   - active becomes false exactly when the escrow is fully released or a
//     refund has executed; it never becomes true again
//   - Can only be created through NewEscrow or RestoreEscrow
//
// The aggregate computes amounts and enforces admissibility; actually moving
// tokens is the command handler's job, inside the same transaction.
type Escrow struct {
	shipmentID uint64
	buyer      kernel.Address
	carrier    kernel.Address // zero until the first release binds it
	total      int64
	released   int64
	milestones [MilestoneCount]bool
	deadline   time.Time
	active     bool
	completed  bool

	isConstructed bool
}

// NewEscrow opens an escrow for a shipment. The total must be positive and
// the deadline strictly in the future relative to now. The carrier may be
// unknown at open time; it is bound at the first release.
func NewEscrow(shipmentID uint64, buyer kernel.Address, total int64, deadline, now time.Time) (*Escrow, error) {
	if shipmentID == 0 {
		return nil, errs.NewValueIsRequiredError("shipmentId")
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is not greater than 0", total))
	}
	if !deadline.After(now) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deadline",
			fmt.Errorf("%s is not in the future", deadline.UTC().Format(time.RFC3339)))
	}

	return &Escrow{
		shipmentID:    shipmentID,
		buyer:         buyer,
		total:         total,
		deadline:      deadline,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreEscrow reconstructs an Escrow from persistence, re-checking the
// ledger invariants so a corrupted row cannot produce an invalid aggregate.
func RestoreEscrow(
	shipmentID uint64,
	buyer, carrier kernel.Address,
	total, released int64,
	milestones [MilestoneCount]bool,
	deadline time.Time,
	active, completed bool,
) (*Escrow, error) {
	if shipmentID == 0 {
		return nil, errs.NewValueIsRequiredError("shipmentId")
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if !carrier.IsZero() {
		if err := carrier.Validate(); err != nil {
			return nil, err
		}
	}
	if total <= 0 {
		return nil, errs.NewValueIsInvalidError("totalAmount")
	}
	if released < 0 || released > total {
		return nil, errs.NewValueIsInvalidErrorWithCause("releasedAmount",
			fmt.Errorf("%d is outside [0, %d]", released, total))
	}
	if deadline.IsZero() {
		return nil, errs.NewValueIsRequiredError("deadline")
	}

	return &Escrow{
		shipmentID:    shipmentID,
		buyer:         buyer,
		carrier:       carrier,
		total:         total,
		released:      released,
		milestones:    milestones,
		deadline:      deadline,
		active:        active,
		completed:     completed,
		isConstructed: true,
	}, nil
}

// Validate ensures the Escrow instance was properly constructed.
func (e *Escrow) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEscrowIsNotConstructed
	}
	return nil
}

// ShipmentID returns the shipment this escrow is bound to (1:1).
func (e *Escrow) ShipmentID() uint64 {
	return e.shipmentID
}

// Buyer returns the funding party's address.
func (e *Escrow) Buyer() kernel.Address {
	return e.buyer
}

// Carrier returns the carrier recorded at the first release, or the zero
// Address when no release has happened yet.
func (e *Escrow) Carrier() kernel.Address {
	return e.carrier
}

// TotalAmount returns the total escrowed amount, including later deposits.
func (e *Escrow) TotalAmount() int64 {
	return e.total
}

// ReleasedAmount returns the amount released so far.
func (e *Escrow) ReleasedAmount() int64 {
	return e.released
}

// RemainingAmount returns the unreleased balance.
func (e *Escrow) RemainingAmount() int64 {
	return e.total - e.released
}

// Deadline returns the absolute time after which releases are blocked and a
// refund becomes admissible.
func (e *Escrow) Deadline() time.Time {
	return e.deadline
}

// IsActive reports whether the escrow still holds funds.
func (e *Escrow) IsActive() bool {
	return e.active
}

// IsCompleted reports whether the escrow was fully released.
func (e *Escrow) IsCompleted() bool {
	return e.completed
}

// MilestoneReleased reports whether the numbered milestone (1..4) has been
// released.
func (e *Escrow) MilestoneReleased(milestone int) bool {
	if milestone < 1 || milestone > MilestoneCount {
		return false
	}
	return e.milestones[milestone-1]
}

// AnyReleased reports whether any milestone has ever been released.
func (e *Escrow) AnyReleased() bool {
	return e.released > 0 || e.milestones != [MilestoneCount]bool{}
}

// UnreleasedMilestones returns the milestone numbers (1..4) that have not
// been released yet, in ascending order.
func (e *Escrow) UnreleasedMilestones() []int {
	pending := make([]int, 0, MilestoneCount)
	for i, released := range e.milestones {
		if !released {
			pending = append(pending, i+1)
		}
	}
	return pending
}

// BindCarrier records the carrier on the escrow. The first bind wins; binding
// the same address again is a no-op.
func (e *Escrow) BindCarrier(carrier kernel.Address) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	if e.carrier.IsZero() {
		e.carrier = carrier
		return nil
	}
	if e.carrier.IsEqual(carrier) {
		return nil
	}
	return errs.NewStateError("bind carrier", "carrier is already bound")
}

// Deposit increases the escrow total by a positive amount. The payout
// fractions apply to the grown total, so a deposit raises the value of every
// milestone not yet released.
func (e *Escrow) Deposit(amount int64) error {
	if !e.active {
		return errs.NewStateError("deposit", "escrow is inactive")
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	e.total += amount
	return nil
}

// Release marks the numbered milestone (1..4) as released and returns the
// increment to pay out: the milestone's cumulative fraction of the total
// minus what was already released.
//
// Fails with a StateError if the escrow is inactive, a DeadlineError if now
// is past the deadline, and a DuplicateError if the milestone slot was
// already released. When the released amount reaches the total, the escrow
// completes and deactivates.
func (e *Escrow) Release(milestone int, now time.Time) (int64, error) {
	if !e.active {
		return 0, errs.NewStateError("release", "escrow is inactive")
	}
	if now.After(e.deadline) {
		return 0, errs.NewDeadlineError("release", e.deadline)
	}
	if milestone < 1 || milestone > MilestoneCount {
		return 0, errs.NewValueIsInvalidErrorWithCause("milestoneIndex",
			fmt.Errorf("%d is outside [1, %d]", milestone, MilestoneCount))
	}
	if e.milestones[milestone-1] {
		return 0, errs.NewDuplicateError("milestone already released", milestone)
	}

	increment := e.total*cumulativeBps[milestone-1]/bpsDenominator - e.released
	if increment < 0 {
		// An earlier out-of-order release already covered this fraction.
		increment = 0
	}

	e.released += increment
	e.milestones[milestone-1] = true

	if e.released == e.total {
		e.completed = true
		e.active = false
	}

	return increment, nil
}

// Refund computes the refundable amount and deactivates the escrow. Two
// conditions admit a refund:
//
//   - The deadline has passed: the unreleased balance goes back to the buyer
//     regardless of how much was released.
//   - The shipment was explicitly canceled or failed (terminated) and no
//     milestone was ever released: the full total goes back.
//
// Everything else is rejected: a refund before the deadline with releases
// already started, a refund of a fully released escrow, or a refund of a
// live shipment.
func (e *Escrow) Refund(now time.Time, terminated bool) (int64, error) {
	if !e.active {
		return 0, errs.NewStateError("refund", "escrow is inactive")
	}

	if now.After(e.deadline) {
		amount := e.total - e.released
		if amount == 0 {
			return 0, errs.NewStateError("refund", "no funds to refund")
		}
		e.active = false
		return amount, nil
	}

	if e.AnyReleased() {
		return 0, errs.NewStateError("refund",
			"cannot refund after payments started unless deadline passed")
	}
	if !terminated {
		return 0, errs.NewStateError("refund",
			"shipment is not canceled or failed and deadline has not passed")
	}

	e.active = false
	return e.total, nil
}
