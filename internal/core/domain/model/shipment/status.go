package shipment

import (
	"fmt"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions:
//
//	Created ──> PickedUp ──> InTransit ──> Arrived ──> Delivered
//	   │            │             │            │
//	   ├────────────┼─────────────┼────────────┼──> Canceled
//	   │            │             │            │
//	   │            └─────────────┴────────────┴──> Failed
//	   └──────────────(cannot fail before pickup)
//
// The happy path advances strictly one step at a time; skipping states is
// rejected. Delivered, Canceled, and Failed are terminal. Canceled is
// reachable from any non-terminal state; Failed only after physical pickup.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when a shipment is registered.
	StatusCreated

	// StatusPickedUp indicates the packer has confirmed physical pickup.
	StatusPickedUp

	// StatusInTransit indicates the carrier has taken the shipment on the road.
	StatusInTransit

	// StatusArrived indicates the carrier reported arrival at the destination.
	StatusArrived

	// StatusDelivered indicates the buyer confirmed receipt. Terminal.
	StatusDelivered

	// StatusCanceled indicates the shipment was abandoned with a reason
	// before delivery. Terminal.
	StatusCanceled

	// StatusFailed indicates the shipment was lost or damaged after pickup.
	// Terminal.
	StatusFailed
)

// Wire codes for statuses as exposed to external callers. Codes follow the
// milestone ordering: 0..4 on the happy path, 5 for cancel, 6 for failure.
const (
	codeCreated   = 0
	codePickedUp  = 1
	codeInTransit = 2
	codeArrived   = 3
	codeDelivered = 4
	codeCanceled  = 5
	codeFailed    = 6
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusCreated:   "Created",
		StatusPickedUp:  "PickedUp",
		StatusInTransit: "InTransit",
		StatusArrived:   "Arrived",
		StatusDelivered: "Delivered",
		StatusCanceled:  "Canceled",
		StatusFailed:    "Failed",
	}
}

// getStatusCodes returns a map of valid Status values to their wire codes.
func getStatusCodes() map[Status]int {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]int{
		StatusCreated:   codeCreated,
		StatusPickedUp:  codePickedUp,
		StatusInTransit: codeInTransit,
		StatusArrived:   codeArrived,
		StatusDelivered: codeDelivered,
		StatusCanceled:  codeCanceled,
		StatusFailed:    codeFailed,
	}
}

// StatusFromCode parses a Status from its wire code.
// Returns a ValueIsInvalidError for unrecognized codes.
func StatusFromCode(code int) (Status, error) {
	for status, c := range getStatusCodes() {
		if c == code {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid status code", code))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the wire code of the status as exposed to external callers.
// Returns -1 for invalid status values.
func (s Status) Code() int {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return -1
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled || s == StatusFailed
}

// IsAbsorbing reports whether the status is one of the failure-path terminals
// reachable from multiple earlier states.
func (s Status) IsAbsorbing() bool {
	return s == StatusCanceled || s == StatusFailed
}

// next returns the happy-path successor, or StatusUnknown when the status has
// no happy-path successor.
func (s Status) next() Status {
	switch s {
	case StatusCreated:
		return StatusPickedUp
	case StatusPickedUp:
		return StatusInTransit
	case StatusInTransit:
		return StatusArrived
	case StatusArrived:
		return StatusDelivered
	default:
		return StatusUnknown
	}
}

// CanTransitionTo validates a transition from the current status to target
// without performing it.
//
// Rules:
//   - Happy-path targets must be exactly the next state ("sequential only").
//   - StatusCanceled is reachable from Created, PickedUp, InTransit, Arrived.
//   - StatusFailed is reachable from PickedUp, InTransit, Arrived.
//   - Terminal states permit nothing.
//
// Returns nil if the transition is allowed, a StateError otherwise.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewStateError("update milestone",
			fmt.Sprintf("%s is terminal", s))
	}

	switch target {
	case StatusCanceled:
		return nil
	case StatusFailed:
		if s == StatusCreated {
			return errs.NewStateError("update milestone",
				"cannot fail a shipment before pickup")
		}
		return nil
	default:
		if target != s.next() {
			return errs.NewStateError("update milestone",
				fmt.Sprintf("sequential only: %s does not follow %s", target, s))
		}
		return nil
	}
}

// Transition returns the target status after validating the transition.
// Returns (StatusUnknown, error) if the transition is not allowed.
func (s Status) Transition(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return StatusUnknown, err
	}
	return target, nil
}
