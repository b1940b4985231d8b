package shipment

import (
	"errors"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment is the aggregate root for the shipment lifecycle. It owns the
// milestone state machine, the append-only content reference history, and
// the append-only document list.
//
// Shipment follows these invariants:
//   - Must have a positive sequential identifier
//   - Staff (creator) and buyer addresses are immutable after creation
//   - The carrier is bound at most once
//   - Status only moves along the defined state machine; nothing is ever
//     removed from the content or document histories
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id          uint64
	staff       kernel.Address
	carrier     kernel.Address // zero until bound
	buyer       kernel.Address
	status      Status
	contentRefs []kernel.ContentRef
	documents   []Document
	closeReason string // set when the shipment is canceled or failed
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewShipment creates a Shipment in Created status. The identifier must be
// positive (identifiers are issued sequentially by the persistence layer),
// staff and buyer must be valid addresses, and the initial content reference
// must be valid. The carrier is left unbound.
func NewShipment(id uint64, staff, buyer kernel.Address, contentRef kernel.ContentRef, now time.Time) (*Shipment, error) {
	s := &Shipment{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setStaff(staff),
		s.setBuyer(buyer),
		s.setTimestamps(now),
	); err != nil {
		return nil, err
	}

	if err := contentRef.Validate(); err != nil {
		return nil, err
	}
	s.contentRefs = []kernel.ContentRef{contentRef}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. All invariants
// are re-checked so a corrupted row cannot produce an invalid aggregate.
func RestoreShipment(
	id uint64,
	staff, buyer, carrier kernel.Address,
	status Status,
	contentRefs []kernel.ContentRef,
	documents []Document,
	closeReason string,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	if len(contentRefs) == 0 {
		return nil, errs.NewValueIsRequiredError("contentRefs")
	}

	s, err := NewShipment(id, staff, buyer, contentRefs[0], createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, ref := range contentRefs[1:] {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
	}
	for _, doc := range documents {
		if err := doc.Validate(); err != nil {
			return nil, err
		}
	}
	if !carrier.IsZero() {
		if err := carrier.Validate(); err != nil {
			return nil, err
		}
	}

	s.carrier = carrier
	s.status = status
	s.contentRefs = contentRefs
	s.documents = documents
	s.closeReason = closeReason
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's sequential identifier.
func (s *Shipment) ID() uint64 {
	return s.id
}

// Staff returns the address that created the shipment.
func (s *Shipment) Staff() kernel.Address {
	return s.staff
}

// Buyer returns the paying party's address.
func (s *Shipment) Buyer() kernel.Address {
	return s.buyer
}

// Carrier returns the bound carrier's address, or the zero Address when no
// carrier has been bound yet.
func (s *Shipment) Carrier() kernel.Address {
	return s.carrier
}

// HasCarrier reports whether a carrier has been bound.
func (s *Shipment) HasCarrier() bool {
	return !s.carrier.IsZero()
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// ContentRefs returns the append-only history of shipment detail references,
// oldest first.
func (s *Shipment) ContentRefs() []kernel.ContentRef {
	return s.contentRefs
}

// Documents returns the append-only document list, oldest first.
func (s *Shipment) Documents() []Document {
	return s.documents
}

// CloseReason returns the reason recorded when the shipment was canceled or
// failed. Empty for shipments not in an absorbing state.
func (s *Shipment) CloseReason() string {
	return s.closeReason
}

// CreatedAt returns when the shipment was registered.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the shipment last changed.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsParticipant reports whether the address is associated with the shipment:
// the creating staff member, the buyer, or the bound carrier. Participants
// may attach documents.
func (s *Shipment) IsParticipant(addr kernel.Address) bool {
	if addr.IsZero() {
		return false
	}
	return s.staff.IsEqual(addr) || s.buyer.IsEqual(addr) || s.carrier.IsEqual(addr)
}

// BindCarrier binds the carrier exactly once. Binding the same address again
// is a no-op; binding a different address after the first bind is a StateError.
func (s *Shipment) BindCarrier(carrier kernel.Address) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	if s.carrier.IsZero() {
		s.carrier = carrier
		return nil
	}
	if s.carrier.IsEqual(carrier) {
		return nil
	}
	return errs.NewStateError("bind carrier", "carrier is already bound")
}

// AppendContentRef appends a new detail reference to the shipment's history.
// Prior references are never replaced.
func (s *Shipment) AppendContentRef(ref kernel.ContentRef, now time.Time) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	s.contentRefs = append(s.contentRefs, ref)
	s.updatedAt = now
	return nil
}

// AttachDocument appends a document entry to the shipment. Prior entries are
// never overwritten. Authorization (participant or admin) is the caller's
// responsibility; the aggregate only enforces entry validity.
func (s *Shipment) AttachDocument(docType string, contentRef kernel.ContentRef, uploadedBy kernel.Address, now time.Time) (Document, error) {
	doc, err := NewDocument(docType, contentRef, uploadedBy, now)
	if err != nil {
		return Document{}, err
	}

	s.documents = append(s.documents, doc)
	s.updatedAt = now
	return doc, nil
}

// TransitionTo advances the shipment's lifecycle status. For the absorbing
// targets (Canceled, Failed) a non-empty reason is required and recorded;
// for happy-path targets the reason must be empty.
//
// The transition rules themselves live on Status; see Status.CanTransitionTo.
func (s *Shipment) TransitionTo(target Status, reason string, now time.Time) error {
	if target.IsAbsorbing() && reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !target.IsAbsorbing() && reason != "" {
		return errs.NewValueIsInvalidError("reason")
	}

	newStatus, err := s.status.Transition(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	if newStatus.IsAbsorbing() {
		s.closeReason = reason
	}
	s.updatedAt = now
	return nil
}

func (s *Shipment) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("shipmentId")
	}
	s.id = id
	return nil
}

func (s *Shipment) setStaff(staff kernel.Address) error {
	if err := staff.Validate(); err != nil {
		return err
	}
	s.staff = staff
	return nil
}

func (s *Shipment) setBuyer(buyer kernel.Address) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	s.buyer = buyer
	return nil
}

func (s *Shipment) setTimestamps(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = now
	s.updatedAt = now
	return nil
}
