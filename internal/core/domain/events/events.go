// Package events defines the audit events emitted by the shipment ledger.
// Events are best-effort notifications for history and audit consumers; they
// are published after the owning transaction commits and never participate in
// it.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event type names as they appear on the wire.
const (
	TypeRoleGranted      = "role.granted"
	TypeRoleRevoked      = "role.revoked"
	TypeShipmentCreated  = "shipment.created"
	TypeMilestoneUpdated = "shipment.milestone_updated"
	TypeDocumentAttached = "shipment.document_attached"
	TypeEscrowOpened     = "escrow.opened"
	TypeDepositAdded     = "escrow.deposit_added"
	TypeFundsReleased    = "escrow.funds_released"
	TypeEscrowRefunded   = "escrow.refunded"
)

// Event is the envelope around every emitted payload. Key groups related
// events for ordered consumption (per-shipment or per-account).
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

func newEvent(eventType, key string, occurredAt time.Time, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		Key:        key,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// RoleChangedPayload describes a grant or revocation of a role.
type RoleChangedPayload struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	Sender  string `json:"sender"`
}

// NewRoleGranted creates a role grant event keyed by the affected account.
func NewRoleGranted(role, account, sender string, occurredAt time.Time) Event {
	return newEvent(TypeRoleGranted, account, occurredAt,
		RoleChangedPayload{Role: role, Account: account, Sender: sender})
}

// NewRoleRevoked creates a role revocation event keyed by the affected account.
func NewRoleRevoked(role, account, sender string, occurredAt time.Time) Event {
	return newEvent(TypeRoleRevoked, account, occurredAt,
		RoleChangedPayload{Role: role, Account: account, Sender: sender})
}

// ShipmentCreatedPayload describes a newly registered shipment.
type ShipmentCreatedPayload struct {
	ShipmentID uint64 `json:"shipmentId"`
	Staff      string `json:"staff"`
	Buyer      string `json:"buyer"`
}

// NewShipmentCreated creates a shipment creation event keyed by shipment id.
func NewShipmentCreated(shipmentID uint64, staff, buyer string, occurredAt time.Time) Event {
	return newEvent(TypeShipmentCreated, shipmentKey(shipmentID), occurredAt,
		ShipmentCreatedPayload{ShipmentID: shipmentID, Staff: staff, Buyer: buyer})
}

// MilestoneUpdatedPayload describes a lifecycle transition.
type MilestoneUpdatedPayload struct {
	ShipmentID uint64 `json:"shipmentId"`
	OldStatus  string `json:"oldStatus"`
	NewStatus  string `json:"newStatus"`
	Reason     string `json:"reason,omitempty"`
}

// NewMilestoneUpdated creates a transition event keyed by shipment id.
func NewMilestoneUpdated(shipmentID uint64, oldStatus, newStatus, reason string, occurredAt time.Time) Event {
	return newEvent(TypeMilestoneUpdated, shipmentKey(shipmentID), occurredAt,
		MilestoneUpdatedPayload{ShipmentID: shipmentID, OldStatus: oldStatus, NewStatus: newStatus, Reason: reason})
}

// DocumentAttachedPayload describes a document appended to a shipment.
type DocumentAttachedPayload struct {
	ShipmentID uint64 `json:"shipmentId"`
	DocType    string `json:"docType"`
	ContentRef string `json:"contentRef"`
	UploadedBy string `json:"uploadedBy"`
}

// NewDocumentAttached creates a document attachment event keyed by shipment id.
func NewDocumentAttached(shipmentID uint64, docType, contentRef, uploadedBy string, occurredAt time.Time) Event {
	return newEvent(TypeDocumentAttached, shipmentKey(shipmentID), occurredAt,
		DocumentAttachedPayload{ShipmentID: shipmentID, DocType: docType, ContentRef: contentRef, UploadedBy: uploadedBy})
}

// EscrowOpenedPayload describes a newly funded escrow. Carrier is empty when
// not yet known.
type EscrowOpenedPayload struct {
	ShipmentID  uint64    `json:"shipmentId"`
	Buyer       string    `json:"buyer"`
	Carrier     string    `json:"carrier,omitempty"`
	TotalAmount int64     `json:"totalAmount"`
	Deadline    time.Time `json:"deadline"`
}

// NewEscrowOpened creates an escrow opening event keyed by shipment id.
func NewEscrowOpened(shipmentID uint64, buyer, carrier string, totalAmount int64, deadline, occurredAt time.Time) Event {
	return newEvent(TypeEscrowOpened, shipmentKey(shipmentID), occurredAt,
		EscrowOpenedPayload{ShipmentID: shipmentID, Buyer: buyer, Carrier: carrier, TotalAmount: totalAmount, Deadline: deadline})
}

// DepositAddedPayload describes additional funds added to an escrow.
type DepositAddedPayload struct {
	ShipmentID uint64 `json:"shipmentId"`
	Amount     int64  `json:"amount"`
}

// NewDepositAdded creates a deposit event keyed by shipment id.
func NewDepositAdded(shipmentID uint64, amount int64, occurredAt time.Time) Event {
	return newEvent(TypeDepositAdded, shipmentKey(shipmentID), occurredAt,
		DepositAddedPayload{ShipmentID: shipmentID, Amount: amount})
}

// FundsReleasedPayload describes a milestone payout.
type FundsReleasedPayload struct {
	ShipmentID     uint64 `json:"shipmentId"`
	MilestoneIndex int    `json:"milestoneIndex"`
	Recipient      string `json:"recipient"`
	Amount         int64  `json:"amount"`
}

// NewFundsReleased creates a payout event keyed by shipment id.
func NewFundsReleased(shipmentID uint64, milestoneIndex int, recipient string, amount int64, occurredAt time.Time) Event {
	return newEvent(TypeFundsReleased, shipmentKey(shipmentID), occurredAt,
		FundsReleasedPayload{ShipmentID: shipmentID, MilestoneIndex: milestoneIndex, Recipient: recipient, Amount: amount})
}

// EscrowRefundedPayload describes a refund of the unreleased balance.
type EscrowRefundedPayload struct {
	ShipmentID uint64 `json:"shipmentId"`
	Buyer      string `json:"buyer"`
	Amount     int64  `json:"amount"`
}

// NewEscrowRefunded creates a refund event keyed by shipment id.
func NewEscrowRefunded(shipmentID uint64, buyer string, amount int64, occurredAt time.Time) Event {
	return newEvent(TypeEscrowRefunded, shipmentKey(shipmentID), occurredAt,
		EscrowRefundedPayload{ShipmentID: shipmentID, Buyer: buyer, Amount: amount})
}

func shipmentKey(shipmentID uint64) string {
	return fmt.Sprintf("shipment-%d", shipmentID)
}
