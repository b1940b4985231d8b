package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// maxDocTypeLength bounds the free-form document type label
// ("invoice", "bill-of-lading", "photo", ...).
const maxDocTypeLength = 64

// ErrDocumentIsNotConstructed is returned when a Document instance was not
// created through the NewDocument factory method.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is an immutable entry in a shipment's append-only document list.
// It records what was attached, by whom, and when; the content itself lives
// in an external store behind the content reference.
type Document struct {
	docType    string
	contentRef kernel.ContentRef
	uploadedBy kernel.Address
	attachedAt time.Time

	isConstructed bool
}

// NewDocument creates a Document entry. The type label must be non-empty and
// length-bounded; the reference and uploader must be valid.
func NewDocument(docType string, contentRef kernel.ContentRef, uploadedBy kernel.Address, attachedAt time.Time) (Document, error) {
	trimmed := strings.TrimSpace(docType)
	if trimmed == "" {
		return Document{}, errs.NewValueIsRequiredError("docType")
	}
	if len(trimmed) > maxDocTypeLength {
		return Document{}, errs.NewValueIsInvalidErrorWithCause("docType",
			fmt.Errorf("length %d exceeds maximum %d", len(trimmed), maxDocTypeLength))
	}
	if err := contentRef.Validate(); err != nil {
		return Document{}, err
	}
	if err := uploadedBy.Validate(); err != nil {
		return Document{}, err
	}
	if attachedAt.IsZero() {
		return Document{}, errs.NewValueIsRequiredError("attachedAt")
	}

	return Document{
		docType:       trimmed,
		contentRef:    contentRef,
		uploadedBy:    uploadedBy,
		attachedAt:    attachedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Document was properly constructed through NewDocument.
func (d Document) Validate() error {
	if !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// DocType returns the free-form type label of the document.
func (d Document) DocType() string {
	return d.docType
}

// ContentRef returns the opaque reference to the stored content.
func (d Document) ContentRef() kernel.ContentRef {
	return d.contentRef
}

// UploadedBy returns the address that attached the document.
func (d Document) UploadedBy() kernel.Address {
	return d.uploadedBy
}

// AttachedAt returns when the document was attached.
func (d Document) AttachedAt() time.Time {
	return d.attachedAt
}
