// Package shipmentrepo persists shipment aggregates across three tables:
// shipments, shipment_content_refs and shipment_documents. Child rows carry
// an explicit position so the aggregate restores in insertion order.
package shipmentrepo

import (
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement:false"`
	Staff       string    `gorm:"size:128;index"`
	Buyer       string    `gorm:"size:128;index"`
	Carrier     string    `gorm:"size:128;index"`
	Status      int
	CloseReason string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ContentRefDTO is one content reference row of a shipment.
type ContentRefDTO struct {
	ShipmentID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	Ref        string `gorm:"size:512"`
}

// TableName specifies the database table name for content reference rows.
func (ContentRefDTO) TableName() string {
	return "shipment_content_refs"
}

// DocumentDTO is one attached document row of a shipment.
type DocumentDTO struct {
	ShipmentID uint64    `gorm:"primaryKey;autoIncrement:false"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	DocType    string    `gorm:"size:64"`
	ContentRef string    `gorm:"size:512"`
	UploadedBy string    `gorm:"size:128"`
	AttachedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for document rows.
func (DocumentDTO) TableName() string {
	return "shipment_documents"
}

func fromDomain(shp *shipment.Shipment) (ShipmentDTO, []ContentRefDTO, []DocumentDTO) {
	dto := ShipmentDTO{
		ID:          shp.ID(),
		Staff:       shp.Staff().String(),
		Buyer:       shp.Buyer().String(),
		Carrier:     shp.Carrier().String(),
		Status:      shp.Status().Code(),
		CloseReason: shp.CloseReason(),
		CreatedAt:   shp.CreatedAt(),
		UpdatedAt:   shp.UpdatedAt(),
	}

	refs := shp.ContentRefs()
	refDTOs := make([]ContentRefDTO, 0, len(refs))
	for i, ref := range refs {
		refDTOs = append(refDTOs, ContentRefDTO{
			ShipmentID: shp.ID(),
			Position:   i,
			Ref:        ref.String(),
		})
	}

	docs := shp.Documents()
	docDTOs := make([]DocumentDTO, 0, len(docs))
	for i, doc := range docs {
		docDTOs = append(docDTOs, DocumentDTO{
			ShipmentID: shp.ID(),
			Position:   i,
			DocType:    doc.DocType(),
			ContentRef: doc.ContentRef().String(),
			UploadedBy: doc.UploadedBy().String(),
			AttachedAt: doc.AttachedAt(),
		})
	}

	return dto, refDTOs, docDTOs
}

func toDomain(dto ShipmentDTO, refDTOs []ContentRefDTO, docDTOs []DocumentDTO) (*shipment.Shipment, error) {
	staff, err := kernel.NewAddress(dto.Staff)
	if err != nil {
		return nil, err
	}

	buyer, err := kernel.NewAddress(dto.Buyer)
	if err != nil {
		return nil, err
	}

	var carrier kernel.Address
	if dto.Carrier != "" {
		carrier, err = kernel.NewAddress(dto.Carrier)
		if err != nil {
			return nil, err
		}
	}

	status, err := shipment.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	refs := make([]kernel.ContentRef, 0, len(refDTOs))
	for _, refDTO := range refDTOs {
		ref, refErr := kernel.NewContentRef(refDTO.Ref)
		if refErr != nil {
			return nil, refErr
		}
		refs = append(refs, ref)
	}

	docs := make([]shipment.Document, 0, len(docDTOs))
	for _, docDTO := range docDTOs {
		contentRef, docErr := kernel.NewContentRef(docDTO.ContentRef)
		if docErr != nil {
			return nil, docErr
		}

		uploadedBy, docErr := kernel.NewAddress(docDTO.UploadedBy)
		if docErr != nil {
			return nil, docErr
		}

		doc, docErr := shipment.NewDocument(docDTO.DocType, contentRef, uploadedBy, docDTO.AttachedAt)
		if docErr != nil {
			return nil, docErr
		}
		docs = append(docs, doc)
	}

	return shipment.RestoreShipment(
		dto.ID,
		staff, buyer, carrier,
		status,
		refs,
		docs,
		dto.CloseReason,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
