package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentDocumentsQueryHandler retrieves the attached documents of a
// shipment, oldest first.
type GetShipmentDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentDocumentsQueryHandler creates a handler for document listings.
func NewGetShipmentDocumentsQueryHandler(db *gorm.DB) GetShipmentDocumentsQueryHandler {
	return GetShipmentDocumentsQueryHandler{db: db}
}

// Handle executes the query. An unknown shipment yields an empty slice.
func (h GetShipmentDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentDocumentsQuery,
) ([]GetShipmentDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	documents := make([]GetShipmentDocumentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			doc_type,
			content_ref,
			uploaded_by,
			attached_at
		FROM shipment_documents
		WHERE shipment_id = ?
		ORDER BY position
	`, query.ShipmentID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var document GetShipmentDocumentsQueryResponse
		if err = rows.Scan(
			&document.DocType,
			&document.ContentRef,
			&document.UploadedBy,
			&document.AttachedAt,
		); err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
