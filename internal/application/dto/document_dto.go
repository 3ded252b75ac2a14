package dto

import "time"

// UploadDocumentRequest descriptive fields accompanying the multipart upload.
// The binary arrives as the `file` form field; Title and Category gate the
// upload before any storage write.
type UploadDocumentRequest struct {
	Title           string `form:"title" validate:"required"`
	Description     string `form:"description"`
	Category        string `form:"category" validate:"required"`
	ClientID        string `form:"client_id"`
	ProjectID       string `form:"project_id"`
	InvoiceID       string `form:"invoice_id"`
	SubcontractorID string `form:"subcontractor_id"`
	ExpiresAt       string `form:"expires_at"` // YYYY-MM-DD, optional
	Tags            string `form:"tags"`       // comma separated, optional
}

// DocumentResponse document metadata in responses. ClientName is resolved via
// a secondary lookup when the document is linked to a client.
type DocumentResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	FileName        string     `json:"file_name"`
	FileType        string     `json:"file_type"`
	FileSize        int64      `json:"file_size"`
	Category        string     `json:"category"`
	ClientID        string     `json:"client_id,omitempty"`
	ClientName      string     `json:"client_name,omitempty"`
	ProjectID       string     `json:"project_id,omitempty"`
	InvoiceID       string     `json:"invoice_id,omitempty"`
	SubcontractorID string     `json:"subcontractor_id,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	ExpiryBucket    string     `json:"expiry_bucket,omitempty"` // overdue|due_today|due_soon|upcoming
	Tags            []string   `json:"tags,omitempty"`
	UploadedBy      string     `json:"uploaded_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
