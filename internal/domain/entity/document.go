package entity

import "time"

// Document categories are free-form but these cover the usual uploads.
const (
	DocumentCategoryContract    = "contract"
	DocumentCategoryInvoice     = "invoice"
	DocumentCategoryCompliance  = "compliance"
	DocumentCategoryCorrespond  = "correspondence"
	DocumentCategoryOther       = "other"
)

// Document is an uploaded file plus its metadata. The binary itself lives in
// object storage under StorageKey; deleting the row is always attempted even if
// the object delete fails.
type Document struct {
	ID              string
	Title           string
	Description     string
	FileName        string
	StorageKey      string
	FileType        string
	FileSize        int64
	Category        string
	ClientID        string // optional associations, empty when unset
	ProjectID       string
	InvoiceID       string
	SubcontractorID string
	ExpiresAt       *time.Time
	Tags            []string
	UploadedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
