package models

import "github.com/google/uuid"

// EvidenceFile is an uploaded document supporting a component's declared
// attributes. The binary lives in blob storage; only the URL is kept here.
type EvidenceFile struct {
	BaseModel
	ComponentDetailID uuid.UUID `json:"component_detail_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentCode     string    `json:"component_code" gorm:"not null;size:100;index"`
	Version           int       `json:"version" gorm:"not null;default:1"`
	FileName          string    `json:"file_name" gorm:"not null;size:250"`
	ContentType       string    `json:"content_type" gorm:"size:100"`
	Category          string    `json:"category" gorm:"size:60"`
	BlobURL           string    `json:"blob_url" gorm:"size:500"`
	UploadedBy        string    `json:"uploaded_by" gorm:"size:100"`
}

// TableName returns the table name for EvidenceFile
func (EvidenceFile) TableName() string {
	return "evidence_files"
}
