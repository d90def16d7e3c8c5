package models

import "time"

// SignoffAgreement tracks the e-signature lifecycle of a contractor's yearly
// sign-off document. The envelope ID is the identity assigned by the external
// signing provider; the document URL points at blob storage.
type SignoffAgreement struct {
	BaseModel
	CMCode      string          `json:"cm_code" gorm:"not null;size:60;index" validate:"required"`
	Period      string          `json:"period" gorm:"not null;size:20" validate:"required"`
	Status      AgreementStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	EnvelopeID  string          `json:"envelope_id" gorm:"size:100;index"`
	DocumentURL string          `json:"document_url" gorm:"size:500"`
	SignedAt    *time.Time      `json:"signed_at"`
}

// TableName returns the table name for SignoffAgreement
func (SignoffAgreement) TableName() string {
	return "signoff_agreements"
}
