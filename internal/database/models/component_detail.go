package models

import "time"

// ComponentDetail represents one version of a packaging component's specification.
// A component code is not unique on its own: each version of the component is a
// separate row, and historical versions are never mutated or deleted. Retirement
// is expressed through IsActive.
type ComponentDetail struct {
	BaseModel
	ComponentCode     string     `json:"component_code" gorm:"not null;size:100;index:idx_component_code_version,unique,composite:version" validate:"required,min=1,max=100"`
	Version           int        `json:"version" gorm:"not null;default:1;index:idx_component_code_version,unique,composite:version" validate:"required,min=1"`
	Description       string     `json:"description" gorm:"not null;size:250" validate:"required,min=1,max=250"`
	ValidityFrom      *time.Time `json:"validity_from"`
	ValidityTo        *time.Time `json:"validity_to"`
	MaterialType      string     `json:"material_type" gorm:"size:100"`
	PackagingTypeID   string     `json:"packaging_type_id" gorm:"size:60"`
	PackagingLevel    string     `json:"packaging_level" gorm:"size:60"`
	ComponentQuantity float64    `json:"component_quantity"`
	ComponentUOM      string     `json:"component_uom" gorm:"size:30"`
	BaseWeight        float64    `json:"base_weight"`
	WeightUOM         string     `json:"weight_uom" gorm:"size:30"`
	PostConsumerPct   float64    `json:"post_consumer_pct"`
	PostIndustrialPct float64    `json:"post_industrial_pct"`
	HelperColumn      string     `json:"helper_column" gorm:"size:250"`
	IsActive          bool       `json:"is_active" gorm:"default:true;index"`

	EvidenceFiles []EvidenceFile `json:"evidence_files,omitempty" gorm:"foreignKey:ComponentDetailID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ComponentDetail
func (ComponentDetail) TableName() string {
	return "component_details"
}
