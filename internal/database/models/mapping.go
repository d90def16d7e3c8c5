package models

import "time"

// SkuComponentMapping associates one (CM code, SKU code) pair with one component
// code at one version. The mapping carries its own validity window and
// packaging-type reference, independent of the component's own window.
//
// Uniqueness over (cm_code, sku_code, component_code, version, period_id) is
// enforced at the application level: an insert that would duplicate the tuple
// returns the existing row instead of creating another one.
type SkuComponentMapping struct {
	BaseModel
	CMCode                   string     `json:"cm_code" gorm:"not null;size:60;index:idx_mapping_cm_sku" validate:"required"`
	SkuCode                  string     `json:"sku_code" gorm:"not null;size:100;index:idx_mapping_cm_sku" validate:"required"`
	ComponentCode            string     `json:"component_code" gorm:"not null;size:100;index" validate:"required"`
	Version                  int        `json:"version" gorm:"not null;default:1" validate:"min=1"`
	ComponentPackagingTypeID string     `json:"component_packaging_type_id" gorm:"size:60"`
	PeriodID                 string     `json:"period_id" gorm:"not null;size:20;index" validate:"required"`
	ValidFrom                *time.Time `json:"valid_from"`
	ValidTo                  *time.Time `json:"valid_to"`
	IsActive                 bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for SkuComponentMapping
func (SkuComponentMapping) TableName() string {
	return "sku_component_mappings"
}
