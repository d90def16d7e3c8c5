package models

// Sku represents a sellable unit tied to one contract manufacturer and one
// reporting period. The (sku_code, period) combination must stay unique when
// copying to a new period; a copy request for an existing combination is
// skipped, never overwritten.
type Sku struct {
	BaseModel
	SkuCode           string  `json:"sku_code" gorm:"not null;size:100;index:idx_sku_code_period,unique,composite:period" validate:"required,min=1,max=100"`
	SkuDescription    string  `json:"sku_description" gorm:"not null;size:250" validate:"required,min=1,max=250"`
	CMCode            string  `json:"cm_code" gorm:"not null;size:60;index" validate:"required"`
	Period            string  `json:"period" gorm:"not null;size:20;index:idx_sku_code_period,unique,composite:period" validate:"required"`
	SkuType           SkuType `json:"skutype" gorm:"type:varchar(20);default:'external'"`
	Site              string  `json:"site" gorm:"size:100"`
	PurchasedQuantity float64 `json:"purchased_quantity"`
	DualSourceSku     string  `json:"dual_source_sku" gorm:"size:100"`
	IsApproved        bool    `json:"is_approved" gorm:"default:false"`
	IsAdmin           bool    `json:"is_admin" gorm:"default:false"`
	IsSendForApproval bool    `json:"is_sendforapproval" gorm:"default:false"`
	IsCMApproved      bool    `json:"is_cmapproved" gorm:"default:false"`
	IsCopied          bool    `json:"is_copied" gorm:"default:false"`
	IsActive          bool    `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Sku
func (Sku) TableName() string {
	return "skus"
}
