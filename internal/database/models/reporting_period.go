package models

// ReportingPeriod is a yearly cycle against which component validity dates are
// checked. The current period is the active row with the highest sort order.
type ReportingPeriod struct {
	BaseModel
	Period    string `json:"period" gorm:"not null;size:20;uniqueIndex" validate:"required"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for ReportingPeriod
func (ReportingPeriod) TableName() string {
	return "reporting_periods"
}
