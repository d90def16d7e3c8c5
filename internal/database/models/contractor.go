package models

// Contractor represents an external contract manufacturer identified by CM code.
type Contractor struct {
	BaseModel
	CMCode        string `json:"cm_code" gorm:"not null;size:60;uniqueIndex" validate:"required,min=1,max=60"`
	CMDescription string `json:"cm_description" gorm:"not null;size:250" validate:"required,max=250"`
	Region        string `json:"region" gorm:"size:100"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`

	Contacts []ContractorContact `json:"contacts,omitempty" gorm:"foreignKey:CMCode;references:CMCode;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contractor
func (Contractor) TableName() string {
	return "contractors"
}

// ContractorContact is a SPOC or SRM attached to a contractor record. Contacts
// participate in the sign-off approval workflow.
type ContractorContact struct {
	BaseModel
	CMCode   string      `json:"cm_code" gorm:"not null;size:60;index" validate:"required"`
	Name     string      `json:"name" gorm:"not null;size:150" validate:"required,max=150"`
	Email    string      `json:"email" gorm:"not null;size:200" validate:"required,email"`
	Role     ContactRole `json:"role" gorm:"type:varchar(10);not null" validate:"required,oneof=SPOC SRM"`
	IsActive bool        `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for ContractorContact
func (ContractorContact) TableName() string {
	return "contractor_contacts"
}
