package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// ContractorRepository handles database operations for contractors and their contacts
type ContractorRepository struct {
	db *gorm.DB
}

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

// CreateWithContacts creates a contractor and its SPOC/SRM contacts inside a
// single transaction. Any step failure rolls back the whole sequence; this is
// the only multi-statement workflow in the codebase with rollback semantics.
func (r *ContractorRepository) CreateWithContacts(contractor *models.Contractor, contacts []models.ContractorContact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contractor).Error; err != nil {
			return err
		}
		for i := range contacts {
			contacts[i].CMCode = contractor.CMCode
			if err := tx.Create(&contacts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByCMCode retrieves a contractor by CM code
func (r *ContractorRepository) GetByCMCode(cmCode string) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.First(&contractor, "cm_code = ?", cmCode).Error
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

// GetWithContacts retrieves a contractor with its contacts preloaded
func (r *ContractorRepository) GetWithContacts(cmCode string) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.Preload("Contacts").First(&contractor, "cm_code = ?", cmCode).Error
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

// GetAll retrieves all contractors with pagination
func (r *ContractorRepository) GetAll(limit, offset int) ([]models.Contractor, int64, error) {
	var contractors []models.Contractor
	var total int64

	if err := r.db.Model(&models.Contractor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("cm_code").Limit(limit).Offset(offset).Find(&contractors).Error; err != nil {
		return nil, 0, err
	}

	return contractors, total, nil
}

// Update updates a contractor
func (r *ContractorRepository) Update(contractor *models.Contractor) error {
	return r.db.Save(contractor).Error
}
