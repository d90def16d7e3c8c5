package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sustainability-portal-backend/internal/config"
	"sustainability-portal-backend/internal/database"
	"sustainability-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PeriodData struct {
	Period    string `yaml:"period"`
	SortOrder int    `yaml:"sort_order"`
	IsActive  bool   `yaml:"is_active"`
}

type ContactData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	IsActive bool   `yaml:"is_active"`
}

type ContractorData struct {
	CMCode        string        `yaml:"cm_code"`
	CMDescription string        `yaml:"cm_description"`
	Region        string        `yaml:"region,omitempty"`
	IsActive      bool          `yaml:"is_active"`
	Contacts      []ContactData `yaml:"contacts,omitempty"`
}

// File structures
type PeriodsFile struct {
	Periods []PeriodData `yaml:"periods"`
}

type ContractorsFile struct {
	Contractors []ContractorData `yaml:"contractors"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	periods, err := loadPeriods(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load periods: %w", err)
	}

	contractors, err := loadContractors(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load contractors: %w", err)
	}

	// Create reporting periods first; components and skus reference them by value.
	periodCreated := 0
	for _, periodData := range periods {
		created, err := createPeriod(db, periodData)
		if err != nil {
			return fmt.Errorf("failed to create period %s: %w", periodData.Period, err)
		}
		if created {
			periodCreated++
		}
	}
	log.Printf("Reporting periods: %d created, %d total", periodCreated, len(periods))

	// Create contractors with their contacts
	contractorCreated := 0
	for _, contractorData := range contractors {
		created, err := createContractor(db, contractorData)
		if err != nil {
			log.Printf("Warning: failed to create contractor %s: %v", contractorData.CMCode, err)
			continue // Continue with other contractors
		}
		if created {
			contractorCreated++
		}
	}
	log.Printf("Contractors: %d created, %d total", contractorCreated, len(contractors))

	return nil
}

func loadPeriods(dataDir string) ([]PeriodData, error) {
	var allPeriods []PeriodData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "periods") {
			var file PeriodsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPeriods = append(allPeriods, file.Periods...)
		}
		return nil
	})

	return allPeriods, err
}

func loadContractors(dataDir string) ([]ContractorData, error) {
	var allContractors []ContractorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "contractors") {
			var file ContractorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allContractors = append(allContractors, file.Contractors...)
		}
		return nil
	})

	return allContractors, err
}

func createPeriod(db *gorm.DB, periodData PeriodData) (bool, error) {
	var period models.ReportingPeriod
	if err := db.Where("period = ?", periodData.Period).First(&period).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			period = models.ReportingPeriod{
				Period:    periodData.Period,
				SortOrder: periodData.SortOrder,
				IsActive:  periodData.IsActive,
			}

			if err := db.Create(&period).Error; err != nil {
				return false, fmt.Errorf("failed to create period: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query period: %w", err)
	}

	return false, nil // created = false (existing)
}

func createContractor(db *gorm.DB, contractorData ContractorData) (bool, error) {
	var contractor models.Contractor
	if err := db.Where("cm_code = ?", contractorData.CMCode).First(&contractor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			contacts := make([]models.ContractorContact, 0, len(contractorData.Contacts))
			for _, contactData := range contractorData.Contacts {
				contacts = append(contacts, models.ContractorContact{
					CMCode:   contractorData.CMCode,
					Name:     contactData.Name,
					Email:    contactData.Email,
					Role:     models.ContactRole(contactData.Role),
					IsActive: contactData.IsActive,
				})
			}

			contractor = models.Contractor{
				CMCode:        contractorData.CMCode,
				CMDescription: contractorData.CMDescription,
				Region:        contractorData.Region,
				IsActive:      contractorData.IsActive,
				Contacts:      contacts,
			}

			if err := db.Create(&contractor).Error; err != nil {
				return false, fmt.Errorf("failed to create contractor: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query contractor: %w", err)
	}

	return false, nil // created = false (existing)
}
