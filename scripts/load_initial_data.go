package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"court-scheduling-backend/internal/config"
	"court-scheduling-backend/internal/database"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CaseData is one filed case in a seed file
type CaseData struct {
	CaseNumber string `yaml:"case_number"`
	Title      string `yaml:"title"`
	CaseType   string `yaml:"case_type"`
	District   string `yaml:"district"`
	ClientID   string `yaml:"client_id"`
	ClientName string `yaml:"client_name"`
	LawyerID   string `yaml:"lawyer_id"`
	LawyerName string `yaml:"lawyer_name"`
	// Queue adds an unscheduled schedule request with this priority
	Queue string `yaml:"queue,omitempty"`
	// Courtroom preference of the queued request
	Courtroom string `yaml:"courtroom,omitempty"`
}

// CasesFile is the layout of scripts/data/cases*.yaml
type CasesFile struct {
	Cases []CaseData `yaml:"cases"`
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

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
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
	cases, err := loadCases(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load cases: %w", err)
	}

	created, queued := 0, 0
	for _, data := range cases {
		c, isNew, err := createCase(db, data)
		if err != nil {
			return fmt.Errorf("case %s: %w", data.CaseNumber, err)
		}
		if !isNew {
			continue
		}
		created++

		if data.Queue != "" {
			if err := queueCase(db, c, data); err != nil {
				return fmt.Errorf("queue case %s: %w", data.CaseNumber, err)
			}
			queued++
		}
	}

	log.Printf("Cases: %d created, %d already present, %d queued for scheduling", created, len(cases)-created, queued)
	return nil
}

func loadCases(dataDir string) ([]CaseData, error) {
	var all []CaseData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), "cases") {
			var file CasesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Cases...)
		}
		return nil
	})

	return all, err
}

// createCase inserts a filed case with its court filing unless the case
// number is already present
func createCase(db *gorm.DB, data CaseData) (*models.Case, bool, error) {
	var existing models.Case
	err := db.Where("case_number = ?", data.CaseNumber).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query case: %w", err)
	}

	clientID, err := uuid.Parse(data.ClientID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid client_id: %w", err)
	}
	lawyerID, err := uuid.Parse(data.LawyerID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid lawyer_id: %w", err)
	}

	c := models.Case{
		CaseNumber:      data.CaseNumber,
		Title:           data.Title,
		CaseType:        data.CaseType,
		District:        data.District,
		Status:          models.CaseStatusFiled,
		ClientID:        clientID,
		ClientName:      data.ClientName,
		CurrentLawyerID: &lawyerID,
		LawyerName:      data.LawyerName,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to create case: %w", err)
		}
		now := time.Now()
		filing := models.CourtFiling{
			CaseID:       c.ID,
			District:     c.District,
			FilingNumber: "F-" + c.CaseNumber,
			Status:       models.FilingStatusFiled,
			SubmittedBy:  lawyerID,
			FiledAt:      &now,
		}
		if err := tx.Create(&filing).Error; err != nil {
			return fmt.Errorf("failed to create court filing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func queueCase(db *gorm.DB, c *models.Case, data CaseData) error {
	priority := models.SchedulePriority(data.Queue)
	if !priority.IsValid() {
		return fmt.Errorf("invalid queue priority %q", data.Queue)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		req := models.ScheduleRequest{
			CaseID:              c.ID,
			District:            c.District,
			CourtroomPreference: data.Courtroom,
			Priority:            priority,
			RequestedBy:         *c.CurrentLawyerID,
			CaseNumber:          c.CaseNumber,
			CaseTitle:           c.Title,
			CaseType:            c.CaseType,
			ClientID:            c.ClientID,
			ClientName:          c.ClientName,
			LawyerID:            c.CurrentLawyerID,
			LawyerName:          c.LawyerName,
		}
		if err := tx.Create(&req).Error; err != nil {
			return fmt.Errorf("failed to create schedule request: %w", err)
		}
		return tx.Model(&models.Case{}).Where("id = ?", c.ID).
			Update("status", models.CaseStatusSchedulingRequested).Error
	})
}
