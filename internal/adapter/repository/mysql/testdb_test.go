package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no char/decimal column types) ---

type projectSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	ProjectID string         `gorm:"size:32;column:project_id"`
	Name      string         `gorm:"column:name"`
	Stage     string         `gorm:"column:stage"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (projectSQLite) TableName() string { return "projects" }

type loanSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	LoanID            string         `gorm:"size:32;column:loan_id"`
	ProjectID         uint64         `gorm:"column:project_id"`
	Phase             string         `gorm:"column:phase"`
	IsActive          bool           `gorm:"column:is_active"`
	IOMaturityDate    *time.Time     `gorm:"column:io_maturity_date"`
	MaturityDate      *time.Time     `gorm:"column:maturity_date"`
	MiniPermMaturity  *time.Time     `gorm:"column:mini_perm_maturity"`
	PermPhaseMaturity *time.Time     `gorm:"column:perm_phase_maturity"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type covenantSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	CovenantID   string         `gorm:"size:32;column:covenant_id"`
	ProjectID    uint64         `gorm:"column:project_id"`
	LoanID       *uint64        `gorm:"column:loan_id"`
	CovenantType string         `gorm:"column:covenant_type"`
	CovenantDate *time.Time     `gorm:"column:covenant_date"`
	IsCompleted  bool           `gorm:"column:is_completed"`
	Notes        *string        `gorm:"column:notes"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (covenantSQLite) TableName() string { return "covenants" }

type participationSQLite struct {
	ID                   uint64         `gorm:"primaryKey;column:id"`
	ParticipationID      string         `gorm:"size:32;column:participation_id"`
	ProjectID            uint64         `gorm:"column:project_id"`
	LoanID               *uint64        `gorm:"column:loan_id"`
	BankID               uint64         `gorm:"column:bank_id"`
	ExposureAmount       float64        `gorm:"column:exposure_amount"`
	PaidOff              bool           `gorm:"column:paid_off"`
	IsLead               bool           `gorm:"column:is_lead"`
	ParticipationPercent *string        `gorm:"column:participation_percent"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (participationSQLite) TableName() string { return "participations" }

type guaranteeSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	GuaranteeID   string         `gorm:"size:32;column:guarantee_id"`
	LoanID        uint64         `gorm:"column:loan_id"`
	GuarantorName string         `gorm:"column:guarantor_name"`
	Amount        float64        `gorm:"column:amount"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (guaranteeSQLite) TableName() string { return "guarantees" }

type equityCommitmentSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	CommitmentID string         `gorm:"size:32;column:commitment_id"`
	LoanID       uint64         `gorm:"column:loan_id"`
	InvestorName string         `gorm:"column:investor_name"`
	Amount       float64        `gorm:"column:amount"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (equityCommitmentSQLite) TableName() string { return "equity_commitments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&projectSQLite{},
		&loanSQLite{},
		&covenantSQLite{},
		&participationSQLite{},
		&guaranteeSQLite{},
		&equityCommitmentSQLite{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
