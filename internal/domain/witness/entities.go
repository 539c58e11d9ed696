// Package witness holds the entities the engine only ever counts: their mere
// existence for a loan blocks deletion.
package witness

import (
	"time"

	"gorm.io/gorm"
)

type Guarantee struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	GuaranteeID string `gorm:"column:guarantee_id;type:char(32);not null;uniqueIndex:ux_guarantees_guarantee_id_active" json:"guarantee_id"`
	// FK to loans.id
	LoanID        uint64         `gorm:"column:loan_id;not null;index" json:"-"`
	GuarantorName string         `gorm:"column:guarantor_name;type:text" json:"guarantor_name"`
	Amount        float64        `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Guarantee) TableName() string { return "guarantees" }

type EquityCommitment struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CommitmentID string `gorm:"column:commitment_id;type:char(32);not null;uniqueIndex:ux_equity_commitments_commitment_id_active" json:"commitment_id"`
	// FK to loans.id
	LoanID       uint64         `gorm:"column:loan_id;not null;index" json:"-"`
	InvestorName string         `gorm:"column:investor_name;type:text" json:"investor_name"`
	Amount       float64        `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (EquityCommitment) TableName() string { return "equity_commitments" }
