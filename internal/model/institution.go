package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InstitutionType classifies a financial institution.
type InstitutionType string

const (
	InstitutionTypeBank        InstitutionType = "bank"
	InstitutionTypeSecurities  InstitutionType = "securities"
	InstitutionTypeInsurance   InstitutionType = "insurance"
	InstitutionTypeCreditUnion InstitutionType = "credit_union"
	InstitutionTypeOther       InstitutionType = "other"
)

// FinancialInstitution represents a reviewable institution. AvgRating and
// ReviewCount are derived from the reviews table and are only ever written by
// the aggregate recalculator, never by request payloads.
type FinancialInstitution struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null;index"`
	Type        InstitutionType `json:"type" gorm:"type:varchar(20);not null;index"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Location    string          `json:"location" gorm:"size:255;not null"`
	Website     string          `json:"website,omitempty" gorm:"size:255"`
	Logo        string          `json:"logo" gorm:"size:255;default:'no-photo.jpg'"`
	AvgRating   decimal.Decimal `json:"avg_rating" gorm:"type:decimal(2,1);not null;default:0"`
	ReviewCount int64           `json:"review_count" gorm:"not null;default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (f *FinancialInstitution) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
