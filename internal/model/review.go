package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a rating of an institution by a user. The composite unique index
// allows at most one review per (institution, user) pair; the database
// enforces it so concurrent duplicate inserts cannot race past an
// application-level check.
type Review struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	InstitutionID uuid.UUID `json:"institution_id" gorm:"type:char(36);not null;uniqueIndex:idx_reviews_institution_user"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_reviews_institution_user"`
	Title         string    `json:"title" gorm:"size:100;not null"`
	Text          string    `json:"text" gorm:"type:text;not null"`
	Rating        int       `json:"rating" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Institution FinancialInstitution `json:"-" gorm:"foreignKey:InstitutionID"`
	User        User                 `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
