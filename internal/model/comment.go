package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reply within a thread. HelpfulCount is derived from the
// helpful_votes table and owned by the aggregate recalculator.
type Comment struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ThreadID     uuid.UUID `json:"thread_id" gorm:"type:char(36);not null;index"`
	AuthorID     uuid.UUID `json:"author_id" gorm:"type:char(36);not null;index"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	HelpfulCount int64     `json:"helpful_count" gorm:"not null;default:0;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Thread Thread `json:"-" gorm:"foreignKey:ThreadID"`
	Author User   `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
