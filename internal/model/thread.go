package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Thread is a forum discussion. CommentCount is derived from the comments
// table and owned by the aggregate recalculator.
type Thread struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CategoryID   uuid.UUID `json:"category_id" gorm:"type:char(36);not null;index"`
	AuthorID     uuid.UUID `json:"author_id" gorm:"type:char(36);not null;index"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	CommentCount int64     `json:"comment_count" gorm:"not null;default:0;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
	Author   User     `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Thread) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
