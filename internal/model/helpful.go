package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HelpfulVote marks a comment as helpful. The composite unique index allows a
// user to vote on a given comment at most once.
type HelpfulVote struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CommentID uuid.UUID `json:"comment_id" gorm:"type:char(36);not null;uniqueIndex:idx_helpful_comment_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_helpful_comment_user"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Comment Comment `json:"-" gorm:"foreignKey:CommentID"`
	User    User    `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (v *HelpfulVote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
