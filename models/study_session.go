package models

import (
	"time"
)

// StudySession is an event on the timeline. Read-only for this API.
type StudySession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:200" json:"location"`
	HeldAt      time.Time `json:"held_at"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Like records a user's intent to attend a study session. The composite
// unique index makes a repeated like a no-op instead of a second row.
type Like struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"size:128;not null;index;uniqueIndex:idx_user_session_like" json:"user_id"`
	StudySessionID uint   `gorm:"not null;index;uniqueIndex:idx_user_session_like" json:"study_session_id"`
}
