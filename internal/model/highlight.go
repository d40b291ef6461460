package model

import "time"

// Highlight is a word or phrase a user marked at a verse reference, with a
// free-text note. It belongs to a user, not to a post.
type Highlight struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	VerseRef  string    `gorm:"size:255;not null" json:"verse_ref"`
	Word      string    `gorm:"size:255;not null" json:"word"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
