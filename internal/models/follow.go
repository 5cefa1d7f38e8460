// Package models contains data structures for the application's domain models.
package models

import "time"

// Follow is a directed edge meaning "user wants author's posts in their
// feed". The composite unique index is the store-level backstop against two
// concurrent follow calls both succeeding; self-follows are rejected in the
// service layer before a row is ever written.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follows_user_author" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID" json:"-"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
