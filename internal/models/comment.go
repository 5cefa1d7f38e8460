// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment is a reader's remark on a post. Comments are immutable once
// created; there is no edit or delete path.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PostID   uint      `gorm:"not null;index" json:"post_id"`
	AuthorID uint      `gorm:"not null" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
}
