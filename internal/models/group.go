// Package models contains data structures for the application's domain models.
package models

import "time"

// Group is a thematic category a post may optionally belong to. The slug is
// the URL-safe identifier used in group listing routes.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
