package models

import "time"

// Topic is a discussion thread inside a category.
//
// RepliesCount and ViewsCount are stored counters: they are only ever touched
// with atomic SQL increments inside the same transaction as the change that
// causes them. UpdatedAt doubles as the "last activity" sort key and is bumped
// whenever a reply is added.
type Topic struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryID   uint      `gorm:"index;not null" json:"category_id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	IsPinned     bool      `gorm:"not null;default:false" json:"is_pinned"`
	RepliesCount int       `gorm:"not null;default:0" json:"replies_count"`
	ViewsCount   int       `gorm:"not null;default:0" json:"views_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
