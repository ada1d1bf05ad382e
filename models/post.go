package models

import "time"

// Post is a reply inside a topic. LikesCount mirrors the number of Like rows
// pointing at it and moves only together with them.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TopicID    uint      `gorm:"index;not null" json:"topic_id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}
