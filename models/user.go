package models

import "time"

// User represents a forum member. Passwords are stored as bcrypt hashes only
// and are never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:member" json:"role"`
	AvatarURL    string    `gorm:"size:512" json:"avatar_url"`
	PostsCount   int       `gorm:"not null;default:0" json:"posts_count"`
	CreatedAt    time.Time `json:"created_at"`
}
