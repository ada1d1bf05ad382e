package models

import "time"

// Like marks that a user liked a post. Existence of the row is the truth; the
// composite unique index is what makes the toggle race-free — inserting a
// duplicate fails at the store instead of relying on a prior read.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_likes_user_post;not null" json:"user_id"`
	PostID    uint      `gorm:"uniqueIndex:idx_likes_user_post;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
