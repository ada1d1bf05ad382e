package models

import "time"

// Read-side row types. List and detail queries join authors and aggregate
// counts in SQL; these structs are what those rows scan into, so handlers
// never touch a raw store row.

// CategorySummary is a forum category annotated with live aggregates computed
// by LEFT JOIN so empty categories still report zeros.
type CategorySummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
	SortOrder   int    `json:"sort_order"`
	TopicsCount int64  `json:"topics_count"`
	TotalPosts  int64  `json:"total_posts"`
}

// TopicSummary is a topic list row with its author's public profile fields.
type TopicSummary struct {
	ID           uint      `json:"id"`
	CategoryID   uint      `json:"category_id"`
	UserID       uint      `json:"user_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	IsPinned     bool      `json:"is_pinned"`
	RepliesCount int       `json:"replies_count"`
	ViewsCount   int       `json:"views_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	AuthorRole   string    `json:"author_role"`
}

// TopicView is the topic detail row; on top of the summary fields it carries
// the author's post count and the ordered replies.
type TopicView struct {
	TopicSummary
	AuthorPosts int        `json:"author_posts"`
	Posts       []PostView `gorm:"-" json:"posts"`
}

// PostView is a reply row inside a topic detail, with author fields and the
// attachments created alongside the post.
type PostView struct {
	ID           uint         `json:"id"`
	TopicID      uint         `json:"topic_id"`
	UserID       uint         `json:"user_id"`
	Content      string       `json:"content"`
	LikesCount   int          `json:"likes_count"`
	CreatedAt    time.Time    `json:"created_at"`
	AuthorName   string       `json:"author_name"`
	AuthorAvatar string       `json:"author_avatar"`
	AuthorRole   string       `json:"author_role"`
	AuthorPosts  int          `json:"author_posts"`
	Attachments  []Attachment `gorm:"-" json:"attachments"`
}
