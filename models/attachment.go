package models

// Attachment is a file reference created atomically with its parent post.
// It has no lifecycle of its own.
type Attachment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PostID   uint   `gorm:"index;not null" json:"post_id"`
	FileURL  string `gorm:"size:1024;not null" json:"file_url"`
	FileType string `gorm:"size:128" json:"file_type"`
	FileName string `gorm:"size:255" json:"file_name"`
	FileSize int64  `gorm:"not null;default:0" json:"file_size"`
}
