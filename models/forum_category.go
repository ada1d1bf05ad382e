package models

// ForumCategory groups topics on the board index. topics_count and
// total_posts are computed per read, never stored here.
type ForumCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:64" json:"icon"`
	Gradient    string `gorm:"size:64" json:"gradient"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
}

// TableName keeps the historical table name.
func (ForumCategory) TableName() string { return "forum_categories" }
