package entity

import (
	"time"
)

// Review is either pulled from the places provider (IsExternal, no
// AuthorID) or written by a registered user. External reviews are
// deduplicated on (author, content), so a refreshed fetch updates rating
// and title in place instead of inserting a new row.
type Review struct {
	ID       uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Author   string  `json:"author" gorm:"size:100"`
	AuthorID *string `json:"author_id,omitempty" gorm:"size:36;index"`
	Title    string  `json:"title" gorm:"size:100"`
	Content  string  `json:"content" gorm:"type:text"`
	Rating   float64 `json:"rating"`

	IsExternal bool `json:"is_external"`

	CreatedAt time.Time `json:"created_at"`
}
