package entity

import (
	"time"
)

// Location is a restaurant discovered through the places provider. The
// primary key is the provider's place id, which is stable across searches
// and serves as the upsert key.
type Location struct {
	ID        string   `json:"id" gorm:"primaryKey;size:255"`
	Name      string   `json:"name" gorm:"size:200;not null"`
	Address   string   `json:"address" gorm:"size:200"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  string   `json:"category" gorm:"size:100"`
	Rating    *float64 `json:"rating"`
	PhotoURL  *string  `json:"photo_url" gorm:"size:500"`

	// Up to five provider reviews per refresh plus any user-authored ones.
	Reviews []Review `json:"reviews" gorm:"many2many:location_reviews;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
