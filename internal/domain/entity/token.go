package entity

import (
	"time"
)

// RevokedToken blacklists a token id (jti) until the token would have
// expired anyway. Rows past ExpiresAt are safe to purge.
type RevokedToken struct {
	JTI       string    `json:"jti" gorm:"primaryKey;size:36"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}
