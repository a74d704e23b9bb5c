package models

import (
	"time"
)

// Keyword is a free-text tag shared between resources.
type Keyword struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
