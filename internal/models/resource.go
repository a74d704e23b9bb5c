package models

import (
	"time"
)

// Resource is a user-submitted link. It is publicly visible only when
// approved and its category is published. Name and URL carry unique
// indexes so a concurrent duplicate submission fails on insert instead of
// slipping past the application-level check.
type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	URL         string    `gorm:"size:500;not null;uniqueIndex" json:"url"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"category"`
	UploaderID  uint      `gorm:"not null;index" json:"uploader_id"`
	Uploader    User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"uploader"`
	Approved    bool      `gorm:"default:false" json:"approved"`
	Keywords    []Keyword `gorm:"many2many:resource_keywords;" json:"keywords"`
	Favorites   []User    `gorm:"many2many:resource_favorites;" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	FavoriteCount int  `gorm:"-" json:"favorite_count"`
	IsFavorited   bool `gorm:"-" json:"-"`
}
