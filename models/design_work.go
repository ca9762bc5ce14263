package models

import "time"

const (
	WorkTypeImage = "image"
	WorkTypeVideo = "video"
)

// DesignWork is a single gallery entry. Src/Thumbnail hold public URLs;
// SrcPath/ThumbPath hold the storage-relative paths so deletion never has
// to reverse-engineer a path out of a URL.
type DesignWork struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	Src       string    `gorm:"type:varchar(1000);not null" json:"src"`
	SrcPath   string    `gorm:"type:varchar(1000);not null" json:"-"`
	Thumbnail string    `gorm:"type:varchar(1000)" json:"thumbnail,omitempty"`
	ThumbPath string    `gorm:"type:varchar(1000)" json:"-"`
	Height    string    `gorm:"type:varchar(10);not null;default:'h-64'" json:"height"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	Featured  bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
