package models

import "time"

// Menu is one item of the restaurant catalog. Image variants are stored
// inline as JPEG bytes and excluded from list queries by the repository.
type Menu struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:128;not null;uniqueIndex" json:"name"`
	Price       int       `gorm:"default:0" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	ImageThumb  []byte    `gorm:"type:blob" json:"-"`
	Image720p   []byte    `gorm:"column:image_720p;type:blob" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
