package model

import (
	"time"
)

type PostImage struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PostID    string    `gorm:"type:varchar(36);not null;index:idx_post_images_post_id" json:"post_id"`
	ImageURL  string    `gorm:"type:varchar(512);not null" json:"image_url"`
	Width     int       `gorm:"not null;default:0" json:"width"`
	Height    int       `gorm:"not null;default:0" json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostImage) TableName() string {
	return "post_images"
}
