package model

import (
	"time"
)

type SavedPost struct {
	UserID    string    `gorm:"type:varchar(36);primaryKey" json:"userId"`
	PostID    string    `gorm:"type:varchar(36);primaryKey;index:idx_saved_posts_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SavedPost) TableName() string {
	return "saved_posts"
}
