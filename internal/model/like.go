package model

import (
	"time"
)

type Like struct {
	UserID    string    `gorm:"type:varchar(36);primaryKey" json:"userId"`
	PostID    string    `gorm:"type:varchar(36);primaryKey;index:idx_likes_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
