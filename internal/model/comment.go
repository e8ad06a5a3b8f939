package model

import (
	"time"
)

type Comment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PostID    string    `gorm:"type:varchar(36);not null;index:idx_comments_post_id" json:"postId"`
	UserID    string    `gorm:"type:varchar(36);not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
