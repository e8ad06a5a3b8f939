package model

import (
	"time"
)

type Post struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_posts_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Content   string    `gorm:"type:varchar(2000);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User       User        `gorm:"foreignKey:UserID;references:ID"`
	Images     []PostImage `gorm:"foreignKey:PostID;references:ID"`
	Comments   []Comment   `gorm:"foreignKey:PostID;references:ID"`
	Likes      []Like      `gorm:"foreignKey:PostID;references:ID"`
	SavedPosts []SavedPost `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
