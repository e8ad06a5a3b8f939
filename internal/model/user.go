package model

import (
	"time"
)

type User struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email             string    `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash      string    `gorm:"type:varchar(255);not null" json:"-"`
	Bio               string    `gorm:"type:varchar(500)" json:"bio"`
	ProfilePictureURL string    `gorm:"type:varchar(512)" json:"profilePictureUrl"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// 关联关系
	Posts     []Post     `gorm:"foreignKey:UserID;references:ID"`
	Followers []Follower `gorm:"foreignKey:FollowedID;references:ID"`
	Following []Follower `gorm:"foreignKey:FollowerID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
