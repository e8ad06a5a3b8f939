package model

import "time"

type Follower struct {
	FollowerID string    `gorm:"type:varchar(36);primaryKey" json:"followerId"`
	FollowedID string    `gorm:"type:varchar(36);primaryKey;index:idx_followers_followed_id" json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Follower) TableName() string {
	return "followers"
}
