package dto

// ProfileDTO 个人主页聚合
type ProfileDTO struct {
	UserID               string     `json:"user_id"`
	Username             string     `json:"username"`
	Bio                  string     `json:"bio"`
	ProfilePicture       string     `json:"profile_picture"`
	IsCurrentUserProfile bool       `json:"is_current_user_profile"`
	IsFollowing          bool       `json:"is_following"`
	FollowerCount        int64      `json:"follower_count"`
	FollowingCount       int64      `json:"following_count"`
	Posts                []*PostDTO `json:"posts"`
}

// UserSimpleDTO 用户简要信息，用于粉丝/关注列表
type UserSimpleDTO struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// ProfileUpdateReq 编辑个人资料请求（头像走 multipart 单独上传）
type ProfileUpdateReq struct {
	Bio string `json:"bio" binding:"max=500"`
}
