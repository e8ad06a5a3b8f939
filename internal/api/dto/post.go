package dto

// PostDTO 帖子视图模型：实体数据 + 当前观看者相关标记与派生字段
type PostDTO struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"created_at"`
	Images    []*PostImageDTO `json:"images"`

	// 作者
	UserID         string `json:"user_id"`
	UserName       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`

	// 观看者视角
	IsLikedByCurrentUser bool `json:"is_liked_by_current_user"`
	IsSavedByCurrentUser bool `json:"is_saved_by_current_user"`
	IsOwnedByCurrentUser bool `json:"is_owned_by_current_user"`

	LikeCount    int           `json:"like_count"`
	CommentCount int           `json:"comment_count"`
	Comments     []*CommentDTO `json:"comments"`
}

// PostImageDTO 帖子图片
type PostImageDTO struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
