package dto

// CommentCreateReq 创建评论请求
type CommentCreateReq struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentEditReq 编辑评论请求
type CommentEditReq struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentDTO 评论视图模型
type CommentDTO struct {
	ID                     string `json:"id"`
	PostID                 string `json:"post_id"`
	UserID                 string `json:"user_id"`
	UserName               string `json:"username"`
	Content                string `json:"content"`
	CreatedAt              string `json:"created_at"`
	TimeSincePosted        string `json:"time_since_posted"`
	IsCreatedByCurrentUser bool   `json:"is_created_by_current_user"`
}
