package handler

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/pkg/response"
	"Pictogram/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

// ToggleLike 点赞或取消点赞，返回刷新后的帖子视图模型
func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	post, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// ToggleSave 收藏或取消收藏，返回刷新后的帖子视图模型
func (s *PostActionHandler) ToggleSave(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	post, err := s.actionSvc.ToggleSave(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	var req dto.CommentCreateReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.actionSvc.AddComment(c.Request.Context(), userID, postID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostActionHandler) EditComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("comment_id")

	var req dto.CommentEditReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.actionSvc.EditComment(c.Request.Context(), userID, commentID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("comment_id")

	post, err := s.actionSvc.DeleteComment(c.Request.Context(), userID, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
