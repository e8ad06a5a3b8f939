package handler

import (
	"Pictogram/internal/pkg/response"
	"Pictogram/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// GetHomeFeed 首页信息流，全站帖子按时间倒序
func (s *PostHandler) GetHomeFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")
	posts, err := s.postSvc.GetHomeFeed(c.Request.Context(), viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("post_id")
	viewerID := c.GetString("user_id")
	post, err := s.postSvc.GetPostDetail(c.Request.Context(), postID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPostsByUser(c *gin.Context) {
	userID := c.Param("user_id")
	viewerID := c.GetString("user_id")
	posts, err := s.postSvc.GetPostsByUser(c.Request.Context(), userID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetSavedPosts 当前用户的收藏列表，按收藏时间倒序
func (s *PostHandler) GetSavedPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	posts, err := s.postSvc.GetSavedPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CreatePost 发布帖子，multipart 表单：title、content 与至少一张图片
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	images := form.File["images"]

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, title, content, images)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// EditPost 编辑帖子，带新图片时整组替换原有图片
func (s *PostHandler) EditPost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	title := c.PostForm("title")
	content := c.PostForm("content")

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if err = s.postSvc.EditPost(c.Request.Context(), userID, postID, title, content, form.File["images"]); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.GetPostDetail(c.Request.Context(), postID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	if err := s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
