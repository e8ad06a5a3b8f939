package handler

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/pkg/response"
	"Pictogram/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetProfile 按用户名查看个人主页，匿名可访问
func (s *UserHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")
	profile, err := s.userSvc.GetProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// UpdateProfile 编辑简介与头像，multipart 表单，头像可选
func (s *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	bio := c.PostForm("bio")
	avatar, err := c.FormFile("profile_picture")
	if err != nil {
		avatar = nil
	}

	profile, err := s.userSvc.UpdateProfile(c.Request.Context(), userID, bio, avatar)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
