package handler

import (
	"Pictogram/internal/pkg/response"
	"Pictogram/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	followSvc service.UserFollowService
}

func NewUserFollowHandler(followSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{followSvc: followSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	followerID := c.GetString("user_id")
	followedID := c.Param("user_id")

	if err := s.followSvc.Follow(c.Request.Context(), followerID, followedID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	followerID := c.GetString("user_id")
	followedID := c.Param("user_id")

	if err := s.followSvc.Unfollow(c.Request.Context(), followerID, followedID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) IsFollowing(c *gin.Context) {
	followerID := c.GetString("user_id")
	followedID := c.Param("user_id")

	following, err := s.followSvc.IsFollowing(c.Request.Context(), followerID, followedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"is_following": following})
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	userID := c.Param("user_id")

	users, err := s.followSvc.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserFollowHandler) GetFollowing(c *gin.Context) {
	userID := c.Param("user_id")

	users, err := s.followSvc.GetFollowing(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
