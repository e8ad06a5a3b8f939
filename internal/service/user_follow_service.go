package service

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/model"
	"Pictogram/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type UserFollowService interface {
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
	GetFollowers(ctx context.Context, userID string) ([]*dto.UserSimpleDTO, error)
	GetFollowing(ctx context.Context, userID string) ([]*dto.UserSimpleDTO, error)
}

type userFollowServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserFollowService(userRepo repository.UserRepo) UserFollowService {
	return &userFollowServiceImpl{userRepo: userRepo}
}

// Follow 关注目标用户，重复关注返回业务错误
func (s *userFollowServiceImpl) Follow(ctx context.Context, followerID, followedID string) error {
	target, err := s.userRepo.GetUserByID(ctx, followedID)
	if err != nil {
		log.ErrorContext(ctx, "Follow load target failed", "followedID", followedID, "err", err)
		return UnExpectedError
	}
	if target == nil {
		return ErrUserNotFound
	}

	existing, err := s.userRepo.GetUserFollow(ctx, followerID, followedID)
	if err != nil {
		log.ErrorContext(ctx, "Follow lookup failed", "followerID", followerID, "followedID", followedID, "err", err)
		return UnExpectedError
	}
	if existing != nil {
		return ErrUserFollowExist
	}

	follow := &model.Follower{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.userRepo.CreateUserFollow(ctx, follow); err != nil {
		if isDuplicateError(err) {
			return ErrUserFollowExist
		}
		log.ErrorContext(ctx, "Follow create failed", "followerID", followerID, "followedID", followedID, "err", err)
		return UnExpectedError
	}
	return nil
}

// Unfollow 取消关注，关注关系不存在时返回业务错误而非直接成功
func (s *userFollowServiceImpl) Unfollow(ctx context.Context, followerID, followedID string) error {
	deleted, err := s.userRepo.DeleteUserFollow(ctx, followerID, followedID)
	if err != nil {
		log.ErrorContext(ctx, "Unfollow failed", "followerID", followerID, "followedID", followedID, "err", err)
		return UnExpectedError
	}
	if !deleted {
		return ErrFollowNotFound
	}
	return nil
}

func (s *userFollowServiceImpl) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	follow, err := s.userRepo.GetUserFollow(ctx, followerID, followedID)
	if err != nil {
		log.ErrorContext(ctx, "IsFollowing lookup failed", "followerID", followerID, "followedID", followedID, "err", err)
		return false, UnExpectedError
	}
	return follow != nil, nil
}

func (s *userFollowServiceImpl) GetFollowers(ctx context.Context, userID string) ([]*dto.UserSimpleDTO, error) {
	users, err := s.userRepo.GetFollowers(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "GetFollowers failed", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	return buildUserSimpleDTOs(users), nil
}

func (s *userFollowServiceImpl) GetFollowing(ctx context.Context, userID string) ([]*dto.UserSimpleDTO, error) {
	users, err := s.userRepo.GetFollowing(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "GetFollowing failed", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	return buildUserSimpleDTOs(users), nil
}

func buildUserSimpleDTOs(users []*model.User) []*dto.UserSimpleDTO {
	dtos := make([]*dto.UserSimpleDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, buildUserSimpleDTO(u))
	}
	return dtos
}

func buildUserSimpleDTO(u *model.User) *dto.UserSimpleDTO {
	return &dto.UserSimpleDTO{
		UserID:         u.ID,
		Username:       u.Username,
		ProfilePicture: avatarURL(u.ProfilePictureURL),
	}
}
