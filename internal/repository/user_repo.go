package repository

import (
	"Pictogram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error

	GetUserFollow(ctx context.Context, followerID, followedID string) (*model.Follower, error)
	GetFollowers(ctx context.Context, userID string) ([]*model.User, error)
	GetFollowing(ctx context.Context, userID string) ([]*model.User, error)
	GetFollowerCount(ctx context.Context, userID string) (int64, error)
	GetFollowingCount(ctx context.Context, userID string) (int64, error)
	CreateUserFollow(ctx context.Context, follow *model.Follower) error
	DeleteUserFollow(ctx context.Context, followerID, followedID string) (bool, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Followers").
		Preload("Following").
		Where("id = ?", id).
		First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Followers").
		Preload("Following").
		Where("username = ?", username).
		First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"bio":                 user.Bio,
			"profile_picture_url": user.ProfilePictureURL,
		}).Error
}

// GetUserFollow 获取关注关系，不存在时返回 (nil, nil)
func (s *UserRepoImpl) GetUserFollow(ctx context.Context, followerID, followedID string) (*model.Follower, error) {
	var follow model.Follower
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// GetFollowers 获取用户的粉丝列表
func (s *UserRepoImpl) GetFollowers(ctx context.Context, userID string) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.followed_id = ?", userID).
		Order("followers.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetFollowing 获取用户的关注列表
func (s *UserRepoImpl) GetFollowing(ctx context.Context, userID string) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).
		Joins("JOIN followers ON followers.followed_id = users.id").
		Where("followers.follower_id = ?", userID).
		Order("followers.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserRepoImpl) GetFollowerCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follower{}).
		Where("followed_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *UserRepoImpl) GetFollowingCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follower{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *UserRepoImpl) CreateUserFollow(ctx context.Context, follow *model.Follower) error {
	return s.db.WithContext(ctx).Create(follow).Error
}

// DeleteUserFollow 返回是否确有边被删除，边不存在不是错误
func (s *UserRepoImpl) DeleteUserFollow(ctx context.Context, followerID, followedID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follower{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
