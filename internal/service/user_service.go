package service

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/model"
	"Pictogram/internal/pkg/consts"
	"Pictogram/internal/pkg/redis"
	"Pictogram/internal/pkg/security"
	"Pictogram/internal/repository"
	"context"
	log "log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterReq) (*dto.TokenDTO, error)
	Login(ctx context.Context, req *dto.LoginReq) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, username, viewerID string) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID, bio string, avatar *multipart.FileHeader) (*dto.ProfileDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo) UserService {
	return &userServiceImpl{userRepo: userRepo, postRepo: postRepo}
}

// Register 创建新用户并直接签发 Token
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterReq) (*dto.TokenDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		log.ErrorContext(ctx, "Register lookup failed", "username", req.Username, "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrUserUsernameExist
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		log.ErrorContext(ctx, "hash password failed", "err", err)
		return nil, UnExpectedError
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUserUsernameExist
		}
		log.ErrorContext(ctx, "Register create failed", "username", req.Username, "err", err)
		return nil, UnExpectedError
	}

	return s.issueToken(ctx, user)
}

// Login 校验用户名与密码。用户不存在与密码错误返回同一个错误，避免枚举用户名
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginReq) (*dto.TokenDTO, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingLoginCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		log.ErrorContext(ctx, "Login lookup failed", "username", req.Username, "err", err)
		return nil, UnExpectedError
	}
	if user == nil || security.CheckPasswordHash(req.Password, user.PasswordHash) != nil {
		return nil, ErrPasswordIncorrect
	}

	return s.issueToken(ctx, user)
}

// Logout 将 Token 签名加入拒绝名单，有效期与 Token 剩余寿命一致
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}

	sig, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err = redis.SetWithExpiration(ctx, consts.TokenDenyKey+sig, "1", ttl); err != nil {
		log.ErrorContext(ctx, "Logout deny token failed", "err", err)
		return UnExpectedError
	}
	return nil
}

// GetProfile 聚合个人主页：基本信息、帖子列表、关注数据并行加载
func (s *userServiceImpl) GetProfile(ctx context.Context, username, viewerID string) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		log.ErrorContext(ctx, "GetProfile lookup failed", "username", username, "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var (
		posts          []*model.Post
		followerCount  int64
		followingCount int64
		isFollowing    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.GetPostsByUser(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		followerCount, err = s.userRepo.GetFollowerCount(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		followingCount, err = s.userRepo.GetFollowingCount(gctx, user.ID)
		return err
	})
	if viewerID != "" && viewerID != user.ID {
		g.Go(func() error {
			follow, err := s.userRepo.GetUserFollow(gctx, viewerID, user.ID)
			if err != nil {
				return err
			}
			isFollowing = follow != nil
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		log.ErrorContext(ctx, "GetProfile aggregate failed", "username", username, "err", err)
		return nil, UnExpectedError
	}

	return &dto.ProfileDTO{
		UserID:               user.ID,
		Username:             user.Username,
		Bio:                  user.Bio,
		ProfilePicture:       avatarURL(user.ProfilePictureURL),
		IsCurrentUserProfile: viewerID != "" && viewerID == user.ID,
		IsFollowing:          isFollowing,
		FollowerCount:        followerCount,
		FollowingCount:       followingCount,
		Posts:                BuildPostDTOs(posts, viewerID),
	}, nil
}

// UpdateProfile 更新简介与头像，头像可选，旧头像在落库后尽力删除
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID, bio string, avatar *multipart.FileHeader) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "UpdateProfile lookup failed", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldAvatar := user.ProfilePictureURL
	user.Bio = bio

	if avatar != nil {
		objectName, _, _, err := uploadImageFile(ctx, avatar)
		if err != nil {
			return nil, err
		}
		user.ProfilePictureURL = objectName
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "UpdateProfile save failed", "userID", userID, "err", err)
		if avatar != nil {
			deleteImageFile(ctx, user.ProfilePictureURL)
		}
		return nil, UnExpectedError
	}

	if avatar != nil && oldAvatar != "" && oldAvatar != consts.DefaultAvatarURL {
		deleteImageFile(ctx, oldAvatar)
	}

	return s.GetProfile(ctx, user.Username, userID)
}

func (s *userServiceImpl) issueToken(ctx context.Context, user *model.User) (*dto.TokenDTO, error) {
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		log.ErrorContext(ctx, "generate token failed", "userID", user.ID, "err", err)
		return nil, UnExpectedError
	}
	return &dto.TokenDTO{Token: token, UserID: user.ID, Username: user.Username}, nil
}
