package service

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/model"
	"Pictogram/internal/pkg/media"
	"Pictogram/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 2000
)

type PostService interface {
	GetHomeFeed(ctx context.Context, viewerID string) ([]*dto.PostDTO, error)
	GetPostDetail(ctx context.Context, postID, viewerID string) (*dto.PostDTO, error)
	GetPostsByUser(ctx context.Context, userID, viewerID string) ([]*dto.PostDTO, error)
	GetSavedPosts(ctx context.Context, userID string) ([]*dto.PostDTO, error)
	CreatePost(ctx context.Context, userID, title, content string, imageFiles []*multipart.FileHeader) (*dto.PostDTO, error)
	EditPost(ctx context.Context, userID, postID, title, content string, imageFiles []*multipart.FileHeader) error
	DeletePost(ctx context.Context, userID, postID string) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{postRepo: postRepo}
}

// GetHomeFeed 全站帖子流，最新在前
func (s *postServiceImpl) GetHomeFeed(ctx context.Context, viewerID string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetAllPosts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "GetHomeFeed failed", "err", err)
		return nil, UnExpectedError
	}
	return BuildPostDTOs(posts, viewerID), nil
}

func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID, viewerID string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "GetPostDetail failed", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return BuildPostDTO(post, viewerID), nil
}

func (s *postServiceImpl) GetPostsByUser(ctx context.Context, userID, viewerID string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "GetPostsByUser failed", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	return BuildPostDTOs(posts, viewerID), nil
}

// GetSavedPosts 查看者即收藏者，is_saved 恒为 true
func (s *postServiceImpl) GetSavedPosts(ctx context.Context, userID string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetSavedPostsByUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "GetSavedPosts failed", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	return BuildPostDTOs(posts, userID), nil
}

// CreatePost 校验、上传图片并原子落库，成功后返回新帖子的视图模型
func (s *postServiceImpl) CreatePost(ctx context.Context, userID, title, content string, imageFiles []*multipart.FileHeader) (*dto.PostDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	// 长度限制按字符数而非字节数
	if utf8.RuneCountInString(content) > MaxContentLength || utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrParamInvalid
	}
	if len(imageFiles) == 0 {
		return nil, ErrImageRequired
	}
	for _, fh := range imageFiles {
		if !isImageUpload(fh) {
			return nil, ErrFileNotSupported
		}
	}

	post := &model.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	images := make([]*model.PostImage, 0, len(imageFiles))
	for _, fh := range imageFiles {
		key, w, h, err := uploadImageFile(ctx, fh)
		if err != nil {
			return nil, err
		}
		images = append(images, &model.PostImage{
			ID:        uuid.NewString(),
			PostID:    post.ID,
			ImageURL:  key,
			Width:     w,
			Height:    h,
			CreatedAt: time.Now().UTC(),
		})
	}

	if err := s.postRepo.CreatePost(ctx, post, images); err != nil {
		// 已上传的文件成为孤儿，记录后尽力清理
		log.ErrorContext(ctx, "CreatePost failed", "postID", post.ID, "err", err)
		for _, img := range images {
			deleteImageFile(ctx, img.ImageURL)
		}
		return nil, UnExpectedError
	}

	return s.GetPostDetail(ctx, post.ID, userID)
}

// EditPost 替换式编辑：传入新图片时旧图全部删除，否则仅更新文字
func (s *postServiceImpl) EditPost(ctx context.Context, userID, postID, title, content string, imageFiles []*multipart.FileHeader) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	if utf8.RuneCountInString(content) > MaxContentLength || utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrParamInvalid
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "EditPost load failed", "postID", postID, "err", err)
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ForbiddenError
	}

	var imagesToDelete, imagesToAdd []*model.PostImage
	if len(imageFiles) > 0 {
		for _, fh := range imageFiles {
			if !isImageUpload(fh) {
				return ErrFileNotSupported
			}
		}
		for i := range post.Images {
			imagesToDelete = append(imagesToDelete, &post.Images[i])
		}
		for _, fh := range imageFiles {
			key, w, h, err := uploadImageFile(ctx, fh)
			if err != nil {
				// 中途失败时已上传的文件成为孤儿，尽力清理
				for _, img := range imagesToAdd {
					deleteImageFile(ctx, img.ImageURL)
				}
				return err
			}
			imagesToAdd = append(imagesToAdd, &model.PostImage{
				ID:        uuid.NewString(),
				PostID:    post.ID,
				ImageURL:  key,
				Width:     w,
				Height:    h,
				CreatedAt: time.Now().UTC(),
			})
		}
	}

	updated := &model.Post{ID: post.ID, Title: title, Content: content}
	if err = s.postRepo.UpdatePost(ctx, updated, imagesToDelete, imagesToAdd); err != nil {
		log.ErrorContext(ctx, "EditPost failed", "postID", postID, "err", err)
		for _, img := range imagesToAdd {
			deleteImageFile(ctx, img.ImageURL)
		}
		return UnExpectedError
	}

	// 数据库事务成功后再清理旧文件
	for _, img := range imagesToDelete {
		deleteImageFile(ctx, img.ImageURL)
	}
	return nil
}

// DeletePost 所有权校验下沉到仓储层，这里负责翻译错误并清理文件
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "DeletePost load failed", "postID", postID, "err", err)
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err = s.postRepo.DeletePost(ctx, postID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrPostNotFound
		case errors.Is(err, repository.ErrNotOwner):
			return ForbiddenError
		default:
			log.ErrorContext(ctx, "DeletePost failed", "postID", postID, "err", err)
			return UnExpectedError
		}
	}

	for i := range post.Images {
		deleteImageFile(ctx, post.Images[i].ImageURL)
	}
	return nil
}

func isImageUpload(fh *multipart.FileHeader) bool {
	return fh.Size > 0 && media.IsImageFile(fh.Filename)
}
