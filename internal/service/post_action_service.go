package service

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/model"
	"Pictogram/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, userID, postID string) (*dto.PostDTO, error)
	ToggleSave(ctx context.Context, userID, postID string) (*dto.PostDTO, error)
	AddComment(ctx context.Context, userID, postID, content string) (*dto.PostDTO, error)
	EditComment(ctx context.Context, userID, commentID, content string) (*dto.PostDTO, error)
	DeleteComment(ctx context.Context, userID, commentID string) (*dto.PostDTO, error)
}

type postActionServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostActionService(postRepo repository.PostRepo) PostActionService {
	return &postActionServiceImpl{postRepo: postRepo}
}

// ToggleLike 有则取消、无则点赞，成功后返回刷新过的帖子视图模型
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, userID, postID string) (*dto.PostDTO, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	for _, l := range post.Likes {
		if l.UserID == userID {
			liked = true
			break
		}
	}

	if liked {
		err = s.postRepo.DeleteLike(ctx, userID, postID)
	} else {
		err = s.postRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now().UTC()})
		// 并发双击由存储层联合主键裁决，重复插入视为无操作
		if isDuplicateError(err) {
			err = nil
		}
	}
	if err != nil {
		log.ErrorContext(ctx, "ToggleLike failed", "postID", postID, "userID", userID, "err", err)
		return nil, UnExpectedError
	}

	return s.refresh(ctx, postID, userID)
}

// ToggleSave 与点赞同构，作用于收藏标记
func (s *postActionServiceImpl) ToggleSave(ctx context.Context, userID, postID string) (*dto.PostDTO, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	saved := false
	for _, sp := range post.SavedPosts {
		if sp.UserID == userID {
			saved = true
			break
		}
	}

	if saved {
		err = s.postRepo.DeleteSavedPost(ctx, userID, postID)
	} else {
		err = s.postRepo.CreateSavedPost(ctx, &model.SavedPost{UserID: userID, PostID: postID, CreatedAt: time.Now().UTC()})
		if isDuplicateError(err) {
			err = nil
		}
	}
	if err != nil {
		log.ErrorContext(ctx, "ToggleSave failed", "postID", postID, "userID", userID, "err", err)
		return nil, UnExpectedError
	}

	return s.refresh(ctx, postID, userID)
}

func (s *postActionServiceImpl) AddComment(ctx context.Context, userID, postID, content string) (*dto.PostDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.CreateComment(ctx, comment); err != nil {
		log.ErrorContext(ctx, "AddComment failed", "postID", postID, "err", err)
		return nil, UnExpectedError
	}

	return s.refresh(ctx, postID, userID)
}

// EditComment 仅作者可编辑，校验由仓储层执行
func (s *postActionServiceImpl) EditComment(ctx context.Context, userID, commentID, content string) (*dto.PostDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err = s.postRepo.UpdateComment(ctx, commentID, userID, content); err != nil {
		return nil, s.translateCommentErr(ctx, "EditComment", commentID, err)
	}

	return s.refresh(ctx, comment.PostID, userID)
}

// DeleteComment 仅作者可删除，校验由仓储层执行
func (s *postActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID string) (*dto.PostDTO, error) {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err = s.postRepo.DeleteComment(ctx, commentID, userID); err != nil {
		return nil, s.translateCommentErr(ctx, "DeleteComment", commentID, err)
	}

	return s.refresh(ctx, comment.PostID, userID)
}

func (s *postActionServiceImpl) getPost(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "load post failed", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postActionServiceImpl) getComment(ctx context.Context, commentID string) (*model.Comment, error) {
	comment, err := s.postRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		log.ErrorContext(ctx, "load comment failed", "commentID", commentID, "err", err)
		return nil, UnExpectedError
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *postActionServiceImpl) refresh(ctx context.Context, postID, viewerID string) (*dto.PostDTO, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildPostDTO(post, viewerID), nil
}

func (s *postActionServiceImpl) translateCommentErr(ctx context.Context, op, commentID string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrCommentNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return ForbiddenError
	default:
		log.ErrorContext(ctx, op+" failed", "commentID", commentID, "err", err)
		return UnExpectedError
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
