package repository

import (
	"Pictogram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	GetAllPosts(ctx context.Context) ([]*model.Post, error)
	GetPostsByUser(ctx context.Context, userID string) ([]*model.Post, error)
	GetSavedPostsByUser(ctx context.Context, userID string) ([]*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post, images []*model.PostImage) error
	UpdatePost(ctx context.Context, post *model.Post, imagesToDelete, imagesToAdd []*model.PostImage) error
	DeletePost(ctx context.Context, postID, requestingUserID string) error

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID string) (*model.Comment, error)
	UpdateComment(ctx context.Context, commentID, requestingUserID, content string) error
	DeleteComment(ctx context.Context, commentID, requestingUserID string) error

	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID string) error
	CheckLikeExists(ctx context.Context, userID, postID string) (bool, error)

	CreateSavedPost(ctx context.Context, savedPost *model.SavedPost) error
	DeleteSavedPost(ctx context.Context, userID, postID string) error
	CheckSavedPostExists(ctx context.Context, userID, postID string) (bool, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// withAssociations 每个关联一条批量查询，读出的实体不再触发任何延迟加载
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Images").
		Preload("Comments").
		Preload("Comments.User").
		Preload("Likes").
		Preload("SavedPosts")
}

func (s *PostRepoImpl) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	result := withAssociations(s.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// GetAllPosts 获取全量帖子流，按创建时间倒序
func (s *PostRepoImpl) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := withAssociations(s.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByUser 获取指定用户的帖子，按创建时间倒序
func (s *PostRepoImpl) GetPostsByUser(ctx context.Context, userID string) ([]*model.Post, error) {
	var posts []*model.Post
	err := withAssociations(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetSavedPostsByUser 通过收藏记录解析出帖子本体，按收藏时间倒序
func (s *PostRepoImpl) GetSavedPostsByUser(ctx context.Context, userID string) ([]*model.Post, error) {
	var posts []*model.Post
	err := withAssociations(s.db.WithContext(ctx)).
		Joins("JOIN saved_posts ON saved_posts.post_id = posts.id").
		Where("saved_posts.user_id = ?", userID).
		Order("saved_posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, images []*model.PostImage) error {
	if len(images) == 0 {
		return s.db.WithContext(ctx).Create(post).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if err := tx.Create(images).Error; err != nil {
			return err
		}
		return nil
	})
}

// UpdatePost 在同一事务里完成图片删除、图片新增与正文更新
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, imagesToDelete, imagesToAdd []*model.PostImage) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, img := range imagesToDelete {
			if err := tx.Delete(&model.PostImage{}, "id = ?", img.ID).Error; err != nil {
				return err
			}
		}
		if len(imagesToAdd) > 0 {
			if err := tx.Create(imagesToAdd).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", post.ID).
			Updates(map[string]interface{}{"title": post.Title, "content": post.Content}).Error
	})
}

// DeletePost 所有权校验后物理删除帖子及其全部关联行
func (s *PostRepoImpl) DeletePost(ctx context.Context, postID, requestingUserID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id", "user_id").Where("id = ?", postID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.UserID != requestingUserID {
			return ErrNotOwner
		}

		for _, m := range []interface{}{&model.PostImage{}, &model.Comment{}, &model.Like{}, &model.SavedPost{}} {
			if err := tx.Where("post_id = ?", postID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Post{}, "id = ?", postID).Error
	})
}

func (s *PostRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *PostRepoImpl) GetCommentByID(ctx context.Context, commentID string) (*model.Comment, error) {
	var comment model.Comment
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", commentID).
		First(&comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

// UpdateComment 仅作者本人可编辑评论内容
func (s *PostRepoImpl) UpdateComment(ctx context.Context, commentID, requestingUserID, content string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Select("id", "user_id").Where("id = ?", commentID).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if comment.UserID != requestingUserID {
			return ErrNotOwner
		}
		return tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			Update("content", content).Error
	})
}

// DeleteComment 仅作者本人可删除评论
func (s *PostRepoImpl) DeleteComment(ctx context.Context, commentID, requestingUserID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Select("id", "user_id").Where("id = ?", commentID).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if comment.UserID != requestingUserID {
			return ErrNotOwner
		}
		return tx.Delete(&model.Comment{}, "id = ?", commentID).Error
	})
}

func (s *PostRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

// DeleteLike 目标行不存在时静默跳过
func (s *PostRepoImpl) DeleteLike(ctx context.Context, userID, postID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

func (s *PostRepoImpl) CheckLikeExists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostRepoImpl) CreateSavedPost(ctx context.Context, savedPost *model.SavedPost) error {
	return s.db.WithContext(ctx).Create(savedPost).Error
}

func (s *PostRepoImpl) DeleteSavedPost(ctx context.Context, userID, postID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.SavedPost{}).Error
}

func (s *PostRepoImpl) CheckSavedPostExists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.SavedPost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
