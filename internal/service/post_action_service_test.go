package service

import (
	"Pictogram/internal/model"
	"Pictogram/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Post{}, &model.PostImage{},
		&model.Comment{}, &model.Like{}, &model.SavedPost{}, &model.Follower{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTestPost(t *testing.T, db *gorm.DB, userID string) *model.Post {
	t.Helper()
	post := &model.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     "标题",
		Content:   "正文",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestToggleLike_AddThenRemove(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	viewer := seedTestUser(t, db, "viewer")
	post := seedTestPost(t, db, author.ID)
	ctx := context.Background()

	item, err := svc.ToggleLike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, item.IsLikedByCurrentUser)
	assert.Equal(t, 1, item.LikeCount)

	item, err = svc.ToggleLike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, item.IsLikedByCurrentUser)
	assert.Zero(t, item.LikeCount)
}

func TestToggleLike_PostAbsent(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	viewer := seedTestUser(t, db, "viewer")

	_, err := svc.ToggleLike(context.Background(), viewer.ID, "no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleSave_AddThenRemove(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	viewer := seedTestUser(t, db, "viewer")
	post := seedTestPost(t, db, author.ID)
	ctx := context.Background()

	item, err := svc.ToggleSave(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, item.IsSavedByCurrentUser)

	item, err = svc.ToggleSave(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, item.IsSavedByCurrentUser)
}

func TestAddComment(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	commenter := seedTestUser(t, db, "commenter")
	post := seedTestPost(t, db, author.ID)
	ctx := context.Background()

	item, err := svc.AddComment(ctx, commenter.ID, post.ID, "不错的帖子")
	require.NoError(t, err)
	require.Len(t, item.Comments, 1)
	assert.Equal(t, "不错的帖子", item.Comments[0].Content)
	assert.Equal(t, "commenter", item.Comments[0].UserName)
	assert.Equal(t, 1, item.CommentCount)
}

func TestAddComment_EmptyContent(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	post := seedTestPost(t, db, author.ID)

	_, err := svc.AddComment(context.Background(), author.ID, post.ID, "   ")
	assert.ErrorIs(t, err, ErrContentRequired)
}

func TestEditComment_OnlyAuthor(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	intruder := seedTestUser(t, db, "intruder")
	post := seedTestPost(t, db, author.ID)
	ctx := context.Background()

	item, err := svc.AddComment(ctx, author.ID, post.ID, "原始内容")
	require.NoError(t, err)
	commentID := item.Comments[0].ID

	_, err = svc.EditComment(ctx, intruder.ID, commentID, "篡改")
	assert.ErrorIs(t, err, ForbiddenError)

	item, err = svc.EditComment(ctx, author.ID, commentID, "修改后")
	require.NoError(t, err)
	assert.Equal(t, "修改后", item.Comments[0].Content)
}

func TestDeleteComment(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostActionService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	post := seedTestPost(t, db, author.ID)
	ctx := context.Background()

	item, err := svc.AddComment(ctx, author.ID, post.ID, "待删除")
	require.NoError(t, err)
	commentID := item.Comments[0].ID

	item, err = svc.DeleteComment(ctx, author.ID, commentID)
	require.NoError(t, err)
	assert.Empty(t, item.Comments)
	assert.Zero(t, item.CommentCount)

	_, err = svc.DeleteComment(ctx, author.ID, commentID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
