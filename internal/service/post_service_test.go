package service

import (
	"Pictogram/internal/model"
	"Pictogram/internal/repository"
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomeFeed_NewestFirst(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepo(db))
	author := seedTestUser(t, db, "author")
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"一", "二", "三"} {
		post := &model.Post{
			ID:        uuid.NewString(),
			UserID:    author.ID,
			Title:     title,
			Content:   "正文",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(post).Error)
	}

	feed, err := svc.GetHomeFeed(ctx, "")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "三", feed[0].Title)
	assert.Equal(t, "二", feed[1].Title)
	assert.Equal(t, "一", feed[2].Title)
}

func TestGetPostDetail_Absent(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepo(db))

	_, err := svc.GetPostDetail(context.Background(), "no-such-post", "")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost_ErrorTranslation(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepo(db))
	owner := seedTestUser(t, db, "owner")
	other := seedTestUser(t, db, "other")
	post := seedTestPost(t, db, owner.ID)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeletePost(ctx, other.ID, post.ID), ForbiddenError)
	assert.ErrorIs(t, svc.DeletePost(ctx, owner.ID, "no-such-post"), ErrPostNotFound)

	require.NoError(t, svc.DeletePost(ctx, owner.ID, post.ID))
	assert.ErrorIs(t, svc.DeletePost(ctx, owner.ID, post.ID), ErrPostNotFound)
}

func TestEditPost_ContentLengthCountsCharacters(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepo(db))
	owner := seedTestUser(t, db, "owner")
	post := seedTestPost(t, db, owner.ID)
	ctx := context.Background()

	// 1500 个多字节字符：字符数在 2000 以内，字节数远超 2000
	cjk := strings.Repeat("汉", 1500)
	require.NoError(t, svc.EditPost(ctx, owner.ID, post.ID, "标题", cjk, nil))

	got, err := svc.GetPostDetail(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, cjk, got.Content)

	// 超过 2000 字符才拒绝
	tooLong := strings.Repeat("汉", 2001)
	assert.ErrorIs(t, svc.EditPost(ctx, owner.ID, post.ID, "标题", tooLong, nil), ErrParamInvalid)
}

func TestEditPost_UploadFailureLeavesPostUnchanged(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepo(db))
	owner := seedTestUser(t, db, "owner")
	post := seedTestPost(t, db, owner.ID)
	ctx := context.Background()

	// 对象存储不可用时上传失败，原帖子不受影响
	files := []*multipart.FileHeader{{Filename: "new.jpg", Size: 10}}
	err := svc.EditPost(ctx, owner.ID, post.ID, "新标题", "新正文", files)
	require.Error(t, err)

	got, err := svc.GetPostDetail(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "标题", got.Title)
	assert.Equal(t, "正文", got.Content)
}

func TestGetSavedPosts_ViewerFlagsSet(t *testing.T) {
	db := newServiceTestDB(t)
	repo := repository.NewPostRepo(db)
	svc := NewPostService(repo)
	author := seedTestUser(t, db, "author")
	reader := seedTestUser(t, db, "reader")
	post := seedTestPost(t, db, author.ID)
	ctx := context.Background()

	require.NoError(t, repo.CreateSavedPost(ctx, &model.SavedPost{UserID: reader.ID, PostID: post.ID, CreatedAt: time.Now().UTC()}))

	saved, err := svc.GetSavedPosts(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].IsSavedByCurrentUser)
	assert.False(t, saved[0].IsOwnedByCurrentUser)
}
