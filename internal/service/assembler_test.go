package service

import (
	"Pictogram/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSincePosted(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"刚刚发布", now.Add(-30 * time.Second), "0 m ago"},
		{"五分钟前", now.Add(-5 * time.Minute), "5 m ago"},
		{"59分钟边界", now.Add(-59*time.Minute - 30*time.Second), "59 m ago"},
		{"跨入小时", now.Add(-90 * time.Minute), "1 h ago"},
		{"23小时", now.Add(-23*time.Hour - 30*time.Minute), "23 h ago"},
		{"跨入天", now.Add(-25 * time.Hour), "1 d ago"},
		{"三天前", now.Add(-72*time.Hour - time.Minute), "3 d ago"},
		{"未来时间戳按0处理", now.Add(time.Hour), "0 m ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TimeSincePosted(tc.createdAt))
		})
	}
}

func TestBuildPostDTO_ViewerFlags(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	post := &model.Post{
		ID:        "post-1",
		UserID:    "owner-1",
		Title:     "标题",
		Content:   "正文",
		CreatedAt: created,
		User:      model.User{ID: "owner-1", Username: "alice"},
		Likes: []model.Like{
			{UserID: "viewer-1", PostID: "post-1"},
			{UserID: "someone", PostID: "post-1"},
		},
		SavedPosts: []model.SavedPost{
			{UserID: "someone", PostID: "post-1"},
		},
	}

	item := BuildPostDTO(post, "viewer-1")
	assert.True(t, item.IsLikedByCurrentUser)
	assert.False(t, item.IsSavedByCurrentUser)
	assert.False(t, item.IsOwnedByCurrentUser)
	assert.Equal(t, 2, item.LikeCount)
	assert.Equal(t, "alice", item.UserName)
	assert.Equal(t, "2026-01-01 12:00:00", item.CreatedAt)

	owner := BuildPostDTO(post, "owner-1")
	assert.True(t, owner.IsOwnedByCurrentUser)
	assert.False(t, owner.IsLikedByCurrentUser)
}

func TestBuildPostDTO_AnonymousViewer(t *testing.T) {
	post := &model.Post{
		ID:     "post-1",
		UserID: "owner-1",
		User:   model.User{ID: "owner-1", Username: "alice"},
		Likes:  []model.Like{{UserID: "someone", PostID: "post-1"}},
	}

	item := BuildPostDTO(post, "")
	assert.False(t, item.IsLikedByCurrentUser)
	assert.False(t, item.IsSavedByCurrentUser)
	assert.False(t, item.IsOwnedByCurrentUser)
	assert.Equal(t, 1, item.LikeCount)
}

func TestBuildPostDTO_CommentsOldestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	post := &model.Post{
		ID:     "post-1",
		UserID: "owner-1",
		User:   model.User{ID: "owner-1", Username: "alice"},
		Comments: []model.Comment{
			{ID: "c-newest", PostID: "post-1", UserID: "u1", Content: "三", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "c-oldest", PostID: "post-1", UserID: "u2", Content: "一", CreatedAt: base},
			{ID: "c-middle", PostID: "post-1", UserID: "u3", Content: "二", CreatedAt: base.Add(time.Hour)},
		},
	}

	item := BuildPostDTO(post, "")
	require.Len(t, item.Comments, 3)
	assert.Equal(t, "c-oldest", item.Comments[0].ID)
	assert.Equal(t, "c-middle", item.Comments[1].ID)
	assert.Equal(t, "c-newest", item.Comments[2].ID)
	assert.Equal(t, 3, item.CommentCount)
}

func TestBuildPostDTO_DefaultAvatar(t *testing.T) {
	post := &model.Post{
		ID:     "post-1",
		UserID: "owner-1",
		User:   model.User{ID: "owner-1", Username: "alice", ProfilePictureURL: ""},
	}

	item := BuildPostDTO(post, "")
	assert.NotEmpty(t, item.ProfilePicture)
}
