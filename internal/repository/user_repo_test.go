package repository

import (
	"Pictogram/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_GetUserByUsername_Absent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	user, err := repo.GetUserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepo_CreateAndGetUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	seeded := seedUser(t, db, "alice")

	byID, err := repo.GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, seeded.ID, byName.ID)
}

func TestUserRepo_UpdateUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	user.Bio = "你好世界"
	user.ProfilePictureURL = "uploads/avatar.png"
	require.NoError(t, repo.UpdateUser(ctx, user))

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "你好世界", got.Bio)
	assert.Equal(t, "uploads/avatar.png", got.ProfilePictureURL)
}

func TestUserRepo_FollowRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	follow, err := repo.GetUserFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, follow)

	require.NoError(t, repo.CreateUserFollow(ctx, &model.Follower{FollowerID: alice.ID, FollowedID: bob.ID}))

	follow, err = repo.GetUserFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, follow)

	count, err := repo.GetFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	count, err = repo.GetFollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	deleted, err := repo.DeleteUserFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// 再次删除：关系已不存在
	deleted, err = repo.DeleteUserFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepo_FollowerAndFollowingLists(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, repo.CreateUserFollow(ctx, &model.Follower{FollowerID: bob.ID, FollowedID: alice.ID}))
	require.NoError(t, repo.CreateUserFollow(ctx, &model.Follower{FollowerID: carol.ID, FollowedID: alice.ID}))
	require.NoError(t, repo.CreateUserFollow(ctx, &model.Follower{FollowerID: alice.ID, FollowedID: bob.ID}))

	followers, err := repo.GetFollowers(ctx, alice.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(followers))
	for _, u := range followers {
		names = append(names, u.Username)
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := repo.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)
}
