package service

import (
	"Pictogram/internal/api/dto"
	"Pictogram/internal/model"
	"Pictogram/internal/pkg/consts"
	"Pictogram/internal/pkg/minio"
	log "log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

// BuildPostDTO 由完整加载的帖子实体与观看者身份拼装视图模型，无任何持久化副作用。
// viewerID 为空表示匿名访问，所有观看者标记为 false。
func BuildPostDTO(post *model.Post, viewerID string) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	item.CreatedAt = post.CreatedAt.Format(timeLayout)

	item.UserID = post.UserID
	item.UserName = post.User.Username
	item.ProfilePicture = avatarURL(post.User.ProfilePictureURL)

	item.Images = make([]*dto.PostImageDTO, 0, len(post.Images))
	for _, img := range post.Images {
		item.Images = append(item.Images, &dto.PostImageDTO{
			ID:       img.ID,
			ImageURL: minio.GetPublicURL(img.ImageURL),
			Width:    img.Width,
			Height:   img.Height,
		})
	}

	item.IsOwnedByCurrentUser = viewerID != "" && post.UserID == viewerID
	for _, l := range post.Likes {
		if l.UserID == viewerID && viewerID != "" {
			item.IsLikedByCurrentUser = true
			break
		}
	}
	for _, sp := range post.SavedPosts {
		if sp.UserID == viewerID && viewerID != "" {
			item.IsSavedByCurrentUser = true
			break
		}
	}

	item.LikeCount = len(post.Likes)
	item.CommentCount = len(post.Comments)

	comments := make([]*model.Comment, len(post.Comments))
	for i := range post.Comments {
		comments[i] = &post.Comments[i]
	}
	// 评论按创建时间升序（最旧在前）
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	item.Comments = make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item.Comments = append(item.Comments, buildCommentDTO(c, viewerID))
	}

	return item
}

// BuildPostDTOs 保持仓储返回的帖子顺序
func BuildPostDTOs(posts []*model.Post, viewerID string) []*dto.PostDTO {
	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, BuildPostDTO(p, viewerID))
	}
	return res
}

func buildCommentDTO(comment *model.Comment, viewerID string) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:                     comment.ID,
		PostID:                 comment.PostID,
		UserID:                 comment.UserID,
		UserName:               comment.User.Username,
		Content:                comment.Content,
		CreatedAt:              comment.CreatedAt.Format(timeLayout),
		TimeSincePosted:        TimeSincePosted(comment.CreatedAt),
		IsCreatedByCurrentUser: viewerID != "" && comment.UserID == viewerID,
	}
}

// TimeSincePosted 计算相对时间标签，向下取整，不做复数处理。
// 时间戳在未来（时钟偏移/脏数据）时按 0 处理并记录告警，不渲染负数。
func TimeSincePosted(createdAt time.Time) string {
	now := time.Now().UTC()
	createdAt = createdAt.UTC()

	if createdAt.After(now) {
		log.Warn("timestamp is in the future, clamping to now", "createdAt", createdAt)
		createdAt = now
	}

	span := now.Sub(createdAt)

	if span.Minutes() < 60 {
		return strconv.Itoa(int(span.Minutes())) + " m ago"
	}
	if span.Hours() < 24 {
		return strconv.Itoa(int(span.Hours())) + " h ago"
	}
	return strconv.Itoa(int(span.Hours()/24)) + " d ago"
}

func avatarURL(stored string) string {
	if stored == "" {
		stored = consts.DefaultAvatarURL
	}
	return minio.GetPublicURL(stored)
}
