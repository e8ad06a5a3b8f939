package service

import (
	"Pictogram/internal/pkg/consts"
	"Pictogram/internal/pkg/media"
	"Pictogram/internal/pkg/minio"
	"bytes"
	"context"
	"io"
	log "log/slog"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
)

// uploadImageFile 校验、探测并上传单个图片文件，返回对象键与宽高。
// 上传与后续的数据库写入不在同一事务内：中途失败可能留下孤儿文件，
// 只记录日志，不做补偿。
func uploadImageFile(ctx context.Context, fh *multipart.FileHeader) (string, int, int, error) {
	if !media.IsImageFile(fh.Filename) {
		return "", 0, 0, ErrFileNotSupported
	}

	f, err := fh.Open()
	if err != nil {
		log.ErrorContext(ctx, "open uploaded file failed", "filename", fh.Filename, "err", err)
		return "", 0, 0, UnExpectedError
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		log.ErrorContext(ctx, "read uploaded file failed", "filename", fh.Filename, "err", err)
		return "", 0, 0, UnExpectedError
	}

	width, height, err := media.ProbeDimensions(data)
	if err != nil {
		// 宽高仅用于展示，探测失败不阻断上传
		log.WarnContext(ctx, "failed to probe image dimensions", "filename", fh.Filename, "err", err)
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	objectName := consts.UploadPrefix + uuid.NewString() + ext

	key, err := minio.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), media.ContentTypeFor(fh.Filename))
	if err != nil {
		log.ErrorContext(ctx, "upload image failed", "objectName", objectName, "err", err)
		return "", 0, 0, UnExpectedError
	}

	return key, width, height, nil
}

// deleteImageFile 尽力删除存储中的图片文件，失败只记日志
func deleteImageFile(ctx context.Context, objectName string) {
	if err := minio.DeleteFile(ctx, objectName); err != nil {
		log.ErrorContext(ctx, "delete image file failed", "objectName", objectName, "err", err)
	}
}
