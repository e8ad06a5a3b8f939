package media

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/disintegration/imaging"
)

// 允许的图片扩展名白名单
var permittedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// IsImageFile 基于扩展名白名单校验文件名
func IsImageFile(filename string) bool {
	_, ok := permittedExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}

// ContentTypeFor 根据扩展名推导 Content-Type
func ContentTypeFor(filename string) string {
	if ct, ok := permittedExtensions[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ProbeDimensions 解码图片字节流获取宽高
func ProbeDimensions(data []byte) (int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("解码图片失败: %w", err)
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
