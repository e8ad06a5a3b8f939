package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("用户名或密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrPostNotFound            = errors.New("帖子不存在")
	ErrCommentNotFound         = errors.New("评论不存在")
	ErrContentRequired         = errors.New("内容不能为空")
	ErrImageRequired           = errors.New("至少需要一张图片")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrUserFollowExist         = errors.New("用户已关注")
	ErrFollowNotFound          = errors.New("关注关系不存在")
	ForbiddenError             = errors.New("非资源所有者")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrPostNotFound:            NotFound,
	ErrCommentNotFound:         NotFound,
	ErrContentRequired:         BadRequest,
	ErrImageRequired:           BadRequest,
	ErrFileNotSupported:        BadRequest,
	ErrUserFollowExist:         BadRequest,
	ErrFollowNotFound:          NotFound,
	ForbiddenError:             Forbidden,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
