package repository

import "errors"

// 仓储层哨兵错误，所有权校验在仓储边界执行（调用方不可绕过）
var (
	ErrNotFound = errors.New("记录不存在")
	ErrNotOwner = errors.New("非资源所有者")
)
