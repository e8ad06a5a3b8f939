package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
