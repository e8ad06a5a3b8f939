package consts

// Redis 键前缀
const (
	TokenDenyKey = "auth:token:deny:"
)

const (
	DefaultAvatarURL = "default_avatar.png"
	UploadPrefix     = "uploads/"
)
