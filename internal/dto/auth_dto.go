package dto

// ============================================================================
// 认证相关 DTO
// ============================================================================

// RegisterDTO 注册请求
type RegisterDTO struct {
	Username string
	Email    string
	Password string
}

// LoginDTO 登录请求
type LoginDTO struct {
	Email    string
	Password string
}

// LogoutDTO 登出请求
type LogoutDTO struct {
	Token string
}

// SessionDTO 登录成功后的会话信息
type SessionDTO struct {
	Token   string
	Profile *UserProfileDTO
}
