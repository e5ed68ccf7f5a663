package dto

// ============================================================================
// 用户信息 DTO
// ============================================================================

// UserProfileDTO 用户公开信息（不含密码摘要）
type UserProfileDTO struct {
	UserID    int64
	Username  string
	Email     string
	CreatedAt string
}

// UpdateUserDTO 更新用户资料。
// Password 为空表示不改密码，已存储的摘要保持不变。
type UpdateUserDTO struct {
	UserID   int64
	Username string
	Email    string
	Password string
}

// IsEmpty 检查Profile是否为空
func (p *UserProfileDTO) IsEmpty() bool {
	return p.UserID == 0
}
