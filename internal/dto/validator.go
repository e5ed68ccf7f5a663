package dto

import (
	"errors"
	"strings"
	"time"
)

// 时间格式：日期与时间分开录入，时间必须是严格的 HH:MM:SS
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// ============================================================================
// 验证错误
// ============================================================================

var (
	ErrUsernameEmpty    = errors.New("用户名不能为空")
	ErrEmailEmpty       = errors.New("邮箱不能为空")
	ErrEmailInvalid     = errors.New("邮箱格式不正确")
	ErrPasswordEmpty    = errors.New("密码不能为空")
	ErrPasswordTooShort = errors.New("密码长度不能少于6位")
	ErrPasswordTooLong  = errors.New("密码长度不能超过100位")
	ErrContentEmpty     = errors.New("内容不能为空")
	ErrUserIDInvalid    = errors.New("用户ID无效")
	ErrPostIDInvalid    = errors.New("帖子ID无效")
	ErrDateInvalid      = errors.New("日期格式不正确（应为 YYYY-MM-DD）")
	ErrTimeInvalid      = errors.New("时间格式不正确（应为 HH:MM:SS）")
	ErrTokenEmpty       = errors.New("Token不能为空")
	ErrSelfFollow       = errors.New("不能关注自己")
)

// validateEmail 邮箱只做最基本的形状检查，存储层的唯一约束才是最终防线
func validateEmail(email string) error {
	if email == "" {
		return ErrEmailEmpty
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	return nil
}

// validatePassword 密码长度检查
func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 100 {
		return ErrPasswordTooLong
	}
	return nil
}

// validateCreatedAt 严格校验日期与时间字符串，不做任何静默纠正。
// "25:61:00" 这类非法时间必须在写库之前被拒绝。
func validateCreatedAt(date, clock string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrDateInvalid
	}
	if _, err := time.Parse(timeLayout, clock); err != nil {
		return ErrTimeInvalid
	}
	return nil
}

// ============================================================================
// RegisterDTO 验证
// ============================================================================

// Validate 验证注册DTO
func (d *RegisterDTO) Validate() error {
	if strings.TrimSpace(d.Username) == "" {
		return ErrUsernameEmpty
	}
	if err := validateEmail(d.Email); err != nil {
		return err
	}
	return validatePassword(d.Password)
}

// ============================================================================
// LoginDTO 验证
// ============================================================================

// Validate 验证登录DTO
func (d *LoginDTO) Validate() error {
	if d.Email == "" {
		return ErrEmailEmpty
	}
	if d.Password == "" {
		return ErrPasswordEmpty
	}
	return nil
}

// ============================================================================
// LogoutDTO 验证
// ============================================================================

// Validate 验证登出DTO
func (d *LogoutDTO) Validate() error {
	if d.Token == "" {
		return ErrTokenEmpty
	}
	return nil
}

// ============================================================================
// UpdateUserDTO 验证
// ============================================================================

// Validate 验证更新用户DTO（Password 为空表示不修改密码）
func (d *UpdateUserDTO) Validate() error {
	if d.UserID <= 0 {
		return ErrUserIDInvalid
	}
	if strings.TrimSpace(d.Username) == "" {
		return ErrUsernameEmpty
	}
	if err := validateEmail(d.Email); err != nil {
		return err
	}
	if d.Password != "" {
		return validatePassword(d.Password)
	}
	return nil
}

// ============================================================================
// CreatePostDTO 验证
// ============================================================================

// Validate 验证发帖DTO
func (d *CreatePostDTO) Validate() error {
	if d.UserID <= 0 {
		return ErrUserIDInvalid
	}
	if strings.TrimSpace(d.Content) == "" {
		return ErrContentEmpty
	}
	return validateCreatedAt(d.Date, d.Time)
}

// ============================================================================
// UpdatePostDTO 验证
// ============================================================================

// Validate 验证编辑帖子DTO
func (d *UpdatePostDTO) Validate() error {
	if d.PostID <= 0 {
		return ErrPostIDInvalid
	}
	if strings.TrimSpace(d.Content) == "" {
		return ErrContentEmpty
	}
	return nil
}

// ============================================================================
// CreateCommentDTO 验证
// ============================================================================

// Validate 验证评论DTO
func (d *CreateCommentDTO) Validate() error {
	if d.PostID <= 0 {
		return ErrPostIDInvalid
	}
	if d.UserID <= 0 {
		return ErrUserIDInvalid
	}
	if strings.TrimSpace(d.Content) == "" {
		return ErrContentEmpty
	}
	return validateCreatedAt(d.Date, d.Time)
}

// ============================================================================
// FollowDTO 验证
// ============================================================================

// Validate 验证关注DTO
func (d *FollowDTO) Validate() error {
	if d.FollowerID <= 0 || d.FollowingID <= 0 {
		return ErrUserIDInvalid
	}
	if d.FollowerID == d.FollowingID {
		return ErrSelfFollow
	}
	return nil
}
