package model

// User 对应 users 表
type User struct {
	UserID       int64  `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"` // 仅内部使用，不对外暴露
	CreatedAt    string `db:"created_at"`    // "YYYY-MM-DD HH:MM:SS" 文本存储
}
