package model

// Post 对应 posts 表
type Post struct {
	PostID    int64  `db:"post_id"`
	UserID    int64  `db:"user_id"`
	Content   string `db:"content"`
	Likes     int64  `db:"likes"`
	CreatedAt string `db:"created_at"` // 调用方提供的 "YYYY-MM-DD HH:MM:SS"
}
