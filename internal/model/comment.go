package model

// Comment 对应 comments 表，始终挂在已存在的帖子下
type Comment struct {
	CommentID int64  `db:"comment_id"`
	PostID    int64  `db:"post_id"`
	UserID    int64  `db:"user_id"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
}
