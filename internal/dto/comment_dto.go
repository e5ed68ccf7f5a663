package dto

import "fmt"

// ============================================================================
// 评论 DTO
// ============================================================================

// CreateCommentDTO 发表评论请求
type CreateCommentDTO struct {
	PostID  int64
	UserID  int64
	Content string
	Date    string // "YYYY-MM-DD"
	Time    string // "HH:MM:SS"
}

// CreatedAt 拼接落库用的时间字符串，调用前必须先 Validate
func (d *CreateCommentDTO) CreatedAt() string {
	return fmt.Sprintf("%s %s", d.Date, d.Time)
}

// CommentDTO 评论展示信息
type CommentDTO struct {
	CommentID int64
	PostID    int64
	UserID    int64
	Content   string
	CreatedAt string
}
