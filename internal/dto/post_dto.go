package dto

import "fmt"

// ============================================================================
// 帖子 DTO
// ============================================================================

// CreatePostDTO 发帖请求。
// Date/Time 由调用方分开录入，校验通过后拼成 created_at。
type CreatePostDTO struct {
	UserID  int64
	Content string
	Likes   int64
	Date    string // "YYYY-MM-DD"
	Time    string // "HH:MM:SS"，严格格式
}

// CreatedAt 拼接落库用的时间字符串，调用前必须先 Validate
func (d *CreatePostDTO) CreatedAt() string {
	return fmt.Sprintf("%s %s", d.Date, d.Time)
}

// ClampedLikes 点赞数钳到非负
func (d *CreatePostDTO) ClampedLikes() int64 {
	if d.Likes < 0 {
		return 0
	}
	return d.Likes
}

// UpdatePostDTO 编辑帖子（内容 + 点赞数）
type UpdatePostDTO struct {
	PostID  int64
	Content string
	Likes   int64
}

// ClampedLikes 点赞数钳到非负
func (d *UpdatePostDTO) ClampedLikes() int64 {
	if d.Likes < 0 {
		return 0
	}
	return d.Likes
}

// PostDTO 帖子展示信息
type PostDTO struct {
	PostID    int64
	UserID    int64
	Content   string
	Likes     int64
	CreatedAt string
}
