package dto

import "social-analytics/internal/model"

// ============================================================================
// Model → DTO（Repository 层 → Service 层出参）
// ============================================================================

// ToModel 注册DTO → 用户模型，passwordHash 为已计算好的摘要
func (d *RegisterDTO) ToModel(passwordHash string) *model.User {
	return &model.User{
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: passwordHash,
	}
}

// ToModel 发帖DTO → 帖子模型，调用前必须先 Validate
func (d *CreatePostDTO) ToModel() *model.Post {
	return &model.Post{
		UserID:    d.UserID,
		Content:   d.Content,
		Likes:     d.ClampedLikes(),
		CreatedAt: d.CreatedAt(),
	}
}

// ToModel 评论DTO → 评论模型，调用前必须先 Validate
func (d *CreateCommentDTO) ToModel() *model.Comment {
	return &model.Comment{
		PostID:    d.PostID,
		UserID:    d.UserID,
		Content:   d.Content,
		CreatedAt: d.CreatedAt(),
	}
}

// FromUser 用户模型 → 公开Profile（剥掉密码摘要）
func FromUser(u *model.User) *UserProfileDTO {
	return &UserProfileDTO{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// FromPost 帖子模型 → DTO
func FromPost(p *model.Post) *PostDTO {
	return &PostDTO{
		PostID:    p.PostID,
		UserID:    p.UserID,
		Content:   p.Content,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
	}
}

// FromComment 评论模型 → DTO
func FromComment(c *model.Comment) *CommentDTO {
	return &CommentDTO{
		CommentID: c.CommentID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// FromUserActivity 活跃度结果行 → DTO
func FromUserActivity(a *model.UserActivity) *UserActivityDTO {
	return &UserActivityDTO{
		UserID:        a.UserID,
		Username:      a.Username,
		TotalActivity: a.TotalActivity,
	}
}

// FromInfluencer 影响力结果行 → DTO
func FromInfluencer(i *model.Influencer) *InfluencerDTO {
	return &InfluencerDTO{
		UserID:    i.UserID,
		Username:  i.Username,
		Followers: i.Followers,
	}
}

// FromTrendingPost 热门帖子结果行 → DTO
func FromTrendingPost(p *model.TrendingPost) *TrendingPostDTO {
	return &TrendingPostDTO{
		PostID:          p.PostID,
		Content:         p.Content,
		Likes:           p.Likes,
		EngagementScore: p.EngagementScore,
	}
}
