package model

// ============================================================================
// 报表查询结果行
// ============================================================================

// UserActivity 用户活跃度 = 发帖数 + 评论数
type UserActivity struct {
	UserID        int64  `db:"user_id"`
	Username      string `db:"username"`
	TotalActivity int64  `db:"total_activity"`
}

// Influencer 影响力 = 被关注数
type Influencer struct {
	UserID    int64  `db:"user_id"`
	Username  string `db:"username"`
	Followers int64  `db:"followers"`
}

// TrendingPost 热门帖子，engagement_score = 点赞数 + 评论数
type TrendingPost struct {
	PostID          int64  `db:"post_id"`
	Content         string `db:"content"`
	Likes           int64  `db:"likes"`
	EngagementScore int64  `db:"engagement_score"`
}
