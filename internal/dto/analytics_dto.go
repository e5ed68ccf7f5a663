package dto

// ============================================================================
// 报表 DTO
// ============================================================================

// UserActivityDTO 最活跃用户行
type UserActivityDTO struct {
	UserID        int64
	Username      string
	TotalActivity int64
}

// InfluencerDTO 头部影响力用户行
type InfluencerDTO struct {
	UserID    int64
	Username  string
	Followers int64
}

// TrendingPostDTO 热门帖子行
type TrendingPostDTO struct {
	PostID          int64
	Content         string
	Likes           int64
	EngagementScore int64
}
