package dto

// FollowDTO 关注/取关请求（有向边）
type FollowDTO struct {
	FollowerID  int64
	FollowingID int64
}
