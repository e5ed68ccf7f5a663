package model

// Relationship 关注边（有向），无代理主键
type Relationship struct {
	FollowerID  int64 `db:"follower_id"`
	FollowingID int64 `db:"following_id"`
}
