package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"social-analytics/internal/model"
	"social-analytics/pkg/db"
)

// AnalyticsRepository 报表仓储接口，三条固定口径的聚合查询
type AnalyticsRepository interface {
	// MostActiveUsers 最活跃用户：帖子数 + 评论数之和倒序取前 limit 名
	MostActiveUsers(ctx context.Context, limit int) ([]*model.UserActivity, error)

	// TopInfluencers 头部影响力用户：粉丝数倒序取前 limit 名
	TopInfluencers(ctx context.Context, limit int) ([]*model.Influencer, error)

	// TrendingPosts 热门帖子：点赞数 + 评论数倒序取前 limit 条
	TrendingPosts(ctx context.Context, limit int) ([]*model.TrendingPost, error)

	// CreateIndexes 为报表查询建立覆盖索引（幂等）
	CreateIndexes(ctx context.Context) error
}

// analyticsRepository 报表仓储实现
type analyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository 创建报表仓储实例
func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// MostActiveUsers 最活跃用户。
// 帖子数和评论数先在各自的派生表里聚合完再 JOIN，
// 直接双 LEFT JOIN 会产生笛卡尔积把计数乘起来。
func (r *analyticsRepository) MostActiveUsers(ctx context.Context, limit int) ([]*model.UserActivity, error) {
	rows := make([]*model.UserActivity, 0, limit)
	query := `
        SELECT u.user_id,
               u.username,
               COALESCE(p.cnt, 0) + COALESCE(c.cnt, 0) AS total_activity
        FROM users u
        LEFT JOIN (SELECT user_id, COUNT(*) AS cnt FROM posts GROUP BY user_id) p
               ON p.user_id = u.user_id
        LEFT JOIN (SELECT user_id, COUNT(*) AS cnt FROM comments GROUP BY user_id) c
               ON c.user_id = u.user_id
        ORDER BY total_activity DESC
        LIMIT ?`

	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query most active users: %w", err)
	}
	return rows, nil
}

// TopInfluencers 头部影响力用户
func (r *analyticsRepository) TopInfluencers(ctx context.Context, limit int) ([]*model.Influencer, error) {
	rows := make([]*model.Influencer, 0, limit)
	query := `
        SELECT u.user_id,
               u.username,
               COALESCE(f.cnt, 0) AS followers
        FROM users u
        LEFT JOIN (SELECT following_id, COUNT(*) AS cnt FROM relationships GROUP BY following_id) f
               ON f.following_id = u.user_id
        ORDER BY followers DESC
        LIMIT ?`

	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query top influencers: %w", err)
	}
	return rows, nil
}

// TrendingPosts 热门帖子，互动分 = 点赞数 + 评论数
func (r *analyticsRepository) TrendingPosts(ctx context.Context, limit int) ([]*model.TrendingPost, error) {
	rows := make([]*model.TrendingPost, 0, limit)
	query := `
        SELECT p.post_id,
               p.content,
               p.likes,
               p.likes + COALESCE(c.cnt, 0) AS engagement_score
        FROM posts p
        LEFT JOIN (SELECT post_id, COUNT(*) AS cnt FROM comments GROUP BY post_id) c
               ON c.post_id = p.post_id
        ORDER BY engagement_score DESC
        LIMIT ?`

	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query trending posts: %w", err)
	}
	return rows, nil
}

// CreateIndexes 建立报表覆盖索引
func (r *analyticsRepository) CreateIndexes(_ context.Context) error {
	return db.CreateIndexes(r.db)
}
