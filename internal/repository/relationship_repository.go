package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"social-analytics/internal/model"
)

// RelationshipRepository 关注关系仓储接口
type RelationshipRepository interface {
	// Follow 建立关注边（follower → following）
	Follow(ctx context.Context, followerID, followingID int64) error

	// Unfollow 解除关注边，边不存在返回 ErrNotFound
	Unfollow(ctx context.Context, followerID, followingID int64) error

	// CountFollowers 统计某用户的粉丝数
	CountFollowers(ctx context.Context, userID int64) (int64, error)

	// ListFollowers 某用户的粉丝列表
	ListFollowers(ctx context.Context, userID int64) ([]*model.User, error)
}

// relationshipRepository 关注关系仓储实现
type relationshipRepository struct {
	db *sqlx.DB
}

// NewRelationshipRepository 创建关注关系仓储实例
func NewRelationshipRepository(db *sqlx.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// Follow 建立关注边。表上没有唯一约束，重复插入会产生重复边，
// 与既有数据语义保持一致，由上层决定是否先查重。
func (r *relationshipRepository) Follow(ctx context.Context, followerID, followingID int64) error {
	query := `INSERT INTO relationships (follower_id, following_id) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, followerID, followingID); err != nil {
		return fmt.Errorf("failed to create relationship: %w", err)
	}
	return nil
}

// Unfollow 解除关注边，重复边会被一并删除
func (r *relationshipRepository) Unfollow(ctx context.Context, followerID, followingID int64) error {
	query := `DELETE FROM relationships WHERE follower_id = ? AND following_id = ?`

	res, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountFollowers 统计粉丝数
func (r *relationshipRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM relationships WHERE following_id = ?`

	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

// ListFollowers 粉丝列表。DISTINCT 合并可能存在的重复边
func (r *relationshipRepository) ListFollowers(ctx context.Context, userID int64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	query := `SELECT DISTINCT u.user_id, u.username, u.email,
                     COALESCE(u.password_hash, '') AS password_hash, u.created_at
              FROM users u
              JOIN relationships r ON r.follower_id = u.user_id
              WHERE r.following_id = ?
              ORDER BY u.user_id`

	if err := r.db.SelectContext(ctx, &users, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return users, nil
}
