package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"social-analytics/internal/model"
)

// CommentRepository 评论仓储接口
type CommentRepository interface {
	// Create 发表评论，返回自增ID
	Create(ctx context.Context, comment *model.Comment) (int64, error)

	// Delete 删除评论
	Delete(ctx context.Context, id int64) error

	// ListByPost 某帖子下的评论列表，按创建时间正序
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}

// commentRepository 评论仓储实现
type commentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository 创建评论仓储实例
func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 发表评论
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) (int64, error) {
	query := `INSERT INTO comments (post_id, user_id, content, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, comment.PostID, comment.UserID, comment.Content, comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// Delete 删除评论
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
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

// ListByPost 某帖子下的评论列表
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	query := `SELECT comment_id, post_id, user_id, content, created_at FROM comments
              WHERE post_id = ? ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list comments by post: %w", err)
	}
	return comments, nil
}
