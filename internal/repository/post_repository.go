package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"social-analytics/internal/model"
)

// PostRepository 帖子仓储接口
type PostRepository interface {
	// Create 发布帖子，返回自增ID
	Create(ctx context.Context, post *model.Post) (int64, error)

	// GetByID 根据ID查询帖子
	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// Update 更新帖子内容与点赞数
	Update(ctx context.Context, id int64, content string, likes int64) error

	// Delete 删除帖子及其全部评论（单事务）
	Delete(ctx context.Context, id int64) error

	// List 帖子列表，orderBy 支持 "post_id" / "created_at"（均倒序）
	List(ctx context.Context, orderBy string) ([]*model.Post, error)

	// ListByUser 某用户的帖子列表，按创建时间倒序
	ListByUser(ctx context.Context, userID int64) ([]*model.Post, error)
}

// postRepository 帖子仓储实现
type postRepository struct {
	db *sqlx.DB
}

// NewPostRepository 创建帖子仓储实例
func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 发布帖子，created_at 由调用方给定（支持补录历史数据）
func (r *postRepository) Create(ctx context.Context, post *model.Post) (int64, error) {
	query := `INSERT INTO posts (user_id, content, likes, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, post.UserID, post.Content, post.Likes, post.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// GetByID 根据ID查询帖子
func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	query := `SELECT post_id, user_id, content, likes, created_at FROM posts WHERE post_id = ?`

	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return &post, nil
}

// Update 更新帖子内容与点赞数
func (r *postRepository) Update(ctx context.Context, id int64, content string, likes int64) error {
	query := `UPDATE posts SET content = ?, likes = ? WHERE post_id = ?`

	res, err := r.db.ExecContext(ctx, query, content, likes, id)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
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

// Delete 删除帖子，先清评论再删帖子行，两步同一事务
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List 帖子列表，无匹配行时返回空切片
func (r *postRepository) List(ctx context.Context, orderBy string) ([]*model.Post, error) {
	// orderBy 只允许白名单值，不拼接调用方输入
	order := "created_at DESC"
	if orderBy == "post_id" {
		order = "post_id DESC"
	}

	posts := make([]*model.Post, 0)
	query := `SELECT post_id, user_id, content, likes, created_at FROM posts ORDER BY ` + order

	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListByUser 某用户的帖子列表
func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	query := `SELECT post_id, user_id, content, likes, created_at FROM posts
              WHERE user_id = ? ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &posts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}
	return posts, nil
}
