package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"social-analytics/internal/model"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	// Create 创建用户，返回自增ID；邮箱冲突返回 ErrDuplicateEmail
	Create(ctx context.Context, user *model.User) (int64, error)

	// GetByID 根据ID查询用户
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByEmail 根据邮箱查询用户（用于登录）
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update 更新用户名与邮箱；passwordHash 为空则保留原摘要
	Update(ctx context.Context, id int64, username, email, passwordHash string) error

	// Delete 删除用户并级联清理其帖子、评论和关注边（单事务）
	Delete(ctx context.Context, id int64) error

	// List 用户列表，orderBy 支持 "user_id" / "created_at"（均倒序）
	List(ctx context.Context, orderBy string) ([]*model.User, error)
}

// userRepository 用户仓储实现
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// userColumns 旧库的 password_hash 可能为 NULL，读出来统一成空串
const userColumns = `user_id, username, email, COALESCE(password_hash, '') AS password_hash, created_at`

// Create 创建用户，created_at 取当前时间
func (r *userRepository) Create(ctx context.Context, user *model.User) (int64, error) {
	query := `INSERT INTO users (username, email, password_hash, created_at)
              VALUES (?, ?, ?, datetime('now'))`

	res, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isConstraintError(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// GetByID 根据ID查询用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail 根据邮箱查询用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Update 更新用户资料，passwordHash 为空时不触碰已存储的摘要
func (r *userRepository) Update(ctx context.Context, id int64, username, email, passwordHash string) error {
	var (
		res sql.Result
		err error
	)

	if passwordHash != "" {
		query := `UPDATE users SET username = ?, email = ?, password_hash = ? WHERE user_id = ?`
		res, err = r.db.ExecContext(ctx, query, username, email, passwordHash, id)
	} else {
		query := `UPDATE users SET username = ?, email = ? WHERE user_id = ?`
		res, err = r.db.ExecContext(ctx, query, username, email, id)
	}
	if err != nil {
		if isConstraintError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
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

// Delete 删除用户。级联步骤在同一事务内，要么全部生效要么全部回滚：
// 帖子下的评论（含他人评论）→ 本人发表的评论 → 帖子 → 关注边（两个方向）→ 用户行。
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := []struct {
		query string
		args  []any
	}{
		{`DELETE FROM comments WHERE post_id IN (SELECT post_id FROM posts WHERE user_id = ?)`, []any{id}},
		{`DELETE FROM comments WHERE user_id = ?`, []any{id}},
		{`DELETE FROM posts WHERE user_id = ?`, []any{id}},
		{`DELETE FROM relationships WHERE follower_id = ? OR following_id = ?`, []any{id, id}},
	}
	for _, s := range steps {
		if _, err := tx.ExecContext(ctx, s.query, s.args...); err != nil {
			return fmt.Errorf("failed to cascade delete: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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

// List 用户列表，无匹配行时返回空切片
func (r *userRepository) List(ctx context.Context, orderBy string) ([]*model.User, error) {
	// orderBy 只允许白名单值，不拼接调用方输入
	order := "user_id DESC"
	if orderBy == "created_at" {
		order = "created_at DESC"
	}

	users := make([]*model.User, 0)
	query := `SELECT ` + userColumns + ` FROM users ORDER BY ` + order

	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
