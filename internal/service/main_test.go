package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"social-analytics/internal/model"
	"social-analytics/pkg/logger"
)

// ============================================================================
// 测试初始化
// ============================================================================

// TestMain 在所有测试运行前初始化
func TestMain(m *testing.M) {
	// 初始化日志（测试环境使用 Fatal 级别，只显示严重错误）
	cfg := &logger.Config{
		Level:  "fatal",
		Output: "stdout",
	}
	if err := logger.Init(cfg); err != nil {
		panic("初始化日志失败: " + err.Error())
	}

	m.Run()
}

// ============================================================================
// Mock 定义
// ============================================================================

// MockUserRepository 模拟 UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, username, email, passwordHash string) error {
	args := m.Called(ctx, id, username, email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, orderBy string) ([]*model.User, error) {
	args := m.Called(ctx, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

// MockPostRepository 模拟 PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id int64, content string, likes int64) error {
	args := m.Called(ctx, id, content, likes)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, orderBy string) ([]*model.Post, error) {
	args := m.Called(ctx, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

// MockCommentRepository 模拟 CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

// MockRelationshipRepository 模拟 RelationshipRepository
type MockRelationshipRepository struct {
	mock.Mock
}

func (m *MockRelationshipRepository) Follow(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) Unfollow(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRelationshipRepository) ListFollowers(ctx context.Context, userID int64) ([]*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

// MockAnalyticsRepository 模拟 AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) MostActiveUsers(ctx context.Context, limit int) ([]*model.UserActivity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserActivity), args.Error(1)
}

func (m *MockAnalyticsRepository) TopInfluencers(ctx context.Context, limit int) ([]*model.Influencer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Influencer), args.Error(1)
}

func (m *MockAnalyticsRepository) TrendingPosts(ctx context.Context, limit int) ([]*model.TrendingPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TrendingPost), args.Error(1)
}

func (m *MockAnalyticsRepository) CreateIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSessionManager 模拟 session.Manager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Validate(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionManager) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionManager) Refresh(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
