package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	log "social-analytics/pkg/logger"
)

// DefaultTTL Session默认过期时间（2小时）
const DefaultTTL = 2 * time.Hour

// ErrSessionNotFound Session无效或已过期
var ErrSessionNotFound = errors.New("Session无效或已过期")

// Manager Session管理器接口。
// 登录态不再是全局变量：登录成功时创建，登出时销毁，调用方持有 token。
type Manager interface {
	// Create 创建Session（生成token并记录归属用户）
	Create(ctx context.Context, userID int64) (string, error)

	// Validate 验证Session（根据token获取userID）
	Validate(ctx context.Context, token string) (int64, error)

	// Destroy 销毁Session（登出时删除token）
	Destroy(ctx context.Context, token string) error

	// Refresh 刷新Session（延长有效期）
	Refresh(ctx context.Context, token string) error
}

type entry struct {
	userID    int64
	expiresAt time.Time
}

// memoryManager 进程内Session管理器实现
type memoryManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
}

// NewManager 创建Session管理器，ttl 为 0 时使用默认值
func NewManager(ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryManager{
		ttl:      ttl,
		sessions: make(map[string]entry),
	}
}

// Create 创建Session
func (m *memoryManager) Create(_ context.Context, userID int64) (string, error) {
	token := uuid.New().String()

	m.mu.Lock()
	m.sessions[token] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	log.Info("创建Session成功", zap.String("token", token), zap.Int64("user_id", userID))
	return token, nil
}

// Validate 验证Session，过期的Session顺手清理
func (m *memoryManager) Validate(_ context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(m.sessions, token)
		return 0, ErrSessionNotFound
	}
	return e.userID, nil
}

// Destroy 销毁Session，token 不存在时视为已销毁
func (m *memoryManager) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()

	log.Info("销毁Session成功", zap.String("token", token))
	return nil
}

// Refresh 刷新Session有效期
func (m *memoryManager) Refresh(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok || time.Now().After(e.expiresAt) {
		delete(m.sessions, token)
		return ErrSessionNotFound
	}
	e.expiresAt = time.Now().Add(m.ttl)
	m.sessions[token] = e
	return nil
}
