package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"social-analytics/internal/dto"
	"social-analytics/internal/repository"
	"social-analytics/pkg/hash"
	log "social-analytics/pkg/logger"
	"social-analytics/pkg/session"
)

// 认证业务错误
var (
	ErrInvalidCredentials  = errors.New("邮箱或密码错误")
	ErrDuplicateEmail      = errors.New("邮箱已被注册")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrSessionCreateFailed = errors.New("创建Session失败")
	ErrInvalidToken        = errors.New("Token无效或已过期")
)

// AuthService 认证服务接口
type AuthService interface {
	// Register 注册新用户，返回新用户的Profile
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserProfileDTO, error)

	// Login 登录，凭证正确时创建Session
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.SessionDTO, error)

	// Logout 登出，销毁Session
	Logout(ctx context.Context, req *dto.LogoutDTO) error

	// CurrentUser 根据token获取当前登录用户
	CurrentUser(ctx context.Context, token string) (*dto.UserProfileDTO, error)
}

// authService 认证服务实现
type authService struct {
	userRepo repository.UserRepository
	hasher   hash.PasswordHasher
	sessions session.Manager
}

// NewAuthService 创建认证服务实例
func NewAuthService(userRepo repository.UserRepository, hasher hash.PasswordHasher, sessions session.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Register 注册新用户
func (s *authService) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserProfileDTO, error) {
	// 1. 参数验证
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. 计算密码摘要，明文到此为止
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	// 3. 写库。邮箱查重交给唯一约束，不做先查后插
	id, err := s.userRepo.Create(ctx, req.ToModel(digest))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Warn("注册失败：邮箱已存在", zap.String("email", req.Email))
			return nil, ErrDuplicateEmail
		}
		log.Error("注册失败", zap.Error(err))
		return nil, err
	}

	// 4. 回读完整记录（拿到库生成的 created_at）
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		log.Error("回读新用户失败", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	log.Info("注册成功", zap.Int64("user_id", id), zap.String("email", req.Email))
	return dto.FromUser(user), nil
}

// Login 登录
func (s *authService) Login(ctx context.Context, req *dto.LoginDTO) (*dto.SessionDTO, error) {
	// 1. 参数验证
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. 按邮箱取用户。用户不存在与密码错误对外一律返回 ErrInvalidCredentials，
	//    不暴露邮箱是否已注册
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("登录失败：用户不存在", zap.String("email", req.Email))
			return nil, ErrInvalidCredentials
		}
		log.Error("登录查询失败", zap.Error(err))
		return nil, err
	}

	// 3. 校验密码摘要
	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		log.Warn("登录失败：密码错误", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 4. 创建Session
	token, err := s.sessions.Create(ctx, user.UserID)
	if err != nil {
		log.Error("创建Session失败", zap.Int64("user_id", user.UserID), zap.Error(err))
		return nil, ErrSessionCreateFailed
	}

	log.Info("登录成功", zap.Int64("user_id", user.UserID))
	return &dto.SessionDTO{
		Token:   token,
		Profile: dto.FromUser(user),
	}, nil
}

// Logout 登出
func (s *authService) Logout(ctx context.Context, req *dto.LogoutDTO) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.sessions.Destroy(ctx, req.Token)
}

// CurrentUser 根据token获取当前登录用户
func (s *authService) CurrentUser(ctx context.Context, token string) (*dto.UserProfileDTO, error) {
	// 1. 验证Session
	userID, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// 2. 取用户信息。Session有效但用户已被删除时视为Token失效
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.sessions.Destroy(ctx, token)
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return dto.FromUser(user), nil
}
