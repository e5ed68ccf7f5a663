package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"social-analytics/internal/dto"
	"social-analytics/internal/repository"
	"social-analytics/pkg/hash"
	log "social-analytics/pkg/logger"
)

// UserService 用户服务接口
type UserService interface {
	// Get 查询单个用户
	Get(ctx context.Context, userID int64) (*dto.UserProfileDTO, error)

	// Update 更新用户资料，Password 为空时不改密码
	Update(ctx context.Context, req *dto.UpdateUserDTO) error

	// Delete 删除用户及其全部帖子、评论和关注关系
	Delete(ctx context.Context, userID int64) error

	// List 用户列表，orderBy 支持 "user_id" / "created_at"
	List(ctx context.Context, orderBy string) ([]*dto.UserProfileDTO, error)
}

// userService 用户服务实现
type userService struct {
	userRepo repository.UserRepository
	hasher   hash.PasswordHasher
}

// NewUserService 创建用户服务实例
func NewUserService(userRepo repository.UserRepository, hasher hash.PasswordHasher) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Get 查询单个用户
func (s *userService) Get(ctx context.Context, userID int64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.FromUser(user), nil
}

// Update 更新用户资料
func (s *userService) Update(ctx context.Context, req *dto.UpdateUserDTO) error {
	// 1. 参数验证
	if err := req.Validate(); err != nil {
		return err
	}

	// 2. 有新密码才重新计算摘要，空密码保留库中已有摘要
	digest := ""
	if req.Password != "" {
		var err error
		digest, err = s.hasher.Hash(req.Password)
		if err != nil {
			log.Error("密码哈希失败", zap.Error(err))
			return err
		}
	}

	// 3. 写库
	err := s.userRepo.Update(ctx, req.UserID, req.Username, req.Email, digest)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		log.Error("更新用户失败", zap.Int64("user_id", req.UserID), zap.Error(err))
		return err
	}

	log.Info("更新用户成功", zap.Int64("user_id", req.UserID))
	return nil
}

// Delete 删除用户，级联由仓储层在单事务内完成
func (s *userService) Delete(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("删除用户失败", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}

	log.Info("删除用户成功", zap.Int64("user_id", userID))
	return nil
}

// List 用户列表
func (s *userService) List(ctx context.Context, orderBy string) ([]*dto.UserProfileDTO, error) {
	users, err := s.userRepo.List(ctx, orderBy)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserProfileDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}
