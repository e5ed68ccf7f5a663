package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"social-analytics/internal/dto"
	"social-analytics/internal/repository"
	log "social-analytics/pkg/logger"
)

// 关注业务错误
var ErrRelationshipNotFound = errors.New("关注关系不存在")

// RelationshipService 关注服务接口
type RelationshipService interface {
	// Follow 关注，双方用户必须都存在
	Follow(ctx context.Context, req *dto.FollowDTO) error

	// Unfollow 取关
	Unfollow(ctx context.Context, req *dto.FollowDTO) error

	// CountFollowers 某用户的粉丝数
	CountFollowers(ctx context.Context, userID int64) (int64, error)

	// ListFollowers 某用户的粉丝列表
	ListFollowers(ctx context.Context, userID int64) ([]*dto.UserProfileDTO, error)
}

// relationshipService 关注服务实现
type relationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
}

// NewRelationshipService 创建关注服务实例
func NewRelationshipService(relRepo repository.RelationshipRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{
		relRepo:  relRepo,
		userRepo: userRepo,
	}
}

// Follow 关注
func (s *relationshipService) Follow(ctx context.Context, req *dto.FollowDTO) error {
	// 1. 参数验证，关注自己在这里被拒绝
	if err := req.Validate(); err != nil {
		return err
	}

	// 2. 两端用户都必须存在
	for _, id := range []int64{req.FollowerID, req.FollowingID} {
		if _, err := s.userRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
	}

	// 3. 写库
	if err := s.relRepo.Follow(ctx, req.FollowerID, req.FollowingID); err != nil {
		log.Error("关注失败",
			zap.Int64("follower_id", req.FollowerID),
			zap.Int64("following_id", req.FollowingID),
			zap.Error(err))
		return err
	}

	log.Info("关注成功",
		zap.Int64("follower_id", req.FollowerID),
		zap.Int64("following_id", req.FollowingID))
	return nil
}

// Unfollow 取关
func (s *relationshipService) Unfollow(ctx context.Context, req *dto.FollowDTO) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.relRepo.Unfollow(ctx, req.FollowerID, req.FollowingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRelationshipNotFound
		}
		log.Error("取关失败",
			zap.Int64("follower_id", req.FollowerID),
			zap.Int64("following_id", req.FollowingID),
			zap.Error(err))
		return err
	}

	log.Info("取关成功",
		zap.Int64("follower_id", req.FollowerID),
		zap.Int64("following_id", req.FollowingID))
	return nil
}

// CountFollowers 某用户的粉丝数
func (s *relationshipService) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	return s.relRepo.CountFollowers(ctx, userID)
}

// ListFollowers 某用户的粉丝列表
func (s *relationshipService) ListFollowers(ctx context.Context, userID int64) ([]*dto.UserProfileDTO, error) {
	users, err := s.relRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserProfileDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}
