package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"social-analytics/internal/dto"
	"social-analytics/internal/repository"
	log "social-analytics/pkg/logger"
)

// 报表的固定取数规模
const (
	// TopUsersLimit 活跃度/影响力榜单的行数
	TopUsersLimit = 10

	// TrendingLimit 热门帖子榜单的行数
	TrendingLimit = 5
)

// AnalyticsService 报表服务接口。
// 每个查询额外返回本次执行耗时，供调用方对比建索引前后的差异。
type AnalyticsService interface {
	// MostActiveUsers 最活跃用户（帖子数 + 评论数）
	MostActiveUsers(ctx context.Context) ([]*dto.UserActivityDTO, time.Duration, error)

	// TopInfluencers 头部影响力用户（粉丝数）
	TopInfluencers(ctx context.Context) ([]*dto.InfluencerDTO, time.Duration, error)

	// TrendingPosts 热门帖子（点赞数 + 评论数）
	TrendingPosts(ctx context.Context) ([]*dto.TrendingPostDTO, time.Duration, error)

	// CreateIndexes 建立报表覆盖索引，幂等
	CreateIndexes(ctx context.Context) error
}

// analyticsService 报表服务实现
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService 创建报表服务实例
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

// MostActiveUsers 最活跃用户
func (s *analyticsService) MostActiveUsers(ctx context.Context) ([]*dto.UserActivityDTO, time.Duration, error) {
	start := time.Now()
	rows, err := s.analyticsRepo.MostActiveUsers(ctx, TopUsersLimit)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("查询最活跃用户失败", zap.Error(err))
		return nil, elapsed, err
	}

	out := make([]*dto.UserActivityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromUserActivity(r))
	}

	log.Info("查询最活跃用户完成", zap.Int("rows", len(out)), zap.Duration("elapsed", elapsed))
	return out, elapsed, nil
}

// TopInfluencers 头部影响力用户
func (s *analyticsService) TopInfluencers(ctx context.Context) ([]*dto.InfluencerDTO, time.Duration, error) {
	start := time.Now()
	rows, err := s.analyticsRepo.TopInfluencers(ctx, TopUsersLimit)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("查询影响力用户失败", zap.Error(err))
		return nil, elapsed, err
	}

	out := make([]*dto.InfluencerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromInfluencer(r))
	}

	log.Info("查询影响力用户完成", zap.Int("rows", len(out)), zap.Duration("elapsed", elapsed))
	return out, elapsed, nil
}

// TrendingPosts 热门帖子
func (s *analyticsService) TrendingPosts(ctx context.Context) ([]*dto.TrendingPostDTO, time.Duration, error) {
	start := time.Now()
	rows, err := s.analyticsRepo.TrendingPosts(ctx, TrendingLimit)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("查询热门帖子失败", zap.Error(err))
		return nil, elapsed, err
	}

	out := make([]*dto.TrendingPostDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromTrendingPost(r))
	}

	log.Info("查询热门帖子完成", zap.Int("rows", len(out)), zap.Duration("elapsed", elapsed))
	return out, elapsed, nil
}

// CreateIndexes 建立报表覆盖索引
func (s *analyticsService) CreateIndexes(ctx context.Context) error {
	start := time.Now()
	if err := s.analyticsRepo.CreateIndexes(ctx); err != nil {
		log.Error("创建索引失败", zap.Error(err))
		return err
	}

	log.Info("创建索引完成", zap.Duration("elapsed", time.Since(start)))
	return nil
}
