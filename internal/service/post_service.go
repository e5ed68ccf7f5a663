package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"social-analytics/internal/dto"
	"social-analytics/internal/repository"
	log "social-analytics/pkg/logger"
)

// 帖子业务错误
var ErrPostNotFound = errors.New("帖子不存在")

// PostService 帖子服务接口
type PostService interface {
	// Create 发布帖子，作者必须已存在
	Create(ctx context.Context, req *dto.CreatePostDTO) (*dto.PostDTO, error)

	// Update 编辑帖子内容与点赞数
	Update(ctx context.Context, req *dto.UpdatePostDTO) error

	// Delete 删除帖子及其评论
	Delete(ctx context.Context, postID int64) error

	// Get 查询单个帖子
	Get(ctx context.Context, postID int64) (*dto.PostDTO, error)

	// List 全部帖子，orderBy 支持 "post_id" / "created_at"
	List(ctx context.Context, orderBy string) ([]*dto.PostDTO, error)

	// ListByUser 某用户的帖子
	ListByUser(ctx context.Context, userID int64) ([]*dto.PostDTO, error)
}

// postService 帖子服务实现
type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService 创建帖子服务实例
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create 发布帖子
func (s *postService) Create(ctx context.Context, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	// 1. 参数验证，非法的日期/时间在这里被拒绝
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. 作者必须存在，不允许产生孤儿帖子
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 3. 写库
	id, err := s.postRepo.Create(ctx, req.ToModel())
	if err != nil {
		log.Error("发布帖子失败", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info("发布帖子成功", zap.Int64("post_id", id), zap.Int64("user_id", req.UserID))
	return dto.FromPost(post), nil
}

// Update 编辑帖子
func (s *postService) Update(ctx context.Context, req *dto.UpdatePostDTO) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.postRepo.Update(ctx, req.PostID, req.Content, req.ClampedLikes())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		log.Error("编辑帖子失败", zap.Int64("post_id", req.PostID), zap.Error(err))
		return err
	}

	log.Info("编辑帖子成功", zap.Int64("post_id", req.PostID))
	return nil
}

// Delete 删除帖子
func (s *postService) Delete(ctx context.Context, postID int64) error {
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		log.Error("删除帖子失败", zap.Int64("post_id", postID), zap.Error(err))
		return err
	}

	log.Info("删除帖子成功", zap.Int64("post_id", postID))
	return nil
}

// Get 查询单个帖子
func (s *postService) Get(ctx context.Context, postID int64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return dto.FromPost(post), nil
}

// List 全部帖子
func (s *postService) List(ctx context.Context, orderBy string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.List(ctx, orderBy)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.FromPost(p))
	}
	return out, nil
}

// ListByUser 某用户的帖子
func (s *postService) ListByUser(ctx context.Context, userID int64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.FromPost(p))
	}
	return out, nil
}
