package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"social-analytics/internal/dto"
	"social-analytics/internal/repository"
	log "social-analytics/pkg/logger"
)

// 评论业务错误
var ErrCommentNotFound = errors.New("评论不存在")

// CommentService 评论服务接口
type CommentService interface {
	// Create 发表评论，目标帖子必须已存在
	Create(ctx context.Context, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)

	// Delete 删除评论
	Delete(ctx context.Context, commentID int64) error

	// ListByPost 某帖子下的评论
	ListByPost(ctx context.Context, postID int64) ([]*dto.CommentDTO, error)
}

// commentService 评论服务实现
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService 创建评论服务实例
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create 发表评论
func (s *commentService) Create(ctx context.Context, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	// 1. 参数验证
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. 评论必须挂在已存在的帖子下
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// 3. 评论人必须存在
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 4. 写库
	id, err := s.commentRepo.Create(ctx, req.ToModel())
	if err != nil {
		log.Error("发表评论失败", zap.Int64("post_id", req.PostID), zap.Error(err))
		return nil, err
	}

	log.Info("发表评论成功", zap.Int64("comment_id", id), zap.Int64("post_id", req.PostID))
	m := req.ToModel()
	m.CommentID = id
	return dto.FromComment(m), nil
}

// Delete 删除评论
func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		log.Error("删除评论失败", zap.Int64("comment_id", commentID), zap.Error(err))
		return err
	}

	log.Info("删除评论成功", zap.Int64("comment_id", commentID))
	return nil
}

// ListByPost 某帖子下的评论
func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.FromComment(c))
	}
	return out, nil
}
