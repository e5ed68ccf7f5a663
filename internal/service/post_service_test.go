package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"social-analytics/internal/dto"
	"social-analytics/internal/model"
	"social-analytics/internal/repository"
)

// TestCreatePost_Success 发帖成功
func TestCreatePost_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{UserID: 1}, nil)
	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.UserID == 1 && p.CreatedAt == "2024-03-15 08:30:00"
	})).Return(int64(10), nil)
	postRepo.On("GetByID", mock.Anything, int64(10)).Return(&model.Post{
		PostID:    10,
		UserID:    1,
		Content:   "hello",
		Likes:     3,
		CreatedAt: "2024-03-15 08:30:00",
	}, nil)

	out, err := svc.Create(context.Background(), &dto.CreatePostDTO{
		UserID:  1,
		Content: "hello",
		Likes:   3,
		Date:    "2024-03-15",
		Time:    "08:30:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.PostID)
	postRepo.AssertExpectations(t)
}

// TestCreatePost_InvalidTime 非法时间必须在写库前被拒绝
func TestCreatePost_InvalidTime(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	_, err := svc.Create(context.Background(), &dto.CreatePostDTO{
		UserID:  1,
		Content: "hello",
		Date:    "2024-03-15",
		Time:    "25:61:00",
	})

	assert.ErrorIs(t, err, dto.ErrTimeInvalid)
	postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

// TestCreatePost_AuthorMissing 作者不存在不允许发帖
func TestCreatePost_AuthorMissing(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	_, err := svc.Create(context.Background(), &dto.CreatePostDTO{
		UserID:  99,
		Content: "orphan",
		Date:    "2024-03-15",
		Time:    "08:30:00",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
	postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreatePost_NegativeLikes 负数点赞钳为0
func TestCreatePost_NegativeLikes(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{UserID: 1}, nil)
	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.Likes == 0
	})).Return(int64(11), nil)
	postRepo.On("GetByID", mock.Anything, int64(11)).Return(&model.Post{PostID: 11}, nil)

	_, err := svc.Create(context.Background(), &dto.CreatePostDTO{
		UserID:  1,
		Content: "hello",
		Likes:   -5,
		Date:    "2024-03-15",
		Time:    "08:30:00",
	})

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
}

// TestUpdatePost_NotFound 编辑不存在的帖子
func TestUpdatePost_NotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	postRepo.On("Update", mock.Anything, int64(404), "x", int64(0)).Return(repository.ErrNotFound)

	err := svc.Update(context.Background(), &dto.UpdatePostDTO{PostID: 404, Content: "x"})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

// TestDeletePost_NotFound 删除不存在的帖子
func TestDeletePost_NotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	postRepo.On("Delete", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrPostNotFound)
}
