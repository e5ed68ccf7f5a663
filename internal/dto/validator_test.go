package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRegisterValidate 注册参数校验
func TestRegisterValidate(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterDTO
		want error
	}{
		{"合法", RegisterDTO{Username: "alice", Email: "a@b.com", Password: "secret123"}, nil},
		{"用户名空白", RegisterDTO{Username: "   ", Email: "a@b.com", Password: "secret123"}, ErrUsernameEmpty},
		{"邮箱为空", RegisterDTO{Username: "alice", Password: "secret123"}, ErrEmailEmpty},
		{"邮箱没有@", RegisterDTO{Username: "alice", Email: "ab.com", Password: "secret123"}, ErrEmailInvalid},
		{"邮箱@开头", RegisterDTO{Username: "alice", Email: "@b.com", Password: "secret123"}, ErrEmailInvalid},
		{"邮箱@结尾", RegisterDTO{Username: "alice", Email: "a@", Password: "secret123"}, ErrEmailInvalid},
		{"密码为空", RegisterDTO{Username: "alice", Email: "a@b.com"}, ErrPasswordEmpty},
		{"密码5位", RegisterDTO{Username: "alice", Email: "a@b.com", Password: "12345"}, ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

// TestCreatePostValidate 发帖参数校验，时间必须是严格的 HH:MM:SS
func TestCreatePostValidate(t *testing.T) {
	valid := CreatePostDTO{UserID: 1, Content: "hello", Date: "2024-03-15", Time: "08:30:00"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		mut  func(d *CreatePostDTO)
		want error
	}{
		{"用户ID为0", func(d *CreatePostDTO) { d.UserID = 0 }, ErrUserIDInvalid},
		{"内容空白", func(d *CreatePostDTO) { d.Content = "  " }, ErrContentEmpty},
		{"日期格式错误", func(d *CreatePostDTO) { d.Date = "15/03/2024" }, ErrDateInvalid},
		{"小时越界", func(d *CreatePostDTO) { d.Time = "25:61:00" }, ErrTimeInvalid},
		{"分钟越界", func(d *CreatePostDTO) { d.Time = "10:61:00" }, ErrTimeInvalid},
		{"缺少秒", func(d *CreatePostDTO) { d.Time = "10:30" }, ErrTimeInvalid},
		{"非数字", func(d *CreatePostDTO) { d.Time = "aa:bb:cc" }, ErrTimeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mut(&d)
			assert.ErrorIs(t, d.Validate(), tt.want)
		})
	}
}

// TestCreatedAtFormat 校验通过后拼出落库格式
func TestCreatedAtFormat(t *testing.T) {
	d := CreatePostDTO{UserID: 1, Content: "x", Date: "2024-03-15", Time: "08:30:00"}
	assert.NoError(t, d.Validate())
	assert.Equal(t, "2024-03-15 08:30:00", d.CreatedAt())
}

// TestClampedLikes 负数点赞钳为0
func TestClampedLikes(t *testing.T) {
	assert.Equal(t, int64(0), (&CreatePostDTO{Likes: -3}).ClampedLikes())
	assert.Equal(t, int64(7), (&CreatePostDTO{Likes: 7}).ClampedLikes())
	assert.Equal(t, int64(0), (&UpdatePostDTO{Likes: -1}).ClampedLikes())
}

// TestUpdateUserValidate 空密码合法，短密码非法
func TestUpdateUserValidate(t *testing.T) {
	base := UpdateUserDTO{UserID: 1, Username: "alice", Email: "a@b.com"}
	assert.NoError(t, base.Validate())

	withShort := base
	withShort.Password = "123"
	assert.ErrorIs(t, withShort.Validate(), ErrPasswordTooShort)

	withLong := base
	withLong.Password = "ok-password"
	assert.NoError(t, withLong.Validate())
}

// TestFollowValidate 自关注被拒绝
func TestFollowValidate(t *testing.T) {
	assert.NoError(t, (&FollowDTO{FollowerID: 1, FollowingID: 2}).Validate())
	assert.ErrorIs(t, (&FollowDTO{FollowerID: 1, FollowingID: 1}).Validate(), ErrSelfFollow)
	assert.ErrorIs(t, (&FollowDTO{FollowerID: 0, FollowingID: 2}).Validate(), ErrUserIDInvalid)
}

// TestCreateCommentValidate 评论校验
func TestCreateCommentValidate(t *testing.T) {
	valid := CreateCommentDTO{PostID: 1, UserID: 1, Content: "nice", Date: "2024-03-15", Time: "09:00:00"}
	assert.NoError(t, valid.Validate())

	noPost := valid
	noPost.PostID = 0
	assert.ErrorIs(t, noPost.Validate(), ErrPostIDInvalid)

	badTime := valid
	badTime.Time = "24:00:00"
	assert.ErrorIs(t, badTime.Validate(), ErrTimeInvalid)
}
