package repository

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound 更新/删除的目标行不存在（受影响行数为 0）
	ErrNotFound = errors.New("记录不存在")

	// ErrDuplicateEmail 邮箱唯一约束冲突。
	// 依赖存储层约束而不是先查后插，避免并发注册的竞态窗口。
	ErrDuplicateEmail = errors.New("邮箱已被注册")
)

// isConstraintError 判断是否为唯一约束冲突（modernc 驱动以文本形式返回错误）
func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "constraint")
}
