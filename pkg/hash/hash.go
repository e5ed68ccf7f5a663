package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// 支持的哈希算法名
const (
	AlgorithmSHA256 = "sha256"
	AlgorithmBcrypt = "bcrypt"
)

// PasswordHasher 密码摘要接口。
// 注册与登录必须使用同一实现，Hash 的输出是唯一落库形式，明文永不存储。
type PasswordHasher interface {
	// Hash 计算密码摘要
	Hash(password string) (string, error)

	// Verify 校验密码与已存储摘要是否匹配
	Verify(stored, password string) bool
}

// NewHasher 根据配置的算法名创建哈希器
func NewHasher(algorithm string) (PasswordHasher, error) {
	switch algorithm {
	case AlgorithmSHA256:
		return &SHA256Hasher{}, nil
	case AlgorithmBcrypt, "":
		return &BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("不支持的哈希算法: %s", algorithm)
	}
}

// SHA256Hasher 无盐 SHA-256 摘要，输出 64 位十六进制字符串。
// 纯函数、确定性输出，与旧库存量数据兼容。
// 无盐且可离线爆破，新库应使用 bcrypt。
type SHA256Hasher struct{}

// Hash 计算 SHA-256 十六进制摘要
func (h *SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify 摘要精确比对
func (h *SHA256Hasher) Verify(stored, password string) bool {
	digest, _ := h.Hash(password)
	return stored == digest
}

// BcryptHasher 加盐慢哈希，新库默认算法
type BcryptHasher struct {
	Cost int
}

// Hash 计算 bcrypt 哈希（每次输出不同，盐随机）
func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("密码哈希失败: %w", err)
	}
	return string(out), nil
}

// Verify 校验密码
func (h *BcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
