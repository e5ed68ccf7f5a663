package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 全局配置
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Schema   SchemaConfig   `yaml:"schema"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig 数据库配置（单文件 SQLite）
type DatabaseConfig struct {
	Path         string `yaml:"path"`          // 数据库文件路径，不存在时自动创建
	BusyTimeout  int    `yaml:"busy_timeout"`  // 毫秒
	JournalMode  string `yaml:"journal_mode"`  // WAL / DELETE
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// GetDSN 获取 SQLite 连接字符串（pragma 随 DSN 下发）
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(%d)&_pragma=journal_mode(%s)&_pragma=foreign_keys(ON)",
		filepath.ToSlash(d.Path),
		d.BusyTimeout,
		d.JournalMode,
	)
}

// SchemaConfig 外部建表/种子脚本（可选，不存在不算错误）
type SchemaConfig struct {
	SchemaFile string `yaml:"schema_file"` // 建表 DDL 脚本，优先于内置 DDL 执行
	SeedFile   string `yaml:"seed_file"`   // 种子数据脚本，仅在 users 表为空时执行
}

// AuthConfig 认证配置
type AuthConfig struct {
	HashAlgorithm string `yaml:"hash_algorithm"` // sha256（兼容旧库）, bcrypt（默认）
	SessionTTL    int    `yaml:"session_ttl"`    // 分钟
}

// GetSessionTTL 获取Session过期时间
func (a *AuthConfig) GetSessionTTL() time.Duration {
	return time.Duration(a.SessionTTL) * time.Minute
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `yaml:"level"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

var globalConfig *Config

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	config.applyDefaults()
	globalConfig = &config

	return &config, nil
}

// Default 获取默认配置（调用方只需指定数据库路径）
func Default(dbPath string) *Config {
	config := &Config{
		Database: DatabaseConfig{Path: dbPath},
	}
	config.applyDefaults()
	return config
}

// applyDefaults 零值字段回填默认值
func (c *Config) applyDefaults() {
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = 5000
	}
	if c.Database.JournalMode == "" {
		c.Database.JournalMode = "WAL"
	}
	if c.Database.MaxOpenConns == 0 {
		// SQLite 单写者，连接数收紧避免 SQLITE_BUSY
		c.Database.MaxOpenConns = 1
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 1
	}
	if c.Auth.HashAlgorithm == "" {
		c.Auth.HashAlgorithm = "bcrypt"
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 120
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("配置未初始化，请先调用 Load()")
	}
	return globalConfig
}

// GetDatabase 获取数据库配置
func GetDatabase() *DatabaseConfig {
	return &Get().Database
}

// GetAuth 获取认证配置
func GetAuth() *AuthConfig {
	return &Get().Auth
}
