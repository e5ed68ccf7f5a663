package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动

	"social-analytics/config"
	log "social-analytics/pkg/logger"
)

func init() {
	// modernc 驱动注册名为 "sqlite"，sqlx 默认不认识，需要声明占位符风格
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// InitDB 打开（或创建）本地 SQLite 数据库文件
func InitDB(cfg *config.Config) (*sqlx.DB, error) {
	log.Info("开始初始化数据库连接",
		zap.String("path", cfg.Database.Path),
		zap.String("journal_mode", cfg.Database.JournalMode),
	)

	// 确保父目录存在；存储介质不可写是致命错误
	if dir := filepath.Dir(cfg.Database.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error("数据库目录不可写", zap.Error(err), zap.String("dir", dir))
			return nil, fmt.Errorf("数据库目录不可写: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", cfg.Database.GetDSN())
	if err != nil {
		log.Error("打开数据库失败", zap.Error(err), zap.String("path", cfg.Database.Path))
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	// SQLite 单写者，连接数收紧避免 SQLITE_BUSY
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		log.Error("数据库连接测试失败", zap.Error(err))
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("数据库连接成功", zap.String("path", cfg.Database.Path))
	return db, nil
}
