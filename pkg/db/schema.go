package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"social-analytics/config"
	log "social-analytics/pkg/logger"
)

// 内置建表 DDL。全部使用 IF NOT EXISTS，多实例并发启动时可安全重复执行。
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT,
    created_at TEXT DEFAULT (datetime('now'))
);`

	createPosts = `CREATE TABLE IF NOT EXISTS posts (
    post_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER,
    content TEXT NOT NULL,
    likes INTEGER DEFAULT 0,
    created_at TEXT
);`

	createComments = `CREATE TABLE IF NOT EXISTS comments (
    comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    post_id INTEGER,
    user_id INTEGER,
    content TEXT,
    created_at TEXT
);`

	createRelationships = `CREATE TABLE IF NOT EXISTS relationships (
    follower_id INTEGER,
    following_id INTEGER
);`
)

// schemaDDL 按依赖顺序列出所有建表语句
var schemaDDL = []string{
	createUsers,
	createPosts,
	createComments,
	createRelationships,
}

// indexDDL 报表查询扫描的外键列和过滤列的索引
var indexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_posts_user ON posts(user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);`,
	`CREATE INDEX IF NOT EXISTS idx_users_created ON users(created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_relationships_following ON relationships(following_id);`,
}

// EnsureSchema 幂等建表：每次启动执行一次。
// 外部脚本（如有）先执行，内置 DDL 兜底，最后做加列迁移和种子数据。
// 所有步骤只做加法，不会破坏已有数据。
func EnsureSchema(db *sqlx.DB, cfg *config.Config) error {
	// 1. 外部建表脚本优先，缺失不算错误
	if cfg.Schema.SchemaFile != "" {
		if err := execScriptFile(db, cfg.Schema.SchemaFile); err != nil {
			return fmt.Errorf("执行外部建表脚本失败: %w", err)
		}
	}

	// 2. 内置 DDL 兜底
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("执行建表语句失败: %w", err)
		}
	}

	// 3. 旧库迁移：保证 users 表存在 password_hash 列
	if err := ensurePasswordColumn(db); err != nil {
		return err
	}

	// 4. users 表为空时加载种子数据
	if cfg.Schema.SeedFile != "" {
		var count int
		if err := db.Get(&count, `SELECT COUNT(*) FROM users`); err == nil && count == 0 {
			if err := execScriptFile(db, cfg.Schema.SeedFile); err != nil {
				return fmt.Errorf("执行种子数据脚本失败: %w", err)
			}
		}
	}

	log.Info("数据库表结构检查完成")
	return nil
}

// ensurePasswordColumn 通过 PRAGMA table_info 检查列是否存在，缺失时加列。
// 并发启动时两个实例可能同时 ALTER，重复加列错误按成功处理。
func ensurePasswordColumn(db *sqlx.DB) error {
	rows, err := db.Query(`PRAGMA table_info(users)`)
	if err != nil {
		return fmt.Errorf("读取 users 表结构失败: %w", err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("读取 users 表结构失败: %w", err)
		}
		if name == "password_hash" {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("读取 users 表结构失败: %w", err)
	}
	if found {
		return nil
	}

	if _, err := db.Exec(`ALTER TABLE users ADD COLUMN password_hash TEXT;`); err != nil {
		if isDuplicateColumnError(err) {
			return nil
		}
		return fmt.Errorf("users 表加列失败: %w", err)
	}
	log.Info("users 表已补充 password_hash 列")
	return nil
}

// CreateIndexes 创建报表查询所需索引，可重复调用，空表时也安全
func CreateIndexes(db *sqlx.DB) error {
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("创建索引失败: %w", err)
		}
	}
	log.Info("索引创建完成", zap.Int("count", len(indexDDL)))
	return nil
}

// execScriptFile 逐条执行外部 SQL 脚本，文件不存在直接跳过
func execScriptFile(db *sqlx.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, stmt := range splitStatements(string(data)) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("执行语句 %q 失败: %w", stmt, err)
		}
	}
	log.Info("外部 SQL 脚本执行完成", zap.String("file", path))
	return nil
}

// splitStatements 按分号切分 SQL 脚本。
// 脚本来源是简单的 DDL/INSERT 文件，不处理字符串字面量内的分号。
func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// isDuplicateColumnError 判断是否为重复加列错误
func isDuplicateColumnError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
