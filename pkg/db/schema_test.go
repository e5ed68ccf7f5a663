package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-analytics/config"
	"social-analytics/pkg/logger"
)

// TestMain 在所有测试运行前初始化
func TestMain(m *testing.M) {
	cfg := &logger.Config{
		Level:  "fatal",
		Output: "stdout",
	}
	if err := logger.Init(cfg); err != nil {
		panic("初始化日志失败: " + err.Error())
	}

	m.Run()
}

func openTestDB(t *testing.T) (*sqlx.DB, *config.Config) {
	t.Helper()

	cfg := config.Default(filepath.Join(t.TempDir(), "test.db"))
	conn, err := InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, cfg
}

// TestEnsureSchema_Idempotent 建表可重复执行
func TestEnsureSchema_Idempotent(t *testing.T) {
	conn, cfg := openTestDB(t)

	require.NoError(t, EnsureSchema(conn, cfg))
	require.NoError(t, EnsureSchema(conn, cfg))

	var tables int
	require.NoError(t, conn.Get(&tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'
         AND name IN ('users', 'posts', 'comments', 'relationships')`))
	assert.Equal(t, 4, tables)
}

// TestEnsureSchema_LegacyUsersTable 旧库缺 password_hash 列时自动补列
func TestEnsureSchema_LegacyUsersTable(t *testing.T) {
	conn, cfg := openTestDB(t)

	// 先按旧结构建 users 表
	_, err := conn.Exec(`CREATE TABLE users (
        user_id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT NOT NULL,
        email TEXT NOT NULL UNIQUE,
        created_at TEXT DEFAULT (datetime('now'))
    )`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO users (username, email) VALUES ('legacy', 'legacy@example.com')`)
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(conn, cfg))

	// 旧数据保留，新列可读，NULL 摘要读出来是空串
	var hash string
	require.NoError(t, conn.Get(&hash,
		`SELECT COALESCE(password_hash, '') FROM users WHERE email = 'legacy@example.com'`))
	assert.Empty(t, hash)
}

// TestEnsureSchema_ExternalScripts 外部建表脚本和种子数据
func TestEnsureSchema_ExternalScripts(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(dir, "schema.sql")
	seedFile := filepath.Join(dir, "seed.sql")

	require.NoError(t, os.WriteFile(schemaFile, []byte(
		`CREATE TABLE IF NOT EXISTS extras (id INTEGER PRIMARY KEY);`), 0o644))
	require.NoError(t, os.WriteFile(seedFile, []byte(
		`INSERT INTO users (username, email, password_hash) VALUES ('seeded', 'seed@example.com', 'digest');
         INSERT INTO users (username, email, password_hash) VALUES ('seeded2', 'seed2@example.com', 'digest');`), 0o644))

	cfg := config.Default(filepath.Join(dir, "test.db"))
	cfg.Schema.SchemaFile = schemaFile
	cfg.Schema.SeedFile = seedFile

	conn, err := InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, EnsureSchema(conn, cfg))

	var users int
	require.NoError(t, conn.Get(&users, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 2, users)

	// 二次执行时 users 表非空，种子不重复加载
	require.NoError(t, EnsureSchema(conn, cfg))
	require.NoError(t, conn.Get(&users, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 2, users)
}

// TestEnsureSchema_MissingScriptFiles 脚本文件不存在不算错误
func TestEnsureSchema_MissingScriptFiles(t *testing.T) {
	conn, cfg := openTestDB(t)
	cfg.Schema.SchemaFile = "no/such/schema.sql"
	cfg.Schema.SeedFile = "no/such/seed.sql"

	assert.NoError(t, EnsureSchema(conn, cfg))
}

// TestCreateIndexes 建索引幂等
func TestCreateIndexes(t *testing.T) {
	conn, cfg := openTestDB(t)
	require.NoError(t, EnsureSchema(conn, cfg))

	require.NoError(t, CreateIndexes(conn))
	require.NoError(t, CreateIndexes(conn))

	var count int
	require.NoError(t, conn.Get(&count,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%'`))
	assert.Equal(t, 4, count)
}

// TestSplitStatements 脚本切分
func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id INT);\n\nINSERT INTO a VALUES (1);\n;")
	assert.Len(t, stmts, 2)
}
