package container

import (
	"go.uber.org/dig"

	"github.com/jmoiron/sqlx"

	"social-analytics/config"
	"social-analytics/internal/repository"
	"social-analytics/internal/service"
	"social-analytics/pkg/db"
	"social-analytics/pkg/hash"
	"social-analytics/pkg/session"
)

// Container 全局依赖注入容器
var Container *dig.Container

// Init 初始化依赖注入容器。
// 调用前配置必须已经 Load 完成。
func Init() error {
	Container = dig.New()

	// 注册所有依赖
	if err := registerProviders(); err != nil {
		return err
	}

	return nil
}

// registerProviders 注册所有提供者
func registerProviders() error {
	providers := []interface{}{
		// 基础设施
		func() *config.Config { return config.Get() },
		func(cfg *config.Config) (*sqlx.DB, error) {
			conn, err := db.InitDB(cfg)
			if err != nil {
				return nil, err
			}
			if err := db.EnsureSchema(conn, cfg); err != nil {
				return nil, err
			}
			return conn, nil
		},
		func(cfg *config.Config) (hash.PasswordHasher, error) {
			return hash.NewHasher(cfg.Auth.HashAlgorithm)
		},
		func(cfg *config.Config) session.Manager {
			return session.NewManager(cfg.Auth.GetSessionTTL())
		},

		// 仓储层
		repository.NewUserRepository,
		repository.NewPostRepository,
		repository.NewCommentRepository,
		repository.NewRelationshipRepository,
		repository.NewAnalyticsRepository,

		// 服务层
		service.NewAuthService,
		service.NewUserService,
		service.NewPostService,
		service.NewCommentService,
		service.NewRelationshipService,
		service.NewAnalyticsService,
	}

	for _, p := range providers {
		if err := Container.Provide(p); err != nil {
			return err
		}
	}
	return nil
}

// Invoke 调用函数，自动注入依赖
func Invoke(function interface{}) error {
	return Container.Invoke(function)
}
