package main

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/messaging"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/redis"
	grpcserver "github.com/Vitalii-Kazymyrovych/book-store/internal/interface/grpc"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/jwt"
)

// 有些构造函数的参数需要从Config中提取，或者需要返回cleanup，
// Wire无法直接使用，这里统一写成Provider

func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func provideRedis(cfg *config.Config, log *zap.Logger) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func provideEventPublisher(cfg *config.Config, log *zap.Logger) (order.EventPublisher, func(), error) {
	publisher, err := messaging.NewEventPublisher(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Warn("关闭事件发布者失败", zap.Error(err))
		}
	}
	return publisher, cleanup, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideCheckoutLocker(cfg *config.Config, client *goredis.Client) order.CheckoutLocker {
	return redis.NewCheckoutLocker(client, cfg.Order.CheckoutLockTTL)
}

func provideStatusMachine(cfg *config.Config) *order.StatusMachine {
	return order.NewStatusMachine(cfg.Order.StrictStatusTransitions)
}

// provideGRPCServer 健康检查探测数据库和Redis
func provideGRPCServer(db *gorm.DB, client *goredis.Client, log *zap.Logger) *grpcserver.Server {
	return grpcserver.NewServer(map[string]grpcserver.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err()
		},
	}, log)
}
