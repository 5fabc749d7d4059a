// Package sqlitetest 为仓储和用例测试提供内存SQLite数据库
package sqlitetest

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
)

// New 创建已迁移的内存数据库，测试结束时关闭
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			DBName:      ":memory:",
			AutoMigrate: true,
		},
	}

	db, err := mysql.NewDB(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
