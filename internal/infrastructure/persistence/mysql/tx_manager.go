package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键
type txKey struct{}

// TxManager 事务管理器，实现transaction.Manager
// 1. 通过context传递事务DB(避免全局变量)
// 2. fn返回error时自动ROLLBACK，返回nil时自动COMMIT
// 3. 嵌套调用时GORM自动使用Savepoint
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := orderRepo.Save(ctx, o); err != nil {
//	        return err // 自动回滚
//	    }
//	    return cartRepo.Clear(ctx, c)
//	})
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
