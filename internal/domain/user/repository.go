package user

import (
	"context"
)

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建用户（连同角色关联）
	// 邮箱已存在时返回apperrors.ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户（含角色），不存在返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户（含角色），不存在返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateRoles 替换用户的角色集合
	UpdateRoles(ctx context.Context, user *User) error
}
