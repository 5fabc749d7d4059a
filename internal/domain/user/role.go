package user

import (
	"context"
	"strings"
)

// RoleName 角色名（封闭枚举）
type RoleName string

const (
	RoleUser  RoleName = "user"
	RoleAdmin RoleName = "admin"
)

// AllRoleNames 启动时需要存在于角色表的全部角色
var AllRoleNames = []RoleName{RoleUser, RoleAdmin}

// ParseRoleName 大小写不敏感地解析角色名
func ParseRoleName(s string) (RoleName, bool) {
	name := RoleName(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllRoleNames {
		if name == known {
			return name, true
		}
	}
	return "", false
}

// Role 角色（静态参考数据，ID稳定）
type Role struct {
	ID   uint
	Name RoleName
}

// RoleRepository 角色仓储
type RoleRepository interface {
	// Count 角色表记录数
	Count(ctx context.Context) (int64, error)

	// FindAll 全部角色
	FindAll(ctx context.Context) ([]Role, error)

	// FindByName 按名称查找，不存在返回ErrRoleNotFound
	FindByName(ctx context.Context, name RoleName) (*Role, error)

	// FindByIDs 按ID批量查找，任何一个不存在返回ErrRoleNotFound
	FindByIDs(ctx context.Context, ids []uint) ([]Role, error)

	// CreateIfMissing 名称不存在时插入
	CreateIfMissing(ctx context.Context, name RoleName) error
}
