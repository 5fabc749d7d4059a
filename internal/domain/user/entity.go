package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 身份（邮箱）注册后不可变，只有管理员可以修改角色集合
// 2. 密码为bcrypt哈希值，不提供任何读取明文的方法
// 3. 领域实体不依赖GORM tag
type User struct {
	ID              uint
	Email           string
	Password        string // bcrypt哈希值
	FirstName       string
	LastName        string
	ShippingAddress string
	Roles           []Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser 创建新用户（工厂方法），默认授予user角色
func NewUser(email, hashedPassword, firstName, lastName, shippingAddress string, defaultRole Role) *User {
	now := time.Now()
	return &User{
		Email:           email,
		Password:        hashedPassword,
		FirstName:       firstName,
		LastName:        lastName,
		ShippingAddress: shippingAddress,
		Roles:           []Role{defaultRole},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RoleNames 角色名列表（写入JWT）
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r.Name))
	}
	return names
}

// HasRole 是否拥有指定角色
func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleIDs 角色ID列表
func (u *User) RoleIDs() []uint {
	ids := make([]uint, 0, len(u.Roles))
	for _, r := range u.Roles {
		ids = append(ids, r.ID)
	}
	return ids
}

// ReplaceRoles 整体替换角色集合（管理员操作）
func (u *User) ReplaceRoles(roles []Role) {
	u.Roles = roles
	u.UpdatedAt = time.Now()
}
