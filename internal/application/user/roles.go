package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
)

// SeedRolesUseCase 启动时补齐角色表
// 表中记录数少于角色枚举数时逐个插入缺失的角色，重复执行无副作用
type SeedRolesUseCase struct {
	roles user.RoleRepository
	log   *zap.Logger
}

// NewSeedRolesUseCase 创建角色初始化用例
func NewSeedRolesUseCase(roles user.RoleRepository, log *zap.Logger) *SeedRolesUseCase {
	return &SeedRolesUseCase{roles: roles, log: log}
}

// Execute 执行
func (uc *SeedRolesUseCase) Execute(ctx context.Context) error {
	count, err := uc.roles.Count(ctx)
	if err != nil {
		return err
	}
	if count >= int64(len(user.AllRoleNames)) {
		return nil
	}

	for _, name := range user.AllRoleNames {
		if err := uc.roles.CreateIfMissing(ctx, name); err != nil {
			return err
		}
	}
	uc.log.Info("角色表已初始化", zap.Int("roles", len(user.AllRoleNames)))
	return nil
}

// ListRolesUseCase 角色列表（管理员为用户分配角色时使用）
type ListRolesUseCase struct {
	roles user.RoleRepository
}

// NewListRolesUseCase 创建角色列表用例
func NewListRolesUseCase(roles user.RoleRepository) *ListRolesUseCase {
	return &ListRolesUseCase{roles: roles}
}

// Execute 执行
func (uc *ListRolesUseCase) Execute(ctx context.Context) ([]RoleResponse, error) {
	roles, err := uc.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, RoleResponse{ID: r.ID, Name: string(r.Name)})
	}
	return resp, nil
}
