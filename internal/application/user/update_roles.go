package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
)

// UpdateRolesUseCase 管理员替换用户的角色集合
// 新角色在用户下次登录后才会出现在Token中
type UpdateRolesUseCase struct {
	userService user.Service
	guard       *access.Guard
	log         *zap.Logger
}

// NewUpdateRolesUseCase 创建角色更新用例
func NewUpdateRolesUseCase(userService user.Service, guard *access.Guard, log *zap.Logger) *UpdateRolesUseCase {
	return &UpdateRolesUseCase{userService: userService, guard: guard, log: log}
}

// Execute 执行
func (uc *UpdateRolesUseCase) Execute(ctx context.Context, caller access.Caller, req UpdateRolesRequest) (*UserResponse, error) {
	if err := uc.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}

	u, err := uc.userService.UpdateRoles(ctx, req.Email, req.RoleIDs)
	if err != nil {
		return nil, err
	}

	uc.log.Info("用户角色已更新",
		zap.String("email", u.Email),
		zap.Strings("roles", u.RoleNames()),
		zap.String("operator", caller.Email),
	)
	resp := toUserResponse(u)
	return &resp, nil
}
