package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// Application层负责用例编排，校验规则在领域服务中
type RegisterUseCase struct {
	userService user.Service
	log         *zap.Logger
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, log *zap.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		log:         log,
	}
}

// Execute 执行注册
// 返回应用层DTO，不直接暴露领域实体
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	u, err := uc.userService.Register(ctx, user.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		RepeatPassword:  req.RepeatPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("用户注册成功", zap.Uint("user_id", u.ID), zap.String("email", u.Email))
	resp := toUserResponse(u)
	return &resp, nil
}
