package user

import (
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email           string
	Password        string
	RepeatPassword  string
	FirstName       string
	LastName        string
	ShippingAddress string
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// UpdateRolesRequest 管理员替换用户角色
type UpdateRolesRequest struct {
	Email   string
	RoleIDs []uint
}

// UserResponse 用户信息
// 不返回密码字段
type UserResponse struct {
	ID              uint     `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	ShippingAddress string   `json:"shipping_address,omitempty"`
	Roles           []string `json:"roles"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // Access Token过期时间（秒）
}

// RoleResponse 角色
type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ShippingAddress: u.ShippingAddress,
		Roles:           u.RoleNames(),
	}
}
