package dto

// RegisterRequest 注册请求
// 密码强度（字母+数字）由领域服务校验
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password        string `json:"password" binding:"required,min=8,max=20" example:"secret123"`
	RepeatPassword  string `json:"repeat_password" binding:"required" example:"secret123"`
	FirstName       string `json:"first_name" binding:"required,max=50" example:"Alice"`
	LastName        string `json:"last_name" binding:"required,max=50" example:"Smith"`
	ShippingAddress string `json:"shipping_address" binding:"max=255" example:"1 Main St"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UpdateRolesRequest 管理员替换用户角色
type UpdateRolesRequest struct {
	Email   string `json:"email" binding:"required,email" example:"alice@example.com"`
	RoleIDs []uint `json:"role_ids" binding:"required,min=1,dive,min=1" example:"1,2"`
}
