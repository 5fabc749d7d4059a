package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/Vitalii-Kazymyrovych/book-store/internal/application/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/dto"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/middleware"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// UserHandler 用户与认证
type UserHandler struct {
	registerUseCase    *appuser.RegisterUseCase
	loginUseCase       *appuser.LoginUseCase
	logoutUseCase      *appuser.LogoutUseCase
	updateRolesUseCase *appuser.UpdateRolesUseCase
	listRolesUseCase   *appuser.ListRolesUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	updateRolesUseCase *appuser.UpdateRolesUseCase,
	listRolesUseCase *appuser.ListRolesUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase:    registerUseCase,
		loginUseCase:       loginUseCase,
		logoutUseCase:      logoutUseCase,
		updateRolesUseCase: updateRolesUseCase,
		listRolesUseCase:   listRolesUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  注册新用户，默认授予user角色
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=appuser.UserResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /auth/registration [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Email:           req.Email,
		Password:        req.Password,
		RepeatPassword:  req.RepeatPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Login 用户登录
// @Summary      用户登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appuser.LoginResponse}
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// Logout 登出，当前Access Token立即失效
// @Summary      用户登出
// @Tags         认证
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	caller := middleware.MustGetCaller(c)
	token, expiresAt := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), caller.UserID, token, expiresAt); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateRoles 管理员替换用户角色
// @Summary      修改用户角色
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateRolesRequest true "邮箱与角色ID"
// @Success      200 {object} response.Response{data=appuser.UserResponse}
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      404 {object} response.Response "用户或角色不存在"
// @Router       /users/update-roles [put]
func (h *UserHandler) UpdateRoles(c *gin.Context) {
	var req dto.UpdateRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.updateRolesUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c), appuser.UpdateRolesRequest{
		Email:   req.Email,
		RoleIDs: req.RoleIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// ListRoles 角色列表
// @Summary      角色列表
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appuser.RoleResponse}
// @Failure      403 {object} response.Response "需要管理员权限"
// @Router       /roles [get]
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.listRolesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, roles)
}
