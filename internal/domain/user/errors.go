package user

import (
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrRoleNotFound 角色不存在
	ErrRoleNotFound = apperrors.New(apperrors.ErrCodeRoleNotFound, "角色不存在")

	// ErrPasswordMismatch 两次输入的密码不一致
	ErrPasswordMismatch = apperrors.New(apperrors.ErrCodeInvalidParams, "两次输入的密码不一致")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")

	// ErrInvalidName 姓名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名不能为空")

	// ErrEmptyRoles 角色集合不能为空
	ErrEmptyRoles = apperrors.New(apperrors.ErrCodeInvalidParams, "角色集合不能为空")
)
