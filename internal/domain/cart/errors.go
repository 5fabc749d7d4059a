package cart

import (
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")

	// ErrCartItemNotFound 购物车明细不存在
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车明细不存在")

	// ErrCartDuplicate 用户已有购物车(并发创建时唯一索引冲突)
	ErrCartDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "购物车已存在")

	// ErrCartModified 购物车在读取后被并发修改
	ErrCartModified = apperrors.New(apperrors.ErrCodeCartModified, "购物车已被修改,请重试")

	// ErrInvalidQuantity 数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
