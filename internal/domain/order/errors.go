package order

import (
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrOrderItemNotFound 订单明细不存在
	ErrOrderItemNotFound = apperrors.New(apperrors.ErrCodeOrderItemNotFound, "订单明细不存在")

	// ErrInvalidStatus 无法识别的状态名
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的订单状态")

	// ErrInvalidStatusTransition 非法的状态转换(仅严格模式)
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单状态不允许此操作")

	// ErrCheckoutInProgress 同一用户的结算正在进行
	ErrCheckoutInProgress = apperrors.New(apperrors.ErrCodeCheckoutInProgress, "订单正在提交中,请勿重复提交")
)
