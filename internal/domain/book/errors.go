package book

import (
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrISBNImmutable ISBN创建后不可修改
	ErrISBNImmutable = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN创建后不可修改")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrInvalidTitle 书名和作者不能为空
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名和作者不能为空")
)
