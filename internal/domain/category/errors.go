package category

import (
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrInvalidName 分类名称不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")
)
