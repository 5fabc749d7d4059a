package cart

import (
	"context"
	"errors"
)

// Service 购物车领域服务
type Service interface {
	// GetOrCreate 返回用户的购物车，不存在则创建
	GetOrCreate(ctx context.Context, userID uint) (*ShoppingCart, error)

	// FindForUser 查找用户的购物车，不存在返回ErrCartNotFound
	FindForUser(ctx context.Context, userID uint) (*ShoppingCart, error)
}

type service struct {
	repo Repository
}

// NewService 创建购物车领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetOrCreate 查找或创建
// 两个请求同时为新用户建车时，唯一索引保证只有一个成功，失败方重新读取
func (s *service) GetOrCreate(ctx context.Context, userID uint) (*ShoppingCart, error) {
	c, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	c = NewShoppingCart(userID)
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, ErrCartDuplicate) {
			return s.repo.FindByUserID(ctx, userID)
		}
		return nil, err
	}
	return c, nil
}

// FindForUser 查找用户的购物车
func (s *service) FindForUser(ctx context.Context, userID uint) (*ShoppingCart, error) {
	return s.repo.FindByUserID(ctx, userID)
}
