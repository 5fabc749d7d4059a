package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// racyRepo 模拟并发建车:第一次查找看不到，创建时发现已被别人创建
type racyRepo struct {
	Repository
	winner  *ShoppingCart
	lookups int
	creates int
}

func (r *racyRepo) FindByUserID(_ context.Context, userID uint) (*ShoppingCart, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, ErrCartNotFound
	}
	return r.winner, nil
}

func (r *racyRepo) Create(context.Context, *ShoppingCart) error {
	r.creates++
	return ErrCartDuplicate
}

type emptyRepo struct {
	Repository
	created *ShoppingCart
}

func (r *emptyRepo) FindByUserID(context.Context, uint) (*ShoppingCart, error) {
	return nil, ErrCartNotFound
}

func (r *emptyRepo) Create(_ context.Context, c *ShoppingCart) error {
	c.ID = 7
	r.created = c
	return nil
}

func TestGetOrCreate_CreatesWhenMissing(t *testing.T) {
	repo := &emptyRepo{}
	c, err := NewService(repo).GetOrCreate(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, uint(7), c.ID)
	assert.Equal(t, uint(42), c.UserID)
	assert.True(t, c.IsEmpty())
	assert.Same(t, repo.created, c)
}

func TestGetOrCreate_RereadsAfterDuplicate(t *testing.T) {
	winner := &ShoppingCart{ID: 3, UserID: 42}
	repo := &racyRepo{winner: winner}

	c, err := NewService(repo).GetOrCreate(context.Background(), 42)
	require.NoError(t, err)
	assert.Same(t, winner, c)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 2, repo.lookups)
}

func TestCartItemQuantity(t *testing.T) {
	_, err := NewCartItem(1, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	item, err := NewCartItem(1, 1, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, item.ChangeQuantity(-1), ErrInvalidQuantity)
	assert.Equal(t, 2, item.Quantity)

	require.NoError(t, item.ChangeQuantity(5))
	assert.Equal(t, 5, item.Quantity)
}

func TestOwns(t *testing.T) {
	c := &ShoppingCart{ID: 1}
	assert.True(t, c.Owns(&CartItem{CartID: 1}))
	assert.False(t, c.Owns(&CartItem{CartID: 2}))
	assert.False(t, c.Owns(nil))
}
