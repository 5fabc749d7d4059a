package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql/sqlitetest"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

type fixture struct {
	books    book.Repository
	cartRepo cart.Repository
	carts    cart.Service
	guard    *access.Guard
}

func newFixture(t *testing.T) *fixture {
	db := sqlitetest.New(t)
	cartRepo := mysql.NewCartRepository(db)
	carts := cart.NewService(cartRepo)
	return &fixture{
		books:    mysql.NewBookRepository(db),
		cartRepo: cartRepo,
		carts:    carts,
		guard:    access.NewGuard(carts),
	}
}

func (f *fixture) seedBook(t *testing.T, isbn string) *book.Book {
	b := book.NewBook("Title "+isbn, "Author", isbn, decimal.RequireFromString("9.99"), "", "", nil)
	require.NoError(t, f.books.Create(context.Background(), b))
	return b
}

// shopping_carts没有指向users的外键，调用者无需落库
var (
	alice = access.Caller{UserID: 1, Email: "alice@example.com", Roles: []string{"user"}}
	bob   = access.Caller{UserID: 2, Email: "bob@example.com", Roles: []string{"user", "admin"}}
)

func TestGetCart_CreatesLazily(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := NewGetCartUseCase(f.carts).Execute(ctx, alice)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, alice.UserID, resp.UserID)
	assert.Empty(t, resp.CartItems)

	again, err := NewGetCartUseCase(f.carts).Execute(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
}

func TestAddItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.seedBook(t, "9780000000001")
	uc := NewAddItemUseCase(f.carts, f.cartRepo, f.books)

	first, err := uc.Execute(ctx, alice, AddItemRequest{BookID: b.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, alice, AddItemRequest{BookID: b.ID, Quantity: 2})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	resp, err := NewGetCartUseCase(f.carts).Execute(ctx, alice)
	require.NoError(t, err)
	require.Len(t, resp.CartItems, 2)
	assert.Equal(t, b.Title, resp.CartItems[0].BookTitle)

	_, err = uc.Execute(ctx, alice, AddItemRequest{BookID: 404, Quantity: 1})
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = uc.Execute(ctx, alice, AddItemRequest{BookID: b.ID, Quantity: 0})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
}

func TestUpdateAndRemoveItem_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.seedBook(t, "9780000000002")

	added, err := NewAddItemUseCase(f.carts, f.cartRepo, f.books).Execute(ctx, alice, AddItemRequest{BookID: b.ID, Quantity: 1})
	require.NoError(t, err)

	update := NewUpdateItemUseCase(f.cartRepo, f.guard)
	remove := NewRemoveItemUseCase(f.cartRepo, f.guard)

	// 管理员也不能修改别人的购物车
	_, err = update.Execute(ctx, bob, added.ID, 5)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	assert.ErrorIs(t, remove.Execute(ctx, bob, added.ID), apperrors.ErrAccessDenied)

	// 鉴权失败的副作用:bob得到了一个空购物车
	bobCart, err := f.carts.FindForUser(ctx, bob.UserID)
	require.NoError(t, err)
	assert.True(t, bobCart.IsEmpty())

	updated, err := update.Execute(ctx, alice, added.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = update.Execute(ctx, alice, added.ID, -1)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	require.NoError(t, remove.Execute(ctx, alice, added.ID))
	assert.ErrorIs(t, remove.Execute(ctx, alice, added.ID), cart.ErrCartItemNotFound)

	_, err = update.Execute(ctx, alice, 777, 1)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
}
