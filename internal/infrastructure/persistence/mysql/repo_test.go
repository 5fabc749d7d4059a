package mysql_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/category"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql/sqlitetest"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

type fixture struct {
	db         *gorm.DB
	tx         *mysql.TxManager
	users      user.Repository
	roles      user.RoleRepository
	books      book.Repository
	categories category.Repository
	carts      cart.Repository
	orders     order.Repository
}

func newFixture(t *testing.T) *fixture {
	db := sqlitetest.New(t)
	return &fixture{
		db:         db,
		tx:         mysql.NewTxManager(db),
		users:      mysql.NewUserRepository(db),
		roles:      mysql.NewRoleRepository(db),
		books:      mysql.NewBookRepository(db),
		categories: mysql.NewCategoryRepository(db),
		carts:      mysql.NewCartRepository(db),
		orders:     mysql.NewOrderRepository(db),
	}
}

func (f *fixture) seedUser(t *testing.T, email string) *user.User {
	ctx := context.Background()
	require.NoError(t, f.roles.CreateIfMissing(ctx, user.RoleUser))
	role, err := f.roles.FindByName(ctx, user.RoleUser)
	require.NoError(t, err)

	u := user.NewUser(email, "hash", "First", "Last", "addr", *role)
	require.NoError(t, f.users.Create(ctx, u))
	return u
}

func (f *fixture) seedBook(t *testing.T, isbn, price string) *book.Book {
	b := book.NewBook("Title "+isbn, "Author", isbn, decimal.RequireFromString(price), "", "", nil)
	require.NoError(t, f.books.Create(context.Background(), b))
	return b
}

func TestUserRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t, "a@example.com")
	assert.NotZero(t, u.ID)

	found, err := f.users.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, found.RoleNames())

	dup := user.NewUser("a@example.com", "hash", "F", "L", "", u.Roles[0])
	assert.ErrorIs(t, f.users.Create(ctx, dup), apperrors.ErrEmailDuplicate)

	_, err = f.users.FindByID(ctx, 999)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	require.NoError(t, f.roles.CreateIfMissing(ctx, user.RoleAdmin))
	require.NoError(t, f.roles.CreateIfMissing(ctx, user.RoleAdmin))
	n, err := f.roles.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	all, err := f.roles.FindAll(ctx)
	require.NoError(t, err)
	found.ReplaceRoles(all)
	require.NoError(t, f.users.UpdateRoles(ctx, found))

	reloaded, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.HasRole(user.RoleAdmin))
	assert.True(t, reloaded.HasRole(user.RoleUser))

	_, err = f.roles.FindByIDs(ctx, []uint{1, 42})
	assert.ErrorIs(t, err, user.ErrRoleNotFound)
}

func TestBookRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fiction, err := category.NewCategory("Fiction", "")
	require.NoError(t, err)
	require.NoError(t, f.categories.Create(ctx, fiction))

	b := book.NewBook("Dune", "Herbert", "9780441172719", decimal.RequireFromString("9.99"), "", "", []uint{fiction.ID})
	require.NoError(t, f.books.Create(ctx, b))

	got, err := f.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "9.99", got.Price.StringFixed(2))
	assert.Equal(t, []uint{fiction.ID}, got.CategoryIDs)

	dup := book.NewBook("Dune 2", "Herbert", "9780441172719", decimal.Zero, "", "", nil)
	assert.ErrorIs(t, f.books.Create(ctx, dup), book.ErrISBNDuplicate)

	byCategory, total, err := f.books.ListByCategoryID(ctx, fiction.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Dune", byCategory[0].Title)

	minPrice := decimal.RequireFromString("5")
	found, total, err := f.books.Search(ctx, book.SearchParams{Authors: []string{"Herbert"}, MinPrice: &minPrice})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, found, 1)

	// 软删除后读取与搜索都不可见
	require.NoError(t, f.books.Delete(ctx, b.ID))
	_, err = f.books.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, total, err = f.books.List(ctx, book.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.ErrorIs(t, f.books.Delete(ctx, b.ID), book.ErrBookNotFound)
}

func TestCartRepository_DuplicateAddCreatesTwoLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "cart@example.com")
	b := f.seedBook(t, "9780000000001", "10.00")

	c := cart.NewShoppingCart(u.ID)
	require.NoError(t, f.carts.Create(ctx, c))
	assert.ErrorIs(t, f.carts.Create(ctx, cart.NewShoppingCart(u.ID)), cart.ErrCartDuplicate)

	for i := 0; i < 2; i++ {
		item, err := cart.NewCartItem(c.ID, b.ID, 1)
		require.NoError(t, err)
		require.NoError(t, f.carts.AddItem(ctx, item))
	}

	loaded, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.NotEqual(t, loaded.Items[0].ID, loaded.Items[1].ID)
	assert.Equal(t, b.ID, loaded.Items[1].BookID)
	assert.True(t, loaded.Items[0].BookAvailable)
	assert.Equal(t, "10.00", loaded.Items[0].BookPrice.StringFixed(2))
	assert.EqualValues(t, 2, loaded.Version)
}

func TestCartRepository_ItemMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "mut@example.com")
	b := f.seedBook(t, "9780000000002", "3.50")

	c := cart.NewShoppingCart(u.ID)
	require.NoError(t, f.carts.Create(ctx, c))
	item, err := cart.NewCartItem(c.ID, b.ID, 1)
	require.NoError(t, err)
	require.NoError(t, f.carts.AddItem(ctx, item))

	require.NoError(t, item.ChangeQuantity(4))
	require.NoError(t, f.carts.UpdateItem(ctx, item))

	got, err := f.carts.FindItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)

	require.NoError(t, f.carts.RemoveItem(ctx, item.ID))
	_, err = f.carts.FindItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	assert.ErrorIs(t, f.carts.RemoveItem(ctx, item.ID), cart.ErrCartItemNotFound)

	missing := &cart.CartItem{ID: 999, CartID: c.ID, Quantity: 1}
	assert.ErrorIs(t, f.carts.UpdateItem(ctx, missing), cart.ErrCartItemNotFound)
}

func TestCartRepository_UpdateItemWithSameQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "same@example.com")
	b := f.seedBook(t, "9780000000012", "7.00")

	c := cart.NewShoppingCart(u.ID)
	require.NoError(t, f.carts.Create(ctx, c))
	item, err := cart.NewCartItem(c.ID, b.ID, 2)
	require.NoError(t, err)
	require.NoError(t, f.carts.AddItem(ctx, item))

	before, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)

	// 数量不变也视为成功，并递增购物车版本
	require.NoError(t, f.carts.UpdateItem(ctx, item))

	after, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Version+1, after.Version)
	require.Len(t, after.Items, 1)
	assert.Equal(t, 2, after.Items[0].Quantity)
}

func TestCartRepository_DuplicateCreateInsideTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "dup@example.com")

	first := cart.NewShoppingCart(u.ID)
	err := f.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := f.carts.Create(ctx, first); err != nil {
			return err
		}
		second := cart.NewShoppingCart(u.ID)
		if err := f.carts.Create(ctx, second); !errors.Is(err, cart.ErrCartDuplicate) {
			return fmt.Errorf("expected duplicate cart, got %v", err)
		}

		// 冲突之后同一事务仍然可用
		got, err := f.carts.FindByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, first.ID, got.ID)
		return nil
	})
	require.NoError(t, err)

	got, err := cart.NewService(f.carts).GetOrCreate(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestCartRepository_SoftDeletedBookIsUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "gone@example.com")
	b := f.seedBook(t, "9780000000003", "1.00")

	c := cart.NewShoppingCart(u.ID)
	require.NoError(t, f.carts.Create(ctx, c))
	item, err := cart.NewCartItem(c.ID, b.ID, 1)
	require.NoError(t, err)
	require.NoError(t, f.carts.AddItem(ctx, item))
	require.NoError(t, f.books.Delete(ctx, b.ID))

	loaded, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.False(t, loaded.Items[0].BookAvailable)
}

func TestCartRepository_ClearDetectsConcurrentModification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "cas@example.com")
	b := f.seedBook(t, "9780000000004", "2.00")

	c := cart.NewShoppingCart(u.ID)
	require.NoError(t, f.carts.Create(ctx, c))
	item, err := cart.NewCartItem(c.ID, b.ID, 1)
	require.NoError(t, err)
	require.NoError(t, f.carts.AddItem(ctx, item))

	stale, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)

	// 读取之后又加购一次
	another, err := cart.NewCartItem(c.ID, b.ID, 1)
	require.NoError(t, err)
	require.NoError(t, f.carts.AddItem(ctx, another))

	assert.ErrorIs(t, f.carts.Clear(ctx, stale), cart.ErrCartModified)

	fresh, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, fresh.Items, 2)

	require.NoError(t, f.carts.Clear(ctx, fresh))
	assert.Empty(t, fresh.Items)

	after, err := f.carts.FindByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.Equal(t, fresh.Version, after.Version)
}

func TestOrderRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "buyer@example.com")

	c := &cart.ShoppingCart{UserID: u.ID, Items: []cart.CartItem{
		{BookID: 1, BookTitle: "A", BookPrice: decimal.RequireFromString("19.99"), BookAvailable: true, Quantity: 2},
		{BookID: 2, BookTitle: "B", BookPrice: decimal.RequireFromString("29.99"), BookAvailable: true, Quantity: 1},
	}}
	first, err := order.NewOrderFromCart(u.ID, "addr", c, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.orders.Save(ctx, first))
	assert.NotZero(t, first.ID)
	assert.NotZero(t, first.Items[0].ID)

	second, err := order.NewOrderFromCart(u.ID, "addr", &cart.ShoppingCart{}, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.orders.Save(ctx, second))

	light, err := f.orders.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, light.Items)
	assert.Equal(t, "69.97", light.Total.StringFixed(2))

	full, err := f.orders.FindWithItemsAndOwner(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", full.UserEmail)
	require.Len(t, full.Items, 2)
	assert.Equal(t, "39.98", full.Items[0].Price.StringFixed(2))

	page, total, err := f.orders.ListByUserID(ctx, u.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, page, 2)
	assert.Equal(t, second.ID, page[0].ID)
	assert.Len(t, page[1].Items, 2)

	full.Status = order.StatusPaid
	require.NoError(t, f.orders.UpdateStatus(ctx, full))
	reloaded, err := f.orders.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, reloaded.Status)

	_, err = f.orders.FindWithItemsAndOwner(ctx, 999)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.seedUser(t, "tx@example.com")
	boom := errors.New("boom")

	err := f.tx.Transaction(ctx, func(ctx context.Context) error {
		o, err := order.NewOrderFromCart(u.ID, "addr", &cart.ShoppingCart{}, time.Now())
		require.NoError(t, err)
		require.NoError(t, f.orders.Save(ctx, o))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, total, err := f.orders.ListByUserID(ctx, u.ID, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}
