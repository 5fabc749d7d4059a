package book

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/category"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql/sqlitetest"
)

type fixture struct {
	service    book.Service
	categories category.Repository
}

func newFixture(t *testing.T) *fixture {
	db := sqlitetest.New(t)
	return &fixture{
		service:    book.NewService(mysql.NewBookRepository(db)),
		categories: mysql.NewCategoryRepository(db),
	}
}

func (f *fixture) seedCategory(t *testing.T, name string) *category.Category {
	c, err := category.NewCategory(name, "")
	require.NoError(t, err)
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c
}

func TestPublishBook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fiction := f.seedCategory(t, "Fiction")
	uc := NewPublishBookUseCase(f.service, f.categories, zap.NewNop())

	resp, err := uc.Execute(ctx, PublishBookRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		ISBN:        "978-0-441-17271-9",
		Price:       decimal.RequireFromString("19.99"),
		CategoryIDs: []uint{fiction.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "9780441172719", resp.ISBN)
	assert.Equal(t, "19.99", resp.Price)
	assert.Equal(t, []uint{fiction.ID}, resp.CategoryIDs)

	_, err = uc.Execute(ctx, PublishBookRequest{
		Title: "Other", Author: "A", ISBN: "9780441172719", Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)

	_, err = uc.Execute(ctx, PublishBookRequest{
		Title: "Other", Author: "A", ISBN: "9780000000001", Price: decimal.NewFromInt(1),
		CategoryIDs: []uint{fiction.ID, 404},
	})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	_, err = uc.Execute(ctx, PublishBookRequest{
		Title: "Other", Author: "A", ISBN: "9780000000002", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, book.ErrInvalidPrice)
}

func TestPublishBooks_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewPublishBookUseCase(f.service, f.categories, zap.NewNop())

	_, err := uc.ExecuteBatch(ctx, []PublishBookRequest{
		{Title: "A", Author: "X", ISBN: "9780000000010", Price: decimal.NewFromInt(5)},
		{Title: "B", Author: "X", ISBN: "978-0000000010", Price: decimal.NewFromInt(6)},
	})
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)

	page, err := NewQueryBooksUseCase(f.service).List(ctx, book.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	created, err := uc.ExecuteBatch(ctx, []PublishBookRequest{
		{Title: "A", Author: "X", ISBN: "9780000000010", Price: decimal.NewFromInt(5)},
		{Title: "B", Author: "Y", ISBN: "9780000000011", Price: decimal.NewFromInt(6)},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestUpdateAndDeleteBook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := NewPublishBookUseCase(f.service, f.categories, zap.NewNop()).Execute(ctx, PublishBookRequest{
		Title: "Dune", Author: "Frank Herbert", ISBN: "9780441172719", Price: decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	update := NewUpdateBookUseCase(f.service, f.categories)
	price := decimal.RequireFromString("24.50")
	updated, err := update.Execute(ctx, created.ID, UpdateBookRequest{Title: "Dune (Deluxe)", Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "24.50", updated.Price)
	assert.Equal(t, "Dune (Deluxe)", updated.Title)
	assert.Equal(t, "Frank Herbert", updated.Author)

	_, err = update.Execute(ctx, created.ID, UpdateBookRequest{ISBN: "9780000000099"})
	assert.ErrorIs(t, err, book.ErrISBNImmutable)

	query := NewQueryBooksUseCase(f.service)
	search, err := query.Search(ctx, book.SearchParams{Authors: []string{"Frank Herbert"}, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, search.Total)

	require.NoError(t, NewDeleteBookUseCase(f.service, zap.NewNop()).Execute(ctx, created.ID))
	_, err = query.Get(ctx, created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
