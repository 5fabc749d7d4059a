package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// bookRepository 图书仓储实现
// 1. 软删除:GORM的DELETE自动变成UPDATE deleted_at，查询自动过滤
// 2. 分类关联通过book_categories显式维护，Preload读取时排除已删除分类
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return createBook(tx, b)
	})
}

// SaveAll 批量创建，任何一本失败整体回滚
func (r *bookRepository) SaveAll(ctx context.Context, books []*book.Book) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for _, b := range books {
			if err := createBook(tx, b); err != nil {
				return err
			}
		}
		return nil
	})
}

func createBook(tx *gorm.DB, b *book.Book) error {
	model := toBookModel(b)
	if err := tx.Omit("Categories").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate.WithMessagef("ISBN号已存在: %s", b.ISBN)
		}
		return apperrors.Wrap(err, "创建图书失败")
	}
	if err := insertBookCategories(tx, model.ID, b.CategoryIDs); err != nil {
		return apperrors.Wrap(err, "保存图书分类失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := getDB(ctx, r.db).Preload("Categories").First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound.WithMessagef("图书不存在: %d", id)
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Categories").Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 更新图书信息(ISBN不可修改，不在更新字段中)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
			"title":       b.Title,
			"author":      b.Author,
			"price":       b.Price,
			"description": b.Description,
			"cover_image": b.CoverImage,
			"updated_at":  b.UpdatedAt,
		})
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "更新图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound.WithMessagef("图书不存在: %d", b.ID)
		}

		if err := tx.Where("book_id = ?", b.ID).Delete(&bookCategoryModel{}).Error; err != nil {
			return apperrors.Wrap(err, "更新图书分类失败")
		}
		if err := insertBookCategories(tx, b.ID, b.CategoryIDs); err != nil {
			return apperrors.Wrap(err, "更新图书分类失败")
		}
		return nil
	})
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound.WithMessagef("图书不存在: %d", id)
	}
	return nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{})

	// 关键词搜索(标题、作者)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	switch params.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}
	query = query.Order("id DESC")

	return r.findPage(query, params.Page, params.PageSize, total)
}

// Search 条件搜索
// 同一条件内为IN(精确匹配)，不同条件之间为AND
func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{})

	if len(params.Titles) > 0 {
		query = query.Where("title IN ?", params.Titles)
	}
	if len(params.Authors) > 0 {
		query = query.Where("author IN ?", params.Authors)
	}
	if len(params.ISBNs) > 0 {
		query = query.Where("isbn IN ?", params.ISBNs)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索图书失败")
	}

	return r.findPage(query.Order("id ASC"), params.Page, params.PageSize, total)
}

// ListByCategoryID 查询某分类下的图书
func (r *bookRepository) ListByCategoryID(ctx context.Context, categoryID uint, page, pageSize int) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{}).
		Joins("JOIN book_categories ON book_categories.book_id = books.id").
		Where("book_categories.category_id = ?", categoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类图书失败")
	}

	return r.findPage(query.Order("books.id ASC"), page, pageSize, total)
}

func (r *bookRepository) findPage(query *gorm.DB, page, pageSize int, total int64) ([]*book.Book, int64, error) {
	offset, limit := pageOffset(page, pageSize)

	var models []BookModel
	if err := query.Preload("Categories").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

func insertBookCategories(tx *gorm.DB, bookID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	rows := make([]bookCategoryModel, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		rows = append(rows, bookCategoryModel{BookID: bookID, CategoryID: id})
	}
	return tx.Create(&rows).Error
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	categoryIDs := make([]uint, 0, len(model.Categories))
	for _, c := range model.Categories {
		categoryIDs = append(categoryIDs, c.ID)
	}
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		ISBN:        model.ISBN,
		Price:       model.Price,
		Description: model.Description,
		CoverImage:  model.CoverImage,
		CategoryIDs: categoryIDs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
