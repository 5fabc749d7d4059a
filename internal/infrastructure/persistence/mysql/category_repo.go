package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/category"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}
	c.ID = model.ID
	return nil
}

// SaveAll 批量创建(单条INSERT)
func (r *categoryRepository) SaveAll(ctx context.Context, categories []*category.Category) error {
	if len(categories) == 0 {
		return nil
	}
	models := make([]*CategoryModel, len(categories))
	for i, c := range categories {
		models[i] = toCategoryModel(c)
	}
	if err := getDB(ctx, r.db).Create(&models).Error; err != nil {
		return apperrors.Wrap(err, "批量创建分类失败")
	}
	for i := range categories {
		categories[i].ID = models[i].ID
	}
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, category.ErrCategoryNotFound.WithMessagef("分类不存在: %d", id)
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uint) ([]*category.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []CategoryModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	byID := make(map[uint]*CategoryModel, len(models))
	for i := range models {
		byID[models[i].ID] = &models[i]
	}
	out := make([]*category.Category, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, category.ErrCategoryNotFound.WithMessagef("分类不存在: %d", id)
		}
		out = append(out, toCategoryEntity(m))
	}
	return out, nil
}

func (r *categoryRepository) List(ctx context.Context, page, pageSize int) ([]*category.Category, int64, error) {
	query := getDB(ctx, r.db).Model(&CategoryModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类总数失败")
	}

	offset, limit := pageOffset(page, pageSize)
	var models []CategoryModel
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类列表失败")
	}

	out := make([]*category.Category, len(models))
	for i := range models {
		out[i] = toCategoryEntity(&models[i])
	}
	return out, total, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := getDB(ctx, r.db).Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"updated_at":  c.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound.WithMessagef("分类不存在: %d", c.ID)
	}
	return nil
}

// Delete 软删除，book_categories中的关联行保留，读取时自动排除
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound.WithMessagef("分类不存在: %d", id)
	}
	return nil
}

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryEntity(m *CategoryModel) *category.Category {
	return &category.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
