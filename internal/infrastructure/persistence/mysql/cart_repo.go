package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// cartRepository 购物车仓储实现
// 1. 每次明细变更都递增shopping_carts.version(乐观并发控制)
// 2. Clear使用version做CAS，发现并发修改时返回ErrCartModified
// 3. 事务通过context传递，下单时与订单保存处于同一事务
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindByUserID 查找用户购物车
// Preload会执行:
// 1. SELECT * FROM shopping_carts WHERE user_id = ?
// 2. SELECT * FROM cart_items WHERE cart_id IN (?)
// 3. SELECT * FROM books WHERE id IN (?) AND deleted_at IS NULL
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.ShoppingCart, error) {
	var model ShoppingCartModel
	err := getDB(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		Preload("Items.Book").
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartNotFound.WithMessagef("用户%d的购物车不存在", userID)
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}
	return toCartEntity(&model), nil
}

// Create 创建购物车
func (r *cartRepository) Create(ctx context.Context, c *cart.ShoppingCart) error {
	model := &ShoppingCartModel{
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	// 嵌套事务对应SAVEPOINT，唯一键冲突只回滚到保存点，外层下单事务仍可继续读取
	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Items").Create(model).Error
	})
	if err != nil {
		if isDuplicateError(err) {
			return cart.ErrCartDuplicate
		}
		return apperrors.Wrap(err, "创建购物车失败")
	}
	c.ID = model.ID
	c.Version = model.Version
	return nil
}

// FindItemByID 查找明细
func (r *cartRepository) FindItemByID(ctx context.Context, itemID uint) (*cart.CartItem, error) {
	var model CartItemModel
	if err := getDB(ctx, r.db).Preload("Book").First(&model, itemID).Error; err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartItemNotFound.WithMessagef("购物车明细不存在: %d", itemID)
		}
		return nil, apperrors.Wrap(err, "查询购物车明细失败")
	}
	item := toCartItemEntity(&model)
	return &item, nil
}

// AddItem 新增明细
// 同一本书重复加购会产生两行，不合并数量
func (r *cartRepository) AddItem(ctx context.Context, item *cart.CartItem) error {
	model := &CartItemModel{
		CartID:   item.CartID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}
	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Book").Create(model).Error; err != nil {
			return err
		}
		return bumpCartVersion(tx, item.CartID)
	})
	if err != nil {
		return apperrors.Wrap(err, "添加购物车明细失败")
	}
	item.ID = model.ID
	return nil
}

// UpdateItem 只更新数量
// MySQL连接需开启clientFoundRows，否则数量未变化时影响行数为0
func (r *cartRepository) UpdateItem(ctx context.Context, item *cart.CartItem) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&CartItemModel{}).Where("id = ?", item.ID).Update("quantity", item.Quantity)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "更新购物车明细失败")
		}
		if result.RowsAffected == 0 {
			return cart.ErrCartItemNotFound.WithMessagef("购物车明细不存在: %d", item.ID)
		}
		if err := bumpCartVersion(tx, item.CartID); err != nil {
			return apperrors.Wrap(err, "更新购物车版本失败")
		}
		return nil
	})
}

// RemoveItem 删除明细
func (r *cartRepository) RemoveItem(ctx context.Context, itemID uint) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var model CartItemModel
		if err := tx.Select("id", "cart_id").First(&model, itemID).Error; err != nil {
			if isNotFound(err) {
				return cart.ErrCartItemNotFound.WithMessagef("购物车明细不存在: %d", itemID)
			}
			return apperrors.Wrap(err, "查询购物车明细失败")
		}
		if err := tx.Delete(&CartItemModel{}, itemID).Error; err != nil {
			return apperrors.Wrap(err, "删除购物车明细失败")
		}
		if err := bumpCartVersion(tx, model.CartID); err != nil {
			return apperrors.Wrap(err, "更新购物车版本失败")
		}
		return nil
	})
}

// Clear 清空购物车
// UPDATE shopping_carts SET version = version + 1 WHERE id = ? AND version = ?
// 影响行数为0说明读取之后有并发修改，整个事务回滚
func (r *cartRepository) Clear(ctx context.Context, c *cart.ShoppingCart) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ShoppingCartModel{}).
			Where("id = ? AND version = ?", c.ID, c.Version).
			Updates(map[string]interface{}{
				"version":    gorm.Expr("version + 1"),
				"updated_at": tx.NowFunc(),
			})
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "清空购物车失败")
		}
		if result.RowsAffected == 0 {
			return cart.ErrCartModified
		}
		if err := tx.Where("cart_id = ?", c.ID).Delete(&CartItemModel{}).Error; err != nil {
			return apperrors.Wrap(err, "清空购物车失败")
		}

		c.Version++
		c.Items = nil
		return nil
	})
}

func bumpCartVersion(tx *gorm.DB, cartID uint) error {
	return tx.Model(&ShoppingCartModel{}).Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"version":    gorm.Expr("version + 1"),
			"updated_at": tx.NowFunc(),
		}).Error
}

func toCartEntity(m *ShoppingCartModel) *cart.ShoppingCart {
	items := make([]cart.CartItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, toCartItemEntity(&m.Items[i]))
	}
	return &cart.ShoppingCart{
		ID:        m.ID,
		UserID:    m.UserID,
		Version:   m.Version,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCartItemEntity(m *CartItemModel) cart.CartItem {
	item := cart.CartItem{
		ID:       m.ID,
		CartID:   m.CartID,
		BookID:   m.BookID,
		Quantity: m.Quantity,
	}
	if m.Book != nil {
		item.BookTitle = m.Book.Title
		item.BookPrice = m.Book.Price
		item.BookAvailable = true
	}
	return item
}
