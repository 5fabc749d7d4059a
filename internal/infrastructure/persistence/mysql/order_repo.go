package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// orderRepository 订单仓储实现
// 1. Order和OrderItem是聚合关系，必须一起保存
// 2. 列表查询使用Preload预加载明细，避免N+1问题
// 3. 事务通过context传递
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Save 保存订单
// GORM会自动保存关联的Items(has many)，并回填明细ID
func (r *orderRepository) Save(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// FindByID 查找订单(不含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound.WithMessagef("订单不存在: %d", id)
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// FindWithItemsAndOwner 查找订单、明细和所属用户邮箱
// 1. SELECT * FROM orders WHERE id = ?
// 2. SELECT * FROM order_items WHERE order_id IN (?)
// 3. SELECT users.email FROM orders JOIN users ON users.id = orders.user_id WHERE orders.id = ?
func (r *orderRepository) FindWithItemsAndOwner(ctx context.Context, id uint) (*order.Order, error) {
	db := getDB(ctx, r.db)

	var model OrderModel
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, order.ErrOrderNotFound.WithMessagef("订单不存在: %d", id)
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	var owner struct{ Email string }
	err = db.Table("orders").
		Select("users.email AS email").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", id).
		Scan(&owner).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单所属用户失败")
	}

	o := toOrderEntity(&model)
	o.UserEmail = owner.Email
	return o, nil
}

// ListByUserID 分页查询用户订单，按下单时间倒序
func (r *orderRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	query := getDB(ctx, r.db).Model(&OrderModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	offset, limit := pageOffset(page, pageSize)
	var models []OrderModel
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Order("order_date DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// UpdateStatus 只更新状态
func (r *orderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"status":     string(o.Status),
		"updated_at": o.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单状态失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound.WithMessagef("订单不存在: %d", o.ID)
	}
	return nil
}

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return &OrderModel{
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		Status:          string(o.Status),
		OrderDate:       o.OrderDate,
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderEntity(m *OrderModel) *order.Order {
	items := make([]order.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = order.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return &order.Order{
		ID:              m.ID,
		OrderNo:         m.OrderNo,
		UserID:          m.UserID,
		Status:          order.Status(m.Status),
		OrderDate:       m.OrderDate,
		ShippingAddress: m.ShippingAddress,
		Total:           m.Total,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
