package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 设计说明：
// 1. 这里是infrastructure层的数据模型，包含GORM tag
// 2. domain层的实体不依赖GORM，Repository负责两者之间的转换
// 3. 金额字段使用decimal(10,2)

// RoleModel 角色
type RoleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:20;not null;comment:角色名"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// UserModel 用户
type UserModel struct {
	ID              uint           `gorm:"primaryKey"`
	Email           string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password        string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName       string         `gorm:"size:100;not null"`
	LastName        string         `gorm:"size:100;not null"`
	ShippingAddress string         `gorm:"size:255"`
	Roles           []RoleModel    `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	CreatedAt       time.Time      `gorm:"comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// userRoleModel user_roles关联行，显式写入
type userRoleModel struct {
	UserID uint `gorm:"primaryKey"`
	RoleID uint `gorm:"primaryKey"`
}

func (userRoleModel) TableName() string {
	return "user_roles"
}

// CategoryModel 分类
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null;comment:分类名"`
	Description string         `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel 图书
// 1. ISBN有唯一索引，防止重复（软删除的图书同样占用ISBN）
// 2. 标题、作者建搜索索引
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string          `gorm:"index:idx_search;size:100;not null;comment:作者"`
	ISBN        string          `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);index:idx_list;not null;comment:价格"`
	Description string          `gorm:"type:text;comment:图书描述"`
	CoverImage  string          `gorm:"size:500;comment:封面图片URL"`
	Categories  []CategoryModel `gorm:"many2many:book_categories;joinForeignKey:BookID;joinReferences:CategoryID"`
	CreatedAt   time.Time       `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (BookModel) TableName() string {
	return "books"
}

// bookCategoryModel book_categories关联行，显式写入
type bookCategoryModel struct {
	BookID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

func (bookCategoryModel) TableName() string {
	return "book_categories"
}

// ShoppingCartModel 购物车
// user_id唯一索引保证每个用户最多一个购物车
// version用于乐观并发控制
type ShoppingCartModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"uniqueIndex;not null;comment:用户ID"`
	Version   int64           `gorm:"not null;default:0;comment:版本号"`
	Items     []CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShoppingCartModel) TableName() string {
	return "shopping_carts"
}

// CartItemModel 购物车明细
// Book预加载时会排除软删除的图书，此时Book为nil
type CartItemModel struct {
	ID       uint       `gorm:"primaryKey"`
	CartID   uint       `gorm:"index;not null;comment:购物车ID"`
	BookID   uint       `gorm:"index;not null;comment:图书ID"`
	Book     *BookModel `gorm:"foreignKey:BookID"`
	Quantity int        `gorm:"not null;comment:数量"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel 订单
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引(业务主键)
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	OrderNo         string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID          uint             `gorm:"index;not null;comment:买家用户ID"`
	Status          string           `gorm:"index;size:20;not null;default:NEW;comment:订单状态"`
	OrderDate       time.Time        `gorm:"index;not null;comment:下单时间"`
	ShippingAddress string           `gorm:"size:255;not null;comment:收货地址"`
	Total           decimal.Decimal  `gorm:"type:decimal(10,2);not null;comment:订单总金额"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细
// Price = 下单时单价 × 数量，历史快照
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null;comment:订单ID"`
	BookID    uint            `gorm:"index;not null;comment:图书ID"`
	BookTitle string          `gorm:"size:200;comment:下单时书名"`
	Quantity  int             `gorm:"not null;comment:购买数量"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:行金额"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
