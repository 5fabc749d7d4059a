package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// userRepository 用户仓储实现
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如邮箱重复），转换为业务错误
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户及其角色关联
// 邮箱唯一性由数据库UNIQUE索引保证（而非应用层SELECT再INSERT）
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Email:           u.Email,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ShippingAddress: u.ShippingAddress,
	}

	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Create(model).Error; err != nil {
			return err
		}
		return insertUserRoles(tx, model.ID, u.RoleIDs())
	})
	if err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).Preload("Roles").First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// FindByEmail 根据邮箱查找用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Preload("Roles").Where("email = ?", email).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound.WithMessagef("用户不存在: %s", email)
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// UpdateRoles 整体替换user_roles关联
func (r *userRepository) UpdateRoles(ctx context.Context, u *user.User) error {
	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", u.ID).Delete(&userRoleModel{}).Error; err != nil {
			return err
		}
		if err := insertUserRoles(tx, u.ID, u.RoleIDs()); err != nil {
			return err
		}
		return tx.Model(&UserModel{}).Where("id = ?", u.ID).Update("updated_at", u.UpdatedAt).Error
	})
	if err != nil {
		return apperrors.Wrap(err, "更新用户角色失败")
	}
	return nil
}

func insertUserRoles(tx *gorm.DB, userID uint, roleIDs []uint) error {
	if len(roleIDs) == 0 {
		return nil
	}
	rows := make([]userRoleModel, 0, len(roleIDs))
	for _, id := range roleIDs {
		rows = append(rows, userRoleModel{UserID: userID, RoleID: id})
	}
	return tx.Create(&rows).Error
}

// toUserEntity GORM模型 → 领域实体
func toUserEntity(model *UserModel) *user.User {
	roles := make([]user.Role, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, user.Role{ID: r.ID, Name: user.RoleName(r.Name)})
	}
	return &user.User{
		ID:              model.ID,
		Email:           model.Email,
		Password:        model.Password,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		ShippingAddress: model.ShippingAddress,
		Roles:           roles,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
