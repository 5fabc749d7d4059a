package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓储
func NewRoleRepository(db *gorm.DB) user.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := getDB(ctx, r.db).Model(&RoleModel{}).Count(&n).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计角色失败")
	}
	return n, nil
}

func (r *roleRepository) FindAll(ctx context.Context) ([]user.Role, error) {
	var models []RoleModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询角色失败")
	}
	return toRoles(models), nil
}

func (r *roleRepository) FindByName(ctx context.Context, name user.RoleName) (*user.Role, error) {
	var m RoleModel
	if err := getDB(ctx, r.db).Where("name = ?", string(name)).First(&m).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrRoleNotFound.WithMessagef("角色不存在: %s", name)
		}
		return nil, apperrors.Wrap(err, "查询角色失败")
	}
	return &user.Role{ID: m.ID, Name: user.RoleName(m.Name)}, nil
}

// FindByIDs 任何一个ID不存在都返回ErrRoleNotFound
func (r *roleRepository) FindByIDs(ctx context.Context, ids []uint) ([]user.Role, error) {
	var models []RoleModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询角色失败")
	}

	found := make(map[uint]struct{}, len(models))
	for _, m := range models {
		found[m.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, user.ErrRoleNotFound.WithMessagef("角色不存在: %d", id)
		}
	}
	return toRoles(models), nil
}

// CreateIfMissing 幂等插入
func (r *roleRepository) CreateIfMissing(ctx context.Context, name user.RoleName) error {
	m := RoleModel{Name: string(name)}
	if err := getDB(ctx, r.db).Where("name = ?", m.Name).FirstOrCreate(&m).Error; err != nil {
		return apperrors.Wrap(err, "创建角色失败")
	}
	return nil
}

func toRoles(models []RoleModel) []user.Role {
	roles := make([]user.Role, 0, len(models))
	for _, m := range models {
		roles = append(roles, user.Role{ID: m.ID, Name: user.RoleName(m.Name)})
	}
	return roles
}
