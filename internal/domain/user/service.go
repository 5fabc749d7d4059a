package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// passwordCost bcrypt计算成本（每+1耗时翻倍）
var passwordCost = 12

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// RegisterParams 注册参数
type RegisterParams struct {
	Email           string
	Password        string
	RepeatPassword  string
	FirstName       string
	LastName        string
	ShippingAddress string
}

// Service 用户领域服务
type Service interface {
	// Register 用户注册，默认授予user角色
	Register(ctx context.Context, params RegisterParams) (*User, error)

	// Login 校验邮箱密码
	Login(ctx context.Context, email, password string) (*User, error)

	// UpdateRoles 管理员替换用户角色集合
	UpdateRoles(ctx context.Context, email string, roleIDs []uint) (*User, error)
}

type service struct {
	repo  Repository
	roles RoleRepository
}

// NewService 创建用户服务
func NewService(repo Repository, roles RoleRepository) Service {
	return &service{repo: repo, roles: roles}
}

// Register 用户注册
// 业务规则：
// 1. 邮箱格式校验
// 2. 两次密码一致，且8-20位包含字母和数字
// 3. 姓名必填
// 4. 邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, p RegisterParams) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(p.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if p.Password != p.RepeatPassword {
		return nil, ErrPasswordMismatch
	}
	if err := validatePasswordStrength(p.Password); err != nil {
		return nil, err
	}

	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return nil, ErrInvalidName
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), passwordCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	defaultRole, err := s.roles.FindByName(ctx, RoleUser)
	if err != nil {
		return nil, err
	}

	u := NewUser(email, string(hashed), p.FirstName, p.LastName, p.ShippingAddress, *defaultRole)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 用户登录
// 邮箱不存在与密码错误返回同一个错误，避免枚举账号
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}
	return u, nil
}

// UpdateRoles 替换角色集合
func (s *service) UpdateRoles(ctx context.Context, email string, roleIDs []uint) (*User, error) {
	if len(roleIDs) == 0 {
		return nil, ErrEmptyRoles
	}

	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.FindByIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}

	u.ReplaceRoles(roles)
	if err := s.repo.UpdateRoles(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// validatePasswordStrength 8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
