package category

import (
	"strings"
	"time"
)

// Category 图书分类(扁平结构，不建模分类树)
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建分类，名称必填
func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update 更新名称和描述，空名称表示不修改
func (c *Category) Update(name, description string) {
	if name = strings.TrimSpace(name); name != "" {
		c.Name = name
	}
	c.Description = description
	c.UpdatedAt = time.Now()
}
