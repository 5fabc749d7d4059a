package dto

// CategoryRequest 创建/修改分类
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Fiction"`
	Description string `json:"description" binding:"max=500"`
}
