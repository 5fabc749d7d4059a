package dto

// PageQuery 分页参数
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"10"`
}

// Normalize 填充默认值
func (q *PageQuery) Normalize(defaultSize int) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultSize
	}
}
