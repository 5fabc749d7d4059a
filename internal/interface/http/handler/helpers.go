package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/dto"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// Pager 分页参数解析（默认每页数量来自order.default_page_size）
type Pager struct {
	defaultSize int
}

// NewPager 创建分页解析器
func NewPager(cfg *config.Config) *Pager {
	size := cfg.Order.DefaultPageSize
	if size <= 0 {
		size = 10
	}
	return &Pager{defaultSize: size}
}

// bind 解析并补齐分页参数，失败时已写入响应
func (p *Pager) bind(c *gin.Context, q *dto.PageQuery) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		response.BindError(c, err)
		return false
	}
	p.normalize(q)
	return true
}

func (p *Pager) normalize(q *dto.PageQuery) {
	q.Normalize(p.defaultSize)
}

// pathID 解析路径中的正整数ID，失败时已写入响应
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的ID: "+c.Param(name))
		return 0, false
	}
	return uint(id), true
}
