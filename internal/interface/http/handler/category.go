package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/Vitalii-Kazymyrovych/book-store/internal/application/category"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/dto"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	useCase *appcategory.UseCase
	pager   *Pager
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(useCase *appcategory.UseCase, pager *Pager) *CategoryHandler {
	return &CategoryHandler{useCase: useCase, pager: pager}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CategoryRequest true "分类"
// @Success      201 {object} response.Response{data=appcategory.CategoryResponse}
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	resp, err := h.useCase.Create(c.Request.Context(), appcategory.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=appcategory.CategoryResponse}
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// List 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if !h.pager.bind(c, &q) {
		return
	}
	page, err := h.useCase.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, page.Categories, page.Total, page.Page, page.PageSize)
}

// Update 修改分类
// @Summary      修改分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                 true "分类ID"
// @Param        request body dto.CategoryRequest true "分类"
// @Success      200 {object} response.Response{data=appcategory.CategoryResponse}
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	resp, err := h.useCase.Update(c.Request.Context(), id, appcategory.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// Delete 删除分类
// @Summary      删除分类
// @Tags         分类
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      204
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListBooks 分类下的图书
// @Summary      分类下的图书
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /categories/{id}/books [get]
func (h *CategoryHandler) ListBooks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.pager.bind(c, &q) {
		return
	}
	page, err := h.useCase.ListBooks(c.Request.Context(), id, q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, page.Books, page.Total, page.Page, page.PageSize)
}
