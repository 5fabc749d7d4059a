package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appbook "github.com/Vitalii-Kazymyrovych/book-store/internal/application/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/dto"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// BookHandler 图书HTTP处理器
// 写操作只对管理员开放（路由层RequireRole）
type BookHandler struct {
	publishUseCase *appbook.PublishBookUseCase
	queryUseCase   *appbook.QueryBooksUseCase
	updateUseCase  *appbook.UpdateBookUseCase
	deleteUseCase  *appbook.DeleteBookUseCase
	pager          *Pager
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishUseCase *appbook.PublishBookUseCase,
	queryUseCase *appbook.QueryBooksUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	pager *Pager,
) *BookHandler {
	return &BookHandler{
		publishUseCase: publishUseCase,
		queryUseCase:   queryUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		pager:          pager,
	}
}

// PublishBook 上架图书
// @Summary      上架图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublishBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /books [post]
func (h *BookHandler) PublishBook(c *gin.Context) {
	var req dto.PublishBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.publishUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       *req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.queryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        page      query int    false "页码"
// @Param        page_size query int    false "每页数量"
// @Param        keyword   query string false "标题或作者关键词"
// @Param        sort_by   query string false "price_asc | price_desc | created_at_desc"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	h.pager.normalize(&req.PageQuery)

	page, err := h.queryUseCase.List(c.Request.Context(), book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, page.Books, page.Total, page.Page, page.PageSize)
}

// SearchBooks 条件搜索
// @Summary      搜索图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        titles    query []string false "书名" collectionFormat(multi)
// @Param        authors   query []string false "作者" collectionFormat(multi)
// @Param        isbns     query []string false "ISBN" collectionFormat(multi)
// @Param        min_price query string   false "最低价"
// @Param        max_price query string   false "最高价"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	h.pager.normalize(&req.PageQuery)

	params := book.SearchParams{
		Titles:   req.Titles,
		Authors:  req.Authors,
		ISBNs:    req.ISBNs,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.MinPrice != "" {
		minPrice := decimal.RequireFromString(req.MinPrice)
		params.MinPrice = &minPrice
	}
	if req.MaxPrice != "" {
		maxPrice := decimal.RequireFromString(req.MaxPrice)
		params.MaxPrice = &maxPrice
	}

	page, err := h.queryUseCase.Search(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, page.Books, page.Total, page.Page, page.PageSize)
}

// UpdateBook 修改图书
// @Summary      修改图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                    true "图书ID"
// @Param        request body dto.UpdateBookRequest  true "修改内容"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "ISBN不可修改"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.updateUseCase.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// DeleteBook 下架图书
// @Summary      下架图书
// @Tags         图书
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
