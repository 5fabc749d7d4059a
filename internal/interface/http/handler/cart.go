package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/Vitalii-Kazymyrovych/book-store/internal/application/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/dto"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/middleware"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 所有接口都只操作调用者自己的购物车
type CartHandler struct {
	getCartUseCase    *appcart.GetCartUseCase
	addItemUseCase    *appcart.AddItemUseCase
	updateItemUseCase *appcart.UpdateItemUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	getCartUseCase *appcart.GetCartUseCase,
	addItemUseCase *appcart.AddItemUseCase,
	updateItemUseCase *appcart.UpdateItemUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
) *CartHandler {
	return &CartHandler{
		getCartUseCase:    getCartUseCase,
		addItemUseCase:    addItemUseCase,
		updateItemUseCase: updateItemUseCase,
		removeItemUseCase: removeItemUseCase,
	}
}

// GetCart 查看购物车，首次访问时创建
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	resp, err := h.getCartUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  同一本书重复加入会产生新的明细行
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "图书与数量"
// @Success      201 {object} response.Response{data=appcart.CartItemResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /cart [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.addItemUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c), appcart.AddItemRequest{
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// UpdateItem 修改明细数量
// @Summary      修改购物车明细数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                       true "明细ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response{data=appcart.CartItemResponse}
// @Failure      403 {object} response.Response "不属于当前用户"
// @Failure      404 {object} response.Response "明细不存在"
// @Router       /cart/cart-items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.updateItemUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// RemoveItem 删除明细
// @Summary      删除购物车明细
// @Tags         购物车
// @Security     BearerAuth
// @Param        id path int true "明细ID"
// @Success      204
// @Failure      403 {object} response.Response "不属于当前用户"
// @Router       /cart/cart-items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.removeItemUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
