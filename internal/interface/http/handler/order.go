package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/Vitalii-Kazymyrovych/book-store/internal/application/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/dto"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/middleware"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeOrderUseCase   *apporder.PlaceOrderUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
	orderItemsUseCase   *apporder.OrderItemsUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
	pager               *Pager
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeOrderUseCase *apporder.PlaceOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	orderItemsUseCase *apporder.OrderItemsUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
	pager *Pager,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUseCase:   placeOrderUseCase,
		listOrdersUseCase:   listOrdersUseCase,
		orderItemsUseCase:   orderItemsUseCase,
		updateStatusUseCase: updateStatusUseCase,
		pager:               pager,
	}
}

// PlaceOrder 结算购物车
// @Summary      下单
// @Description  把当前购物车转换为订单并清空购物车；空购物车生成零金额订单
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PlaceOrderRequest true "收货地址"
// @Success      201 {object} response.Response{data=apporder.OrderDetail}
// @Failure      404 {object} response.Response "购物车中的图书已下架"
// @Failure      409 {object} response.Response "正在结算或购物车被并发修改"
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	caller := middleware.MustGetCaller(c)
	resp, err := h.placeOrderUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		UserID:          caller.UserID,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// ListOrders 当前用户的订单
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page      query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q dto.PageQuery
	if !h.pager.bind(c, &q) {
		return
	}

	page, err := h.listOrdersUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, page.Orders, page.Total, page.Page, page.PageSize)
}

// ListOrderItems 订单明细列表
// @Summary      订单明细列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path int true "订单ID"
// @Success      200 {object} response.Response{data=[]apporder.OrderItemResponse}
// @Failure      403 {object} response.Response "不属于当前用户"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{orderId}/items [get]
func (h *OrderHandler) ListOrderItems(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	items, err := h.orderItemsUseCase.List(c.Request.Context(), middleware.MustGetCaller(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// GetOrderItem 单个订单明细
// @Summary      订单明细
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path int true "订单ID"
// @Param        itemId  path int true "明细ID"
// @Success      200 {object} response.Response{data=apporder.OrderItemResponse}
// @Failure      404 {object} response.Response "订单或明细不存在"
// @Router       /orders/{orderId}/items/{itemId} [get]
func (h *OrderHandler) GetOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.orderItemsUseCase.Get(c.Request.Context(), middleware.MustGetCaller(c), orderID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateStatus 管理员修改订单状态
// @Summary      修改订单状态
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path int                          true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=apporder.OrderSummary}
// @Failure      400 {object} response.Response "无效的状态"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{orderId} [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.updateStatusUseCase.Execute(c.Request.Context(), middleware.MustGetCaller(c), orderID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}
