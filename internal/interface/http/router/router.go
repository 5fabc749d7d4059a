// Package router 组装Gin引擎：全局中间件、运维接口和/api/v1业务路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/handler"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/middleware"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	User     *handler.UserHandler
	Book     *handler.BookHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
}

// New 创建并配置Gin引擎
func New(cfg *config.Config, log *zap.Logger, h *Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	// Logger在Tracing外层，请求结束时才能取到trace_id
	r.Use(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.Tracing(),
		middleware.Metrics(),
	)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 生产环境建议关闭Swagger
	if cfg.Server.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	registerAuthRoutes(v1, h.User, auth)

	authorized := v1.Group("")
	authorized.Use(auth.RequireAuth())
	adminOnly := middleware.RequireRole(user.RoleAdmin)

	authorized.PUT("/users/update-roles", adminOnly, h.User.UpdateRoles)
	authorized.GET("/roles", adminOnly, h.User.ListRoles)

	books := authorized.Group("/books")
	{
		books.GET("", h.Book.ListBooks)
		books.GET("/search", h.Book.SearchBooks)
		books.GET("/:id", h.Book.GetBook)
		books.POST("", adminOnly, h.Book.PublishBook)
		books.PUT("/:id", adminOnly, h.Book.UpdateBook)
		books.DELETE("/:id", adminOnly, h.Book.DeleteBook)
	}

	categories := authorized.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.GET("/:id/books", h.Category.ListBooks)
		categories.POST("", adminOnly, h.Category.Create)
		categories.PUT("/:id", adminOnly, h.Category.Update)
		categories.DELETE("/:id", adminOnly, h.Category.Delete)
	}

	cart := authorized.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("", h.Cart.AddItem)
		cart.PUT("/cart-items/:id", h.Cart.UpdateItem)
		cart.DELETE("/cart-items/:id", h.Cart.RemoveItem)
	}

	// 订单状态的管理员校验在用例内完成
	orders := authorized.Group("/orders")
	{
		orders.GET("", h.Order.ListOrders)
		orders.POST("", h.Order.PlaceOrder)
		orders.PUT("/:orderId", h.Order.UpdateStatus)
		orders.GET("/:orderId/items", h.Order.ListOrderItems)
		orders.GET("/:orderId/items/:itemId", h.Order.GetOrderItem)
	}

	return r
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *handler.UserHandler, auth *middleware.AuthMiddleware) {
	g := v1.Group("/auth")
	g.POST("/registration", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", auth.RequireAuth(), h.Logout)
}
