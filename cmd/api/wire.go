//go:build wireinject
// +build wireinject

// Wire依赖注入配置，修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	appbook "github.com/Vitalii-Kazymyrovych/book-store/internal/application/book"
	appcart "github.com/Vitalii-Kazymyrovych/book-store/internal/application/cart"
	appcategory "github.com/Vitalii-Kazymyrovych/book-store/internal/application/category"
	apporder "github.com/Vitalii-Kazymyrovych/book-store/internal/application/order"
	appuser "github.com/Vitalii-Kazymyrovych/book-store/internal/application/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/transaction"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/redis"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/handler"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/middleware"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、事件与锁
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideEventPublisher,
	provideCheckoutLocker,
	provideJWTManager,
	provideGRPCServer,
	redis.NewSessionStore,
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewRoleRepository,
	mysql.NewBookRepository,
	mysql.NewCategoryRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	wire.Bind(new(transaction.Manager), new(*mysql.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	cart.NewService,
	provideStatusMachine,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	access.NewGuard,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewUpdateRolesUseCase,
	appuser.NewSeedRolesUseCase,
	appuser.NewListRolesUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewQueryBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appcategory.NewUseCase,
	appcart.NewGetCartUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewUpdateItemUseCase,
	appcart.NewRemoveItemUseCase,
	apporder.NewPlaceOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewOrderItemsUseCase,
	apporder.NewUpdateStatusUseCase,
)

// interfaceSet 中间件、处理器与路由
var interfaceSet = wire.NewSet(
	middleware.NewAuthMiddleware,
	handler.NewPager,
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewCategoryHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// initializeApp 组装整个应用，cleanup按创建的逆序释放资源
func initializeApp(cfg *config.Config, log *zap.Logger) (*app, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(app), "*"),
	)
	return nil, nil, nil
}
