package order

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/transaction"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/tracing"
)

const tracerName = "application/order"

// PlaceOrderUseCase 结算下单用例
// 整个项目最核心的用例:购物车 → 不可变订单
//
// 并发控制分两层:
//  1. Redis锁按用户串行化结算，同一用户的第二个请求直接返回ErrCheckoutInProgress
//  2. 保存订单与清空购物车在同一事务中，清空时比较版本号,
//     读取购物车之后有人改过明细则整体回滚(ErrCartModified)
type PlaceOrderUseCase struct {
	carts     cart.Service
	cartRepo  cart.Repository
	orders    order.Repository
	txManager transaction.Manager
	locker    order.CheckoutLocker
	publisher order.EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	carts cart.Service,
	cartRepo cart.Repository,
	orders order.Repository,
	txManager transaction.Manager,
	locker order.CheckoutLocker,
	publisher order.EventPublisher,
	log *zap.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		carts:     carts,
		cartRepo:  cartRepo,
		orders:    orders,
		txManager: txManager,
		locker:    locker,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Execute 执行下单
// 空购物车生成零明细、零金额的订单
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*OrderDetail, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PlaceOrder")
	defer span.End()

	done := metrics.TrackCheckout()

	unlock, err := uc.locker.Lock(ctx, req.UserID)
	if err != nil {
		done(checkoutResult(err), 0)
		tracing.RecordError(span, err)
		return nil, err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			uc.log.Warn("释放结算锁失败", zap.Uint("user_id", req.UserID), zap.Error(err))
		}
	}()

	var placed *order.Order
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		c, err := uc.carts.GetOrCreate(txCtx, req.UserID)
		if err != nil {
			return err
		}

		o, err := order.NewOrderFromCart(req.UserID, req.ShippingAddress, c, uc.now())
		if err != nil {
			return err
		}
		if err := uc.orders.Save(txCtx, o); err != nil {
			return err
		}
		if err := uc.cartRepo.Clear(txCtx, c); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		done(checkoutResult(err), 0)
		tracing.RecordError(span, err)
		return nil, err
	}

	done("success", len(placed.Items))
	uc.log.Info("订单已创建",
		zap.Uint("order_id", placed.ID),
		zap.String("order_no", placed.OrderNo),
		zap.Uint("user_id", placed.UserID),
		zap.String("total", placed.Total.StringFixed(2)),
		zap.Int("items", len(placed.Items)),
	)

	// 事务已提交，事件发布失败只记录日志
	if err := uc.publisher.Publish(ctx, order.NewOrderPlaced(placed)); err != nil {
		uc.log.Warn("发布下单事件失败", zap.String("order_no", placed.OrderNo), zap.Error(err))
	}

	return toOrderDetail(placed), nil
}

func checkoutResult(err error) string {
	if errors.Is(err, order.ErrCheckoutInProgress) || errors.Is(err, cart.ErrCartModified) {
		return "conflict"
	}
	return "failure"
}
