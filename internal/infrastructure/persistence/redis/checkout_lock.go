package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// unlockScript 只有持有者(token一致)才能删除锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CheckoutLocker 基于Redis的按用户结算锁
// SET checkout:lock:{user_id} {token} NX PX {ttl}
// TTL兜底：进程崩溃后锁自动过期
type CheckoutLocker struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCheckoutLocker 创建结算锁
func NewCheckoutLocker(client *redis.Client, ttl time.Duration) *CheckoutLocker {
	return &CheckoutLocker{client: client, ttl: ttl}
}

var _ order.CheckoutLocker = (*CheckoutLocker)(nil)

func checkoutLockKey(userID uint) string {
	return fmt.Sprintf("checkout:lock:%d", userID)
}

// Lock 获取锁，已被占用返回order.ErrCheckoutInProgress
func (l *CheckoutLocker) Lock(ctx context.Context, userID uint) (func(context.Context) error, error) {
	key := checkoutLockKey(userID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "获取结算锁失败")
	}
	if !ok {
		return nil, order.ErrCheckoutInProgress
	}

	return func(ctx context.Context) error {
		if err := unlockScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return apperrors.Wrap(err, "释放结算锁失败")
		}
		return nil
	}, nil
}
