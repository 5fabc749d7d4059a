package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
)

// liveClient 需要真实Redis：BOOKSTORE_TEST_REDIS_ADDR=127.0.0.1:6379
func liveClient(t *testing.T) *redis.Client {
	addr := os.Getenv("BOOKSTORE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("未设置BOOKSTORE_TEST_REDIS_ADDR，跳过Redis测试")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		_ = client.Close()
	})
	return client
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:42", sessionKey(42))
	assert.Equal(t, "blacklist:abc", blacklistKey("abc"))
	assert.Equal(t, "checkout:lock:7", checkoutLockKey(7))
}

func TestSessionStore(t *testing.T) {
	client := liveClient(t)
	ctx := context.Background()
	store := NewSessionStore(client)

	require.NoError(t, store.SaveSession(ctx, 1, map[string]interface{}{"email": "a@example.com"}, time.Minute))
	session, err := store.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", session["email"])

	require.NoError(t, store.DeleteSession(ctx, 1))
	_, err = store.GetSession(ctx, 1)
	assert.Error(t, err)

	require.NoError(t, store.AddToBlacklist(ctx, "tok", time.Minute))
	revoked, err := store.IsInBlacklist(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestCheckoutLocker(t *testing.T) {
	client := liveClient(t)
	ctx := context.Background()
	locker := NewCheckoutLocker(client, time.Minute)

	unlock, err := locker.Lock(ctx, 9)
	require.NoError(t, err)

	_, err = locker.Lock(ctx, 9)
	assert.ErrorIs(t, err, order.ErrCheckoutInProgress)

	// 其他用户不受影响
	unlockOther, err := locker.Lock(ctx, 10)
	require.NoError(t, err)
	require.NoError(t, unlockOther(ctx))

	require.NoError(t, unlock(ctx))
	unlock, err = locker.Lock(ctx, 9)
	require.NoError(t, err)
	require.NoError(t, unlock(ctx))
}
