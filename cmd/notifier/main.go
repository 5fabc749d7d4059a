// notifier 订阅订单事件并通知用户
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/notification"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/messaging"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/logger"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zlog, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	metrics.InitMetrics()

	consumer, err := messaging.NewEventConsumer(cfg, zlog)
	if err != nil {
		zlog.Fatal("创建事件消费者失败", zap.Error(err))
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			zlog.Warn("关闭事件消费者失败", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := notification.NewHandler(notification.NewLogNotifier(zlog), zlog)
	zlog.Info("notifier启动", zap.String("driver", cfg.Events.Driver))

	if err := consumer.Run(ctx, handler.Handle); err != nil && !errors.Is(err, context.Canceled) {
		zlog.Error("消费中断", zap.Error(err))
		return
	}
	zlog.Info("notifier已退出")
}
