package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/Vitalii-Kazymyrovych/book-store/docs"
	appuser "github.com/Vitalii-Kazymyrovych/book-store/internal/application/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	grpcserver "github.com/Vitalii-Kazymyrovych/book-store/internal/interface/grpc"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/logger"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/tracing"
)

const healthCheckInterval = 15 * time.Second

// app 由Wire组装的运行时对象
type app struct {
	Engine    *gin.Engine
	GRPC      *grpcserver.Server
	SeedRoles *appuser.SeedRolesUseCase
}

// @title           Bookstore API
// @version         1.0
// @description     在线书店后端：购物车结算、订单状态与访问控制
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("服务异常退出", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("关闭Tracer失败", zap.Error(err))
			}
		}()
	}

	a, cleanup, err := initializeApp(cfg, log)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	if err := a.SeedRoles.Execute(ctx); err != nil {
		return fmt.Errorf("初始化角色失败: %w", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      a.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("HTTP服务启动", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP服务异常: %w", err)
		}
	}()

	if cfg.GRPC.Port > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
		if err != nil {
			return fmt.Errorf("监听gRPC端口失败: %w", err)
		}
		go a.GRPC.Watch(ctx, healthCheckInterval)
		go func() {
			log.Info("gRPC健康检查服务启动", zap.String("addr", lis.Addr().String()))
			if err := a.GRPC.Serve(lis); err != nil {
				errCh <- fmt.Errorf("gRPC服务异常: %w", err)
			}
		}()
		defer a.GRPC.GracefulStop()
	}

	select {
	case <-ctx.Done():
		log.Info("收到关闭信号，开始优雅关闭")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP服务关闭超时: %w", err)
	}
	log.Info("服务已安全关闭")
	return nil
}
