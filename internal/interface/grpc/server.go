// Package grpc 运维用gRPC服务：标准健康检查与反射
package grpc

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName 健康检查中本服务的名称
const ServiceName = "bookstore.api"

// HealthCheck 依赖探活，返回nil表示可用
type HealthCheck func(ctx context.Context) error

// Server gRPC服务器
// 定期执行探活，任一依赖不可用时把整体状态置为NOT_SERVING
type Server struct {
	srv    *grpc.Server
	health *health.Server
	checks map[string]HealthCheck
	log    *zap.Logger
}

// NewServer 创建gRPC服务器
func NewServer(checks map[string]HealthCheck, log *zap.Logger) *Server {
	srv := grpc.NewServer(
		grpc.MaxRecvMsgSize(4*1024*1024),
		grpc.ConnectionTimeout(5*time.Second),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	return &Server{srv: srv, health: hs, checks: checks, log: log}
}

// Check 执行一次全部探活并更新状态
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.log.Warn("依赖探活失败", zap.String("dependency", name), zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch 按间隔探活，ctx取消时返回
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, interval)
			s.Check(checkCtx)
			cancel()
		}
	}
}

// Serve 阻塞直到监听器关闭
func (s *Server) Serve(lis net.Listener) error {
	return s.srv.Serve(lis)
}

// GracefulStop 先切到NOT_SERVING让负载均衡摘流，再等待进行中的调用结束
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
