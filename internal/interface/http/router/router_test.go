package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	appbook "github.com/Vitalii-Kazymyrovych/book-store/internal/application/book"
	appcart "github.com/Vitalii-Kazymyrovych/book-store/internal/application/cart"
	appcategory "github.com/Vitalii-Kazymyrovych/book-store/internal/application/category"
	apporder "github.com/Vitalii-Kazymyrovych/book-store/internal/application/order"
	appuser "github.com/Vitalii-Kazymyrovych/book-store/internal/application/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/messaging"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/persistence/mysql/sqlitetest"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/handler"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/interface/http/middleware"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/jwt"
)

// memSessions 内存版会话与黑名单
type memSessions struct {
	mu        sync.Mutex
	sessions  map[uint]map[string]interface{}
	blacklist map[string]time.Time
}

func newMemSessions() *memSessions {
	return &memSessions{
		sessions:  map[uint]map[string]interface{}{},
		blacklist: map[string]time.Time{},
	}
}

func (m *memSessions) SaveSession(_ context.Context, userID uint, data map[string]interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = data
	return nil
}

func (m *memSessions) DeleteSession(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

func (m *memSessions) AddToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blacklist[token] = time.Now().Add(ttl)
	return nil
}

func (m *memSessions) IsInBlacklist(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.blacklist[token]
	return ok && time.Now().Before(exp), nil
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, uint) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

type testServer struct {
	engine      *gin.Engine
	userService user.Service
	roles       user.RoleRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Order:  config.OrderConfig{DefaultPageSize: 10},
	}
	log := zap.NewNop()
	db := sqlitetest.New(t)

	userRepo := mysql.NewUserRepository(db)
	roleRepo := mysql.NewRoleRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)

	userService := user.NewService(userRepo, roleRepo)
	bookService := book.NewService(bookRepo)
	cartService := cart.NewService(cartRepo)
	guard := access.NewGuard(cartService)
	sessions := newMemSessions()
	jwtManager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	publisher := messaging.NewNoopPublisher(log)
	pager := handler.NewPager(cfg)

	require.NoError(t, appuser.NewSeedRolesUseCase(roleRepo, log).Execute(context.Background()))

	handlers := &Handlers{
		User: handler.NewUserHandler(
			appuser.NewRegisterUseCase(userService, log),
			appuser.NewLoginUseCase(userService, jwtManager, sessions, log),
			appuser.NewLogoutUseCase(sessions),
			appuser.NewUpdateRolesUseCase(userService, guard, log),
			appuser.NewListRolesUseCase(roleRepo),
		),
		Book: handler.NewBookHandler(
			appbook.NewPublishBookUseCase(bookService, categoryRepo, log),
			appbook.NewQueryBooksUseCase(bookService),
			appbook.NewUpdateBookUseCase(bookService, categoryRepo),
			appbook.NewDeleteBookUseCase(bookService, log),
			pager,
		),
		Category: handler.NewCategoryHandler(appcategory.NewUseCase(categoryRepo, bookRepo), pager),
		Cart: handler.NewCartHandler(
			appcart.NewGetCartUseCase(cartService),
			appcart.NewAddItemUseCase(cartService, cartRepo, bookRepo),
			appcart.NewUpdateItemUseCase(cartRepo, guard),
			appcart.NewRemoveItemUseCase(cartRepo, guard),
		),
		Order: handler.NewOrderHandler(
			apporder.NewPlaceOrderUseCase(cartService, cartRepo, orderRepo, txManager, noopLocker{}, publisher, log),
			apporder.NewListOrdersUseCase(orderRepo),
			apporder.NewOrderItemsUseCase(orderRepo, guard),
			apporder.NewUpdateStatusUseCase(orderRepo, order.NewStatusMachine(false), guard, publisher, log),
			pager,
		),
	}

	return &testServer{
		engine:      New(cfg, log, handlers, middleware.NewAuthMiddleware(jwtManager, sessions)),
		userService: userService,
		roles:       roleRepo,
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *testServer) register(t *testing.T, email string) {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/v1/auth/registration", "", gin.H{
		"email":            email,
		"password":         "secret123",
		"repeat_password":  "secret123",
		"first_name":       "Test",
		"last_name":        "User",
		"shipping_address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status, env.Message)

	var resp appuser.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp.AccessToken
}

// promote 直接通过领域服务授予admin，再重新登录拿到新角色
func (s *testServer) promote(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	userRole, err := s.roles.FindByName(ctx, user.RoleUser)
	require.NoError(t, err)
	adminRole, err := s.roles.FindByName(ctx, user.RoleAdmin)
	require.NoError(t, err)

	_, err = s.userService.UpdateRoles(ctx, email, []uint{userRole.ID, adminRole.ID})
	require.NoError(t, err)
	return s.login(t, email)
}

func TestOperationalRoutes(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, env.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/cart", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestListRolesRequiresAdmin(t *testing.T) {
	s := newTestServer(t)

	s.register(t, "reader@example.com")
	token := s.login(t, "reader@example.com")
	status, env := s.do(t, http.MethodGet, "/api/v1/roles", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.NotZero(t, env.Code)

	s.register(t, "root@example.com")
	adminToken := s.promote(t, "root@example.com")
	status, env = s.do(t, http.MethodGet, "/api/v1/roles", adminToken, nil)
	assert.Equal(t, http.StatusOK, status)

	var roles []appuser.RoleResponse
	require.NoError(t, json.Unmarshal(env.Data, &roles))
	assert.Len(t, roles, 2)
}

func TestCheckoutFlow(t *testing.T) {
	s := newTestServer(t)

	s.register(t, "alice@example.com")
	s.register(t, "bob@example.com")
	alice := s.login(t, "alice@example.com")
	admin := s.promote(t, "bob@example.com")

	bookBody := gin.H{
		"title":  "Dune",
		"author": "Frank Herbert",
		"isbn":   "9780441172719",
		"price":  "34.99",
	}

	// 普通用户不能上架
	status, _ := s.do(t, http.MethodPost, "/api/v1/books", alice, bookBody)
	assert.Equal(t, http.StatusForbidden, status)

	status, env := s.do(t, http.MethodPost, "/api/v1/books", admin, bookBody)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var created appbook.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "34.99", created.Price)

	status, env = s.do(t, http.MethodPost, "/api/v1/cart", alice, gin.H{"book_id": created.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = s.do(t, http.MethodGet, "/api/v1/cart", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var cartResp appcart.CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &cartResp))
	require.Len(t, cartResp.CartItems, 1)
	assert.Equal(t, "Dune", cartResp.CartItems[0].BookTitle)

	// 管理员也不能改别人的购物车明细
	itemPath := fmt.Sprintf("/api/v1/cart/cart-items/%d", cartResp.CartItems[0].ID)
	status, _ = s.do(t, http.MethodPut, itemPath, admin, gin.H{"quantity": 5})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodPost, "/api/v1/orders", alice, gin.H{"shipping_address": "221B Baker St"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var placed apporder.OrderDetail
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, "69.98", placed.Total)
	assert.Equal(t, "NEW", placed.Status)
	require.Len(t, placed.OrderItems, 1)
	assert.Equal(t, "69.98", placed.OrderItems[0].Price)

	// 下单后购物车已清空
	_, env = s.do(t, http.MethodGet, "/api/v1/cart", alice, nil)
	require.NoError(t, json.Unmarshal(env.Data, &cartResp))
	assert.Empty(t, cartResp.CartItems)

	status, env = s.do(t, http.MethodGet, "/api/v1/orders?page=1&page_size=5", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var page struct {
		List  []apporder.OrderDetail `json:"list"`
		Total int64                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.List, 1)
	assert.Equal(t, placed.ID, page.List[0].ID)

	// 管理员可以查看任意订单明细
	itemsPath := fmt.Sprintf("/api/v1/orders/%d/items", placed.ID)
	status, _ = s.do(t, http.MethodGet, itemsPath, admin, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(t, http.MethodGet, fmt.Sprintf("%s/%d", itemsPath, placed.OrderItems[0].ID), alice, nil)
	assert.Equal(t, http.StatusOK, status)

	orderPath := fmt.Sprintf("/api/v1/orders/%d", placed.ID)
	status, _ = s.do(t, http.MethodPut, orderPath, alice, gin.H{"status": "PAID"})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodPut, orderPath, admin, gin.H{"status": "paid"})
	require.Equal(t, http.StatusOK, status, env.Message)
	var summary apporder.OrderSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "PAID", summary.Status)

	status, _ = s.do(t, http.MethodPut, orderPath, admin, gin.H{"status": "LOST"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "carol@example.com")
	token := s.login(t, "carol@example.com")

	status, _ := s.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
