package svpayment

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/model"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/gateway/cashfree"
	infraredis "github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/redis"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// fakeStore 内存版支付存储，ApplyOutcome 复刻条件更新语义
type fakeStore struct {
	mu      sync.Mutex
	users   map[string]*etuser.User
	svcs    map[string]*etservice.Service
	orders  map[string]*etorder.Order
	txns    map[string]*ettransaction.Transaction // key: order_ref
	onApply func()                                // ApplyOutcome 前的观测钩子
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[string]*etuser.User),
		svcs:   make(map[string]*etservice.Service),
		orders: make(map[string]*etorder.Order),
		txns:   make(map[string]*ettransaction.Transaction),
	}
}

func (s *fakeStore) GetUser(_ context.Context, userID string) (*etuser.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, errorx.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeStore) GetActiveService(_ context.Context, serviceID string) (*etservice.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.svcs[serviceID]
	if !ok {
		return nil, errorx.ErrServiceNotFound
	}
	return svc, nil
}

func (s *fakeStore) GetUserAddress(_ context.Context, _, _ string) (*etaddress.Address, error) {
	return &etaddress.Address{}, nil
}

func (s *fakeStore) CreatePaymentOrder(_ context.Context, order *etorder.Order, txn *ettransaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.txns[txn.OrderRef]; exists {
		return errorx.ErrDuplicateOrder
	}
	s.orders[order.ID] = order
	s.txns[txn.OrderRef] = txn
	return nil
}

func (s *fakeStore) GetTransactionByOrderRef(_ context.Context, orderRef string) (*ettransaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.txns[orderRef]
	if !ok {
		return nil, errorx.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (s *fakeStore) GetOrderByID(_ context.Context, orderID string) (*etorder.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, errorx.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *fakeStore) AttachGatewayOrder(_ context.Context, transactionID, gatewayTransactionID string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range s.txns {
		if txn.ID == transactionID {
			txn.GatewayTransactionID = gatewayTransactionID
			txn.GatewayResponse = raw
			return nil
		}
	}
	return errorx.ErrTransactionNotFound
}

// ApplyOutcome 条件更新：仅 pending 流水可转换，流水和订单同锁更新
func (s *fakeStore) ApplyOutcome(_ context.Context, orderRef string, txStatus ettransaction.Status, orderStatus etorder.OrderStatus, payStatus etorder.PaymentStatus, raw []byte) (bool, error) {
	if s.onApply != nil {
		s.onApply()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.txns[orderRef]
	if !ok {
		return false, errorx.ErrTransactionNotFound
	}
	if txn.Status != ettransaction.StatusPending {
		return false, nil
	}
	txn.Status = txStatus
	txn.GatewayResponse = raw
	if order, ok := s.orders[txn.OrderID]; ok {
		order.Status = orderStatus
		order.PaymentStatus = payStatus
	}
	return true, nil
}

// seed 预置一笔 pending 订单+流水
func (s *fakeStore) seed(orderRef string) {
	order, _ := etorder.NewOrder("order-1", "QWK-1", "user-1", nil, 499, 0, "2026-09-01", "10:00", "")
	txn, _ := ettransaction.NewTransaction("txn-1", order.ID, orderRef, 499, "INR")
	s.orders[order.ID] = order
	s.txns[orderRef] = txn
}

// mockGateway 函数字段式网关打桩
type mockGateway struct {
	createOrderFn      func(ctx context.Context, req *cashfree.CreateOrderRequest) (*cashfree.CreateOrderResponse, error)
	getOrderStatusFn   func(ctx context.Context, orderRef string) (*cashfree.OrderStatus, error)
	getPaymentDetailFn func(ctx context.Context, orderRef, paymentID string) (*cashfree.PaymentDetail, error)
}

func (m *mockGateway) CreateOrder(ctx context.Context, req *cashfree.CreateOrderRequest) (*cashfree.CreateOrderResponse, error) {
	return m.createOrderFn(ctx, req)
}

func (m *mockGateway) GetOrderStatus(ctx context.Context, orderRef string) (*cashfree.OrderStatus, error) {
	return m.getOrderStatusFn(ctx, orderRef)
}

func (m *mockGateway) GetPaymentDetail(ctx context.Context, orderRef, paymentID string) (*cashfree.PaymentDetail, error) {
	if m.getPaymentDetailFn != nil {
		return m.getPaymentDetailFn(ctx, orderRef, paymentID)
	}
	return nil, nil
}

// mockBus 内存版结果总线：记录发布/订阅，向已打开的订阅投递消息
type mockBus struct {
	mu        sync.Mutex
	published []string
	opened    []string
	subs      map[string][]chan string
}

func (m *mockBus) Publish(_ context.Context, channel string, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, channel)
	for _, ch := range m.subs[channel] {
		select {
		case ch <- message:
		default:
		}
	}
	return nil
}

func (m *mockBus) Open(_ context.Context, channel string) infraredis.ResultSubscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, channel)
	if m.subs == nil {
		m.subs = make(map[string][]chan string)
	}
	ch := make(chan string, 1)
	m.subs[channel] = append(m.subs[channel], ch)
	return &mockSubscription{ch: ch}
}

func (m *mockBus) openedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.opened)
}

// mockSubscription 单频道订阅打桩
type mockSubscription struct {
	ch chan string
}

func (s *mockSubscription) Wait(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case msg := <-s.ch:
		return msg, nil
	case <-timer.C:
		return "", context.DeadlineExceeded
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *mockSubscription) Close() error { return nil }

// mockNotifier 记录投递的通知
type mockNotifier struct {
	mu            sync.Mutex
	notifications []*model.PaymentNotification
}

func (m *mockNotifier) PublishPaymentResult(_ context.Context, n *model.PaymentNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notifications)
}

func newTestService(store Store, gw cashfree.Gateway) (*PaymentService, *mockBus, *mockNotifier) {
	bus := &mockBus{}
	notifier := &mockNotifier{}
	svc := NewPaymentService(store, gw, bus, notifier, logger.NewNopLogger(), "http://localhost:5173/return", "http://localhost:3000/api/v1/payment/webhook")
	return svc, bus, notifier
}

func paidStatus(orderRef string) *cashfree.OrderStatus {
	raw, _ := json.Marshal(map[string]string{"order_id": orderRef, "order_status": "PAID"})
	return &cashfree.OrderStatus{
		OrderID:       orderRef,
		CFOrderID:     "cf-100",
		OrderStatus:   "PAID",
		PaymentStatus: "SUCCESS",
		OrderAmount:   499,
		Raw:           raw,
	}
}

func TestInitiateCreatesPendingRecords(t *testing.T) {
	store := newFakeStore()
	store.users["user-1"] = &etuser.User{ID: "user-1", Mobile: "9876543210", Name: "Ankit"}
	store.svcs["svc-1"] = &etservice.Service{ID: "svc-1", Name: "Cleaning", Price: 499, IsActive: true}

	gw := &mockGateway{
		createOrderFn: func(_ context.Context, req *cashfree.CreateOrderRequest) (*cashfree.CreateOrderResponse, error) {
			assert.Equal(t, "ref-1", req.OrderID)
			assert.Equal(t, 499.0, req.OrderAmount)
			return &cashfree.CreateOrderResponse{
				OrderID:          req.OrderID,
				CFOrderID:        "cf-100",
				PaymentSessionID: "session-abc",
			}, nil
		},
	}
	svc, _, _ := newTestService(store, gw)

	result, err := svc.Initiate(context.Background(), &InitiateRequest{
		OrderRef:  "ref-1",
		UserID:    "user-1",
		ServiceID: "svc-1",
		Amount:    499,
		Customer:  CustomerInfo{Phone: "9876543210"},
	})
	require.NoError(t, err)
	assert.Equal(t, "session-abc", result.PaymentSessionID)
	assert.NotEmpty(t, result.BookingNo)

	txn, err := store.GetTransactionByOrderRef(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, ettransaction.StatusPending, txn.Status)
	assert.Equal(t, "cf-100", txn.GatewayTransactionID)

	order, err := store.GetOrderByID(context.Background(), txn.OrderID)
	require.NoError(t, err)
	assert.Equal(t, etorder.OrderStatusPending, order.Status)
	assert.Equal(t, etorder.PaymentStatusPending, order.PaymentStatus)
}

func TestInitiateGatewayFailureLeavesRecordsPending(t *testing.T) {
	store := newFakeStore()
	store.users["user-1"] = &etuser.User{ID: "user-1", Mobile: "9876543210"}
	store.svcs["svc-1"] = &etservice.Service{ID: "svc-1", Price: 499, IsActive: true}

	gw := &mockGateway{
		createOrderFn: func(_ context.Context, _ *cashfree.CreateOrderRequest) (*cashfree.CreateOrderResponse, error) {
			return nil, errorx.GatewayUnavailable(503, "upstream down")
		},
	}
	svc, _, notifier := newTestService(store, gw)

	_, err := svc.Initiate(context.Background(), &InitiateRequest{
		OrderRef:  "ref-1",
		UserID:    "user-1",
		ServiceID: "svc-1",
		Amount:    499,
		Customer:  CustomerInfo{Phone: "9876543210"},
	})
	require.Error(t, err)
	assert.True(t, errorx.IsGatewayRetryable(err))

	// 网关失败后不存在提前成功：记录保持 pending，无任何通知
	txn, err := store.GetTransactionByOrderRef(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, ettransaction.StatusPending, txn.Status)
	assert.Zero(t, notifier.count())
}

func TestInitiateDuplicateOrderRef(t *testing.T) {
	store := newFakeStore()
	store.users["user-1"] = &etuser.User{ID: "user-1", Mobile: "9876543210"}
	store.svcs["svc-1"] = &etservice.Service{ID: "svc-1", Price: 499, IsActive: true}
	store.seed("ref-1")

	gw := &mockGateway{
		createOrderFn: func(_ context.Context, req *cashfree.CreateOrderRequest) (*cashfree.CreateOrderResponse, error) {
			return &cashfree.CreateOrderResponse{OrderID: req.OrderID, PaymentSessionID: "s"}, nil
		},
	}
	svc, _, _ := newTestService(store, gw)

	_, err := svc.Initiate(context.Background(), &InitiateRequest{
		OrderRef:  "ref-1",
		UserID:    "user-1",
		ServiceID: "svc-1",
		Amount:    499,
		Customer:  CustomerInfo{Phone: "9876543210"},
	})
	assert.ErrorIs(t, err, errorx.ErrDuplicateOrder)
}

func TestVerifyAppliesPaidOutcome(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return paidStatus(orderRef), nil
		},
	}
	svc, bus, notifier := newTestService(store, gw)

	summary, err := svc.Verify(context.Background(), "ref-1", 0)
	require.NoError(t, err)
	assert.Equal(t, ettransaction.OutcomePaid, summary.Outcome)
	assert.Equal(t, ettransaction.StatusSuccess, summary.TransactionStatus)
	assert.Equal(t, etorder.OrderStatusConfirmed, summary.OrderStatus)
	assert.Equal(t, etorder.PaymentStatusPaid, summary.PaymentStatus)

	// 终态转换触发结果发布与通知投递
	assert.Len(t, bus.published, 1)
	assert.Equal(t, 1, notifier.count())
	assert.Equal(t, model.NotifyStatusPaid, notifier.notifications[0].Status)
}

func TestVerifyIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return paidStatus(orderRef), nil
		},
	}
	svc, _, notifier := newTestService(store, gw)

	for i := 0; i < 3; i++ {
		summary, err := svc.Verify(context.Background(), "ref-1", 0)
		require.NoError(t, err)
		assert.Equal(t, ettransaction.StatusSuccess, summary.TransactionStatus)
	}

	// 重复核验只产生一次真实转换
	assert.Equal(t, 1, notifier.count())
}

func TestVerifyUnknownOutcomeLeavesPending(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return &cashfree.OrderStatus{OrderID: orderRef, OrderStatus: "ACTIVE", PaymentStatus: "PENDING"}, nil
		},
	}
	svc, _, notifier := newTestService(store, gw)

	summary, err := svc.Verify(context.Background(), "ref-1", 0)
	require.NoError(t, err)
	assert.Equal(t, ettransaction.OutcomeUnknown, summary.Outcome)
	assert.Equal(t, ettransaction.StatusPending, summary.TransactionStatus)
	assert.Equal(t, etorder.OrderStatusPending, summary.OrderStatus)
	assert.Zero(t, notifier.count())
}

func TestVerifySubscribesBeforeReconcile(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return paidStatus(orderRef), nil
		},
	}
	svc, bus, _ := newTestService(store, gw)

	// 条件更新发生时订阅必须已建立，赛跑对手在这之后发布的结果才收得到
	subscribedBeforeApply := false
	store.onApply = func() {
		subscribedBeforeApply = bus.openedCount() > 0
	}

	summary, err := svc.Verify(context.Background(), "ref-1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, subscribedBeforeApply)
	assert.Equal(t, ettransaction.StatusSuccess, summary.TransactionStatus)
}

func TestVerifySmartWaitWakesOnWebhook(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return &cashfree.OrderStatus{OrderID: orderRef, OrderStatus: "ACTIVE", PaymentStatus: "PENDING"}, nil
		},
	}
	svc, _, _ := newTestService(store, gw)

	type verifyResult struct {
		summary *OutcomeSummary
		err     error
	}
	done := make(chan verifyResult, 1)
	started := time.Now()
	go func() {
		summary, err := svc.Verify(context.Background(), "ref-1", 5*time.Second)
		done <- verifyResult{summary, err}
	}()

	// 等 verify 进入等待后，webhook 通道送达终态
	time.Sleep(100 * time.Millisecond)
	event := &WebhookEvent{Type: WebhookTypePaymentSuccess}
	event.Data.Order.OrderID = "ref-1"
	require.NoError(t, svc.ApplyWebhook(context.Background(), event, []byte(`{}`)))

	result := <-done
	require.NoError(t, result.err)
	// webhook 结果唤醒等待，不会等满全程
	assert.Less(t, time.Since(started), 3*time.Second)
	assert.Equal(t, ettransaction.StatusSuccess, result.summary.TransactionStatus)
	assert.Equal(t, etorder.OrderStatusConfirmed, result.summary.OrderStatus)
}

func TestVerifyUnknownOrderRef(t *testing.T) {
	store := newFakeStore()
	gw := &mockGateway{}
	svc, _, _ := newTestService(store, gw)

	_, err := svc.Verify(context.Background(), "missing", 0)
	assert.ErrorIs(t, err, errorx.ErrTransactionNotFound)
}

func TestWebhookTerminalStatesAreSticky(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return paidStatus(orderRef), nil
		},
	}
	svc, _, notifier := newTestService(store, gw)

	// webhook 先到：success
	successEvent := &WebhookEvent{Type: WebhookTypePaymentSuccess}
	successEvent.Data.Order.OrderID = "ref-1"
	require.NoError(t, svc.ApplyWebhook(context.Background(), successEvent, []byte(`{}`)))

	// 随后 failed webhook 不能回退终态
	failedEvent := &WebhookEvent{Type: WebhookTypePaymentFailed}
	failedEvent.Data.Order.OrderID = "ref-1"
	require.NoError(t, svc.ApplyWebhook(context.Background(), failedEvent, []byte(`{}`)))

	txn, err := store.GetTransactionByOrderRef(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, ettransaction.StatusSuccess, txn.Status)
	assert.Equal(t, 1, notifier.count())
}

func TestWebhookUnrecognizedTypeIsAcked(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")
	svc, _, notifier := newTestService(store, &mockGateway{})

	event := &WebhookEvent{Type: "PAYMENT_CHARGES_WEBHOOK"}
	event.Data.Order.OrderID = "ref-1"
	require.NoError(t, svc.ApplyWebhook(context.Background(), event, []byte(`{}`)))

	// 未识别类型不触碰任何状态
	txn, err := store.GetTransactionByOrderRef(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, ettransaction.StatusPending, txn.Status)
	assert.Zero(t, notifier.count())
}

func TestWebhookMissingOrderRef(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store, &mockGateway{})

	event := &WebhookEvent{Type: WebhookTypePaymentSuccess}
	err := svc.ApplyWebhook(context.Background(), event, []byte(`{}`))
	assert.Error(t, err)
}

func TestWebhookDroppedOutcome(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")
	svc, _, notifier := newTestService(store, &mockGateway{})

	event := &WebhookEvent{Type: WebhookTypePaymentUserDropped}
	event.Data.Order.OrderID = "ref-1"
	require.NoError(t, svc.ApplyWebhook(context.Background(), event, []byte(`{}`)))

	txn, err := store.GetTransactionByOrderRef(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, ettransaction.StatusCancelled, txn.Status)

	order, err := store.GetOrderByID(context.Background(), txn.OrderID)
	require.NoError(t, err)
	assert.Equal(t, etorder.OrderStatusCancelled, order.Status)
	assert.Equal(t, etorder.PaymentStatusFailed, order.PaymentStatus)

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, model.NotifyStatusCancelled, notifier.notifications[0].Status)
}

// 赛跑收敛：verify 轮询与 webhook 并发到达，只有一条通道真正提交转换
func TestRacingChannelsConverge(t *testing.T) {
	store := newFakeStore()
	store.seed("ref-1")

	gw := &mockGateway{
		getOrderStatusFn: func(_ context.Context, orderRef string) (*cashfree.OrderStatus, error) {
			return paidStatus(orderRef), nil
		},
	}
	svc, _, notifier := newTestService(store, gw)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(viaWebhook bool) {
			defer wg.Done()
			if viaWebhook {
				event := &WebhookEvent{Type: WebhookTypePaymentSuccess}
				event.Data.Order.OrderID = "ref-1"
				_ = svc.ApplyWebhook(context.Background(), event, []byte(`{}`))
			} else {
				_, _ = svc.Verify(context.Background(), "ref-1", 0)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	txn, err := store.GetTransactionByOrderRef(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, ettransaction.StatusSuccess, txn.Status)

	order, err := store.GetOrderByID(context.Background(), txn.OrderID)
	require.NoError(t, err)
	assert.Equal(t, etorder.OrderStatusConfirmed, order.Status)
	assert.Equal(t, etorder.PaymentStatusPaid, order.PaymentStatus)

	// 两条通道收敛到同一终态，转换至多提交一次
	assert.Equal(t, 1, notifier.count())
}
