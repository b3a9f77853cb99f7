package payment

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/model"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/services/svpayment"
	infraredis "github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/redis"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// stubStore 只覆盖 webhook 路径用到的方法
type stubStore struct {
	txn     *ettransaction.Transaction
	order   *etorder.Order
	applied int
}

func (s *stubStore) GetUser(context.Context, string) (*etuser.User, error) {
	return nil, errorx.ErrUserNotFound
}

func (s *stubStore) GetActiveService(context.Context, string) (*etservice.Service, error) {
	return nil, errorx.ErrServiceNotFound
}

func (s *stubStore) GetUserAddress(context.Context, string, string) (*etaddress.Address, error) {
	return nil, errorx.ErrAddressNotFound
}

func (s *stubStore) CreatePaymentOrder(context.Context, *etorder.Order, *ettransaction.Transaction) error {
	return nil
}

func (s *stubStore) GetTransactionByOrderRef(_ context.Context, orderRef string) (*ettransaction.Transaction, error) {
	if s.txn == nil || s.txn.OrderRef != orderRef {
		return nil, errorx.ErrTransactionNotFound
	}
	return s.txn, nil
}

func (s *stubStore) GetOrderByID(_ context.Context, orderID string) (*etorder.Order, error) {
	if s.order == nil || s.order.ID != orderID {
		return nil, errorx.ErrOrderNotFound
	}
	return s.order, nil
}

func (s *stubStore) AttachGatewayOrder(context.Context, string, string, []byte) error {
	return nil
}

func (s *stubStore) ApplyOutcome(_ context.Context, orderRef string, txStatus ettransaction.Status, orderStatus etorder.OrderStatus, payStatus etorder.PaymentStatus, _ []byte) (bool, error) {
	if s.txn == nil || s.txn.OrderRef != orderRef {
		return false, errorx.ErrTransactionNotFound
	}
	if s.txn.Status != ettransaction.StatusPending {
		return false, nil
	}
	s.txn.Status = txStatus
	s.order.Status = orderStatus
	s.order.PaymentStatus = payStatus
	s.applied++
	return true, nil
}

type nopBus struct{}

func (nopBus) Publish(context.Context, string, string) error { return nil }
func (nopBus) Open(context.Context, string) infraredis.ResultSubscription {
	return nopSubscription{}
}

type nopSubscription struct{}

func (nopSubscription) Wait(context.Context, time.Duration) (string, error) {
	return "", context.DeadlineExceeded
}
func (nopSubscription) Close() error { return nil }

type nopNotifier struct{}

func (nopNotifier) PublishPaymentResult(context.Context, *model.PaymentNotification) error {
	return nil
}

func newWebhookRouter(store svpayment.Store) (*gin.Engine, *PaymentHandler) {
	gin.SetMode(gin.TestMode)
	svc := svpayment.NewPaymentService(store, nil, nopBus{}, nopNotifier{}, logger.NewNopLogger(), "", "")
	handler := NewPaymentHandler(svc, logger.NewNopLogger())

	r := gin.New()
	r.POST("/api/v1/payment/webhook", handler.Webhook)
	return r, handler
}

func seededStore() *stubStore {
	order, _ := etorder.NewOrder("order-1", "QWK-1", "user-1", nil, 499, 0, "2026-09-01", "10:00", "")
	txn, _ := ettransaction.NewTransaction("txn-1", "order-1", "ref-1", 499, "INR")
	return &stubStore{txn: txn, order: order}
}

func postWebhook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookSuccessEvent(t *testing.T) {
	store := seededStore()
	r, _ := newWebhookRouter(store)

	w := postWebhook(t, r, `{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"ref-1"},"payment":{"payment_status":"SUCCESS"}}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ettransaction.StatusSuccess, store.txn.Status)
	assert.Equal(t, etorder.OrderStatusConfirmed, store.order.Status)
	assert.Equal(t, 1, store.applied)
}

// 重复投递同一事件返回 200 且不产生第二次转换
func TestWebhookDuplicateDeliveryIsNoop(t *testing.T) {
	store := seededStore()
	r, _ := newWebhookRouter(store)

	body := `{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"ref-1"},"payment":{"payment_status":"SUCCESS"}}}`
	first := postWebhook(t, r, body)
	second := postWebhook(t, r, body)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, store.applied)
}

func TestWebhookUnrecognizedTypeReturns200(t *testing.T) {
	store := seededStore()
	r, _ := newWebhookRouter(store)

	w := postWebhook(t, r, `{"type":"PAYMENT_CHARGES_WEBHOOK","data":{"order":{"order_id":"ref-1"}}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"received":true`)
	assert.Equal(t, ettransaction.StatusPending, store.txn.Status)
}

// 处理失败同样返回 200，失败只在服务端记录
func TestWebhookUnknownOrderRefStillReturns200(t *testing.T) {
	store := seededStore()
	r, _ := newWebhookRouter(store)

	w := postWebhook(t, r, `{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"missing"}}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"received":false`)
}

func TestWebhookMalformedBodyReturns200(t *testing.T) {
	store := seededStore()
	r, _ := newWebhookRouter(store)

	w := postWebhook(t, r, `{not json`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, ettransaction.StatusPending, store.txn.Status)
}
