package svpayment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/model"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/gateway/cashfree"
	infraredis "github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/redis"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/idgen"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// Store 支付记录读写接口（mdpayment.PaymentModule 实现）
// 以接口注入便于测试替换
type Store interface {
	GetUser(ctx context.Context, userID string) (*etuser.User, error)
	GetActiveService(ctx context.Context, serviceID string) (*etservice.Service, error)
	GetUserAddress(ctx context.Context, addressID, userID string) (*etaddress.Address, error)
	CreatePaymentOrder(ctx context.Context, order *etorder.Order, txn *ettransaction.Transaction) error
	GetTransactionByOrderRef(ctx context.Context, orderRef string) (*ettransaction.Transaction, error)
	GetOrderByID(ctx context.Context, orderID string) (*etorder.Order, error)
	AttachGatewayOrder(ctx context.Context, transactionID, gatewayTransactionID string, raw []byte) error
	ApplyOutcome(ctx context.Context, orderRef string, txStatus ettransaction.Status, orderStatus etorder.OrderStatus, payStatus etorder.PaymentStatus, raw []byte) (bool, error)
}

// ResultBus 支付结果总线（Redis Pub/Sub 实现）
type ResultBus interface {
	Publish(ctx context.Context, channel string, message string) error
	Open(ctx context.Context, channel string) infraredis.ResultSubscription
}

// Notifier 通知任务投递接口（lmstfy 队列实现）
type Notifier interface {
	PublishPaymentResult(ctx context.Context, notification *model.PaymentNotification) error
}

// PaymentService 支付服务（状态机编排）
// 流水状态 PENDING → SUCCESS | FAILED | CANCELLED，三者均为终态；
// verify 轮询和 webhook 推送两条通道都收敛到 reconcile，同一 order_ref
// 的并发终态结果至多提交一次真实转换
type PaymentService struct {
	store     Store
	gateway   cashfree.Gateway
	resultBus ResultBus
	notifier  Notifier
	logger    logger.Logger

	returnURL string
	notifyURL string
}

// NewPaymentService 创建支付服务实例
func NewPaymentService(
	store Store,
	gateway cashfree.Gateway,
	resultBus ResultBus,
	notifier Notifier,
	log logger.Logger,
	returnURL, notifyURL string,
) *PaymentService {
	return &PaymentService{
		store:     store,
		gateway:   gateway,
		resultBus: resultBus,
		notifier:  notifier,
		logger:    log,
		returnURL: returnURL,
		notifyURL: notifyURL,
	}
}

// Initiate 发起支付（完整业务流程）
// 1. 校验用户、服务、地址归属
// 2. 同一事务创建 Order(pending/pending) + 明细 + Transaction(pending)
// 3. 网关建单；失败时记录保持 pending，调用方可重试
// 4. 回写网关流水号，返回 payment_session_id
func (s *PaymentService) Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResult, error) {
	ctx = logger.WithOrderRef(ctx, req.OrderRef)

	user, err := s.store.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	svc, err := s.store.GetActiveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	if req.AddressID != nil {
		if _, err := s.store.GetUserAddress(ctx, *req.AddressID, req.UserID); err != nil {
			return nil, err
		}
	}

	scheduledDate := req.ScheduledDate
	if scheduledDate == "" {
		scheduledDate = time.Now().Format("2006-01-02")
	}
	scheduledTime := req.ScheduledTime
	if scheduledTime == "" {
		scheduledTime = "10:00"
	}

	order, err := etorder.NewOrder(
		uuid.New().String(),
		idgen.GenerateBookingNo(),
		req.UserID,
		req.AddressID,
		req.Amount,
		0,
		scheduledDate,
		scheduledTime,
		"",
	)
	if err != nil {
		return nil, fmt.Errorf("create order entity failed: %w", err)
	}
	order.Items = []*etorder.Item{{
		ID:         uuid.New().String(),
		ServiceID:  svc.ID,
		Quantity:   1,
		UnitPrice:  req.Amount,
		TotalPrice: req.Amount,
	}}

	txn, err := ettransaction.NewTransaction(uuid.New().String(), order.ID, req.OrderRef, req.Amount, ettransaction.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("create transaction entity failed: %w", err)
	}

	if err := s.store.CreatePaymentOrder(ctx, order, txn); err != nil {
		return nil, fmt.Errorf("save payment order failed: %w", err)
	}

	gwResp, err := s.gateway.CreateOrder(ctx, &cashfree.CreateOrderRequest{
		OrderID:       req.OrderRef,
		OrderAmount:   req.Amount,
		OrderCurrency: txn.Currency,
		CustomerDetails: cashfree.CustomerDetails{
			CustomerID:    req.UserID,
			CustomerName:  firstNonEmpty(req.Customer.Name, user.Name, "Customer"),
			CustomerEmail: firstNonEmpty(req.Customer.Email, user.Email, "customer@example.com"),
			CustomerPhone: req.Customer.Phone,
		},
		OrderMeta: cashfree.OrderMeta{
			ReturnURL: s.returnURL,
			NotifyURL: s.notifyURL,
		},
	})
	if err != nil {
		// 网关建单失败：Order/Transaction 保持 pending，不会出现提前 success
		s.logger.Errorf(ctx, "gateway create order failed: order_id=%s, stage=gateway_create, error=%v", order.ID, err)
		return nil, err
	}

	if err := s.store.AttachGatewayOrder(ctx, txn.ID, gwResp.CFOrderID, gwResp.Raw); err != nil {
		// order_ref 已是 correlation 键，网关流水号缺失不阻断后续对账
		s.logger.Warnf(ctx, "attach gateway order failed: order_id=%s, transaction_id=%s, error=%v", order.ID, txn.ID, err)
	}

	s.logger.Infof(ctx, "payment initiated: order_id=%s, transaction_id=%s, cf_order_id=%s", order.ID, txn.ID, gwResp.CFOrderID)

	return &InitiateResult{
		PaymentSessionID: gwResp.PaymentSessionID,
		ReturnURL:        s.returnURL,
		OrderID:          order.ID,
		BookingNo:        order.BookingNo,
		TransactionID:    txn.ID,
	}, nil
}

// Verify 客户端发起的支付核验（轮询路径）
// 轮询网关、归一化结果、调用 reconcile，返回对账后的订单/流水投影；
// 可重复调用，终态具有粘性，不会被后续通道回退
func (s *PaymentService) Verify(ctx context.Context, orderRef string, wait time.Duration) (*OutcomeSummary, error) {
	ctx = logger.WithOrderRef(ctx, orderRef)

	txn, err := s.store.GetTransactionByOrderRef(ctx, orderRef)
	if err != nil {
		return nil, err
	}

	// Smart Wait 的订阅要先于对账建立：
	// webhook 在轮询和等待之间发布的结果落在订阅窗口内，不会空等全程
	var sub infraredis.ResultSubscription
	if wait > 0 && !txn.IsTerminal() {
		sub = s.resultBus.Open(ctx, infraredis.ResultChannel(orderRef))
		defer sub.Close()
	}

	status, err := s.gateway.GetOrderStatus(ctx, orderRef)
	if err != nil {
		return nil, err
	}

	outcome := ettransaction.NormalizeGatewayStatus(status.OrderStatus, status.PaymentStatus)
	applied, err := s.reconcile(ctx, orderRef, outcome, status.Raw)
	if err != nil {
		return nil, err
	}

	// 网关仍为 pending 时等 webhook 唤醒
	if sub != nil && !applied && !outcome.IsTerminal() {
		if _, err := sub.Wait(ctx, wait); err != nil {
			s.logger.Debugf(ctx, "smart wait elapsed without webhook result: %v", err)
		}
	}

	return s.buildSummary(ctx, orderRef, outcome, status)
}

// ApplyWebhook 网关 webhook 推送路径
// 事件分类为 {success, failed, dropped, unrecognized}，错误只记录日志，
// 不会传播到传输层（网关按未确认重投，永久失败的记录会无限堆积）
func (s *PaymentService) ApplyWebhook(ctx context.Context, event *WebhookEvent, raw []byte) error {
	outcome := classifyWebhookType(event.Type)
	if outcome == ettransaction.OutcomeUnknown {
		s.logger.Infof(ctx, "unhandled webhook type: %s", event.Type)
		return nil
	}

	orderRef := event.Data.Order.OrderID
	if orderRef == "" {
		return fmt.Errorf("webhook event missing order reference: type=%s", event.Type)
	}
	ctx = logger.WithOrderRef(ctx, orderRef)

	if _, err := s.reconcile(ctx, orderRef, outcome, raw); err != nil {
		return fmt.Errorf("reconcile webhook outcome failed: %w", err)
	}
	return nil
}

// reconcile 共用对账内核（verify 和 webhook 两条通道收敛于此）
// 终态流水上的重复调用是安全的 no-op；非终态结果不做任何变更
func (s *PaymentService) reconcile(ctx context.Context, orderRef string, outcome ettransaction.Outcome, raw []byte) (bool, error) {
	if !outcome.IsTerminal() {
		return false, nil
	}

	txStatus, orderStatus, payStatus, ok := outcome.Projection()
	if !ok {
		return false, nil
	}

	applied, err := s.store.ApplyOutcome(ctx, orderRef, txStatus, orderStatus, payStatus, raw)
	if err != nil {
		return false, err
	}
	if !applied {
		// 已到终态：幂等 no-op
		s.logger.Infof(ctx, "reconcile no-op, transaction already terminal: outcome=%s", outcome)
		return false, nil
	}

	s.logger.Infof(ctx, "reconcile applied: outcome=%s, transaction_status=%s, order_status=%s", outcome, txStatus, orderStatus)
	s.afterTransition(ctx, orderRef)
	return true, nil
}

// afterTransition 终态转换提交后的旁路动作（都是尽力而为，失败只记日志）
func (s *PaymentService) afterTransition(ctx context.Context, orderRef string) {
	txn, err := s.store.GetTransactionByOrderRef(ctx, orderRef)
	if err != nil {
		s.logger.Warnf(ctx, "load transaction after transition failed: %v", err)
		return
	}
	order, err := s.store.GetOrderByID(ctx, txn.OrderID)
	if err != nil {
		s.logger.Warnf(ctx, "load order after transition failed: %v", err)
		return
	}

	// Redis 结果频道：唤醒 Smart Wait 中的 verify 调用
	payload, _ := json.Marshal(map[string]string{
		"order_ref":          orderRef,
		"transaction_status": string(txn.Status),
		"order_status":       string(order.Status),
	})
	if err := s.resultBus.Publish(ctx, infraredis.ResultChannel(orderRef), string(payload)); err != nil {
		s.logger.Warnf(ctx, "publish payment result failed: %v", err)
	}

	// 通知队列：投递失败只记录日志，不影响对账结果
	notification := &model.PaymentNotification{
		OrderID:    order.ID,
		OrderRef:   orderRef,
		BookingNo:  order.BookingNo,
		UserID:     order.UserID,
		Status:     notifyStatus(txn.Status),
		Amount:     txn.Amount,
		Currency:   txn.Currency,
		OccurredAt: time.Now(),
	}
	if err := s.notifier.PublishPaymentResult(ctx, notification); err != nil {
		s.logger.Warnf(ctx, "publish payment notification failed: order_id=%s, error=%v", order.ID, err)
	}
}

// buildSummary 组装对账后的订单/流水投影
func (s *PaymentService) buildSummary(ctx context.Context, orderRef string, outcome ettransaction.Outcome, status *cashfree.OrderStatus) (*OutcomeSummary, error) {
	txn, err := s.store.GetTransactionByOrderRef(ctx, orderRef)
	if err != nil {
		return nil, err
	}
	order, err := s.store.GetOrderByID(ctx, txn.OrderID)
	if err != nil {
		return nil, err
	}

	return &OutcomeSummary{
		OrderRef:             orderRef,
		Outcome:              outcome,
		OrderID:              order.ID,
		BookingNo:            order.BookingNo,
		OrderStatus:          order.Status,
		PaymentStatus:        order.PaymentStatus,
		TransactionID:        txn.ID,
		TransactionStatus:    txn.Status,
		GatewayOrderStatus:   status.OrderStatus,
		GatewayPaymentStatus: status.PaymentStatus,
		CFOrderID:            status.CFOrderID,
		Amount:               status.OrderAmount,
		PaymentTime:          status.PaymentTime,
	}, nil
}

// classifyWebhookType 将 webhook 声明类型归一化为支付结果
func classifyWebhookType(webhookType string) ettransaction.Outcome {
	switch webhookType {
	case WebhookTypePaymentSuccess:
		return ettransaction.OutcomePaid
	case WebhookTypePaymentFailed:
		return ettransaction.OutcomeFailed
	case WebhookTypePaymentUserDropped:
		return ettransaction.OutcomeDropped
	default:
		return ettransaction.OutcomeUnknown
	}
}

// notifyStatus 流水状态到通知状态的映射
func notifyStatus(status ettransaction.Status) string {
	switch status {
	case ettransaction.StatusSuccess:
		return model.NotifyStatusPaid
	case ettransaction.StatusFailed:
		return model.NotifyStatusFailed
	default:
		return model.NotifyStatusCancelled
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
