package svorder

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/idgen"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// Module 订单数据操作接口（mdorder.OrderModule 实现）
type Module interface {
	CreateOrder(ctx context.Context, order *etorder.Order) error
	GetOrder(ctx context.Context, orderID string) (*etorder.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*etorder.Order, error)
	ListOrderTransactions(ctx context.Context, orderID string) ([]*ettransaction.Transaction, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	GetActiveService(ctx context.Context, serviceID string) (*etservice.Service, error)
	GetUserAddress(ctx context.Context, addressID, userID string) (*etaddress.Address, error)
}

// CreateOrderParams 创建预约单参数
type CreateOrderParams struct {
	UserID        string
	ServiceID     string
	AddressID     *string
	ScheduledDate string
	ScheduledTime string
	Notes         string
}

// OrderDetail 订单详情（含明细与支付流水）
type OrderDetail struct {
	Order        *etorder.Order
	Transactions []*ettransaction.Transaction
}

// OrderService 预约订单服务
type OrderService struct {
	module Module
	logger logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(module Module, log logger.Logger) *OrderService {
	return &OrderService{
		module: module,
		logger: log,
	}
}

// CreateOrder 创建预约单
// 价格以服务目录为准，不信任客户端金额；地址可选，传入时校验归属
func (s *OrderService) CreateOrder(ctx context.Context, params *CreateOrderParams) (*etorder.Order, error) {
	exists, err := s.module.UserExists(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errorx.ErrUserNotFound
	}

	svc, err := s.module.GetActiveService(ctx, params.ServiceID)
	if err != nil {
		return nil, err
	}

	if params.AddressID != nil {
		if _, err := s.module.GetUserAddress(ctx, *params.AddressID, params.UserID); err != nil {
			return nil, err
		}
	}

	order, err := etorder.NewOrder(
		uuid.New().String(),
		idgen.GenerateBookingNo(),
		params.UserID,
		params.AddressID,
		svc.Price,
		0,
		params.ScheduledDate,
		params.ScheduledTime,
		params.Notes,
	)
	if err != nil {
		return nil, err
	}
	order.Items = []*etorder.Item{{
		ID:         uuid.New().String(),
		ServiceID:  svc.ID,
		Quantity:   1,
		UnitPrice:  svc.Price,
		TotalPrice: svc.Price,
	}}

	if err := s.module.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Infof(ctx, "order created: order_id=%s, booking_no=%s, user_id=%s", order.ID, order.BookingNo, params.UserID)
	return order, nil
}

// GetOrderDetail 查询订单详情（含支付流水）
func (s *OrderService) GetOrderDetail(ctx context.Context, orderID string) (*OrderDetail, error) {
	order, err := s.module.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.module.ListOrderTransactions(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Transactions: transactions}, nil
}

// ListUserOrders 查询用户订单列表（按创建时间倒序）
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]*etorder.Order, error) {
	return s.module.ListOrders(ctx, userID)
}
