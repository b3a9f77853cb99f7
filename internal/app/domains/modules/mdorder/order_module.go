package mdorder

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rporder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rppayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpuser"
)

// OrderModule 订单模块（数据编排层）
type OrderModule struct {
	orderRepo   rporder.OrderRepository
	userRepo    rpuser.UserRepository
	serviceRepo rpservice.ServiceRepository
	addressRepo rpaddress.AddressRepository
	paymentRepo rppayment.PaymentRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	orderRepo rporder.OrderRepository,
	userRepo rpuser.UserRepository,
	serviceRepo rpservice.ServiceRepository,
	addressRepo rpaddress.AddressRepository,
	paymentRepo rppayment.PaymentRepository,
) *OrderModule {
	return &OrderModule{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		addressRepo: addressRepo,
		paymentRepo: paymentRepo,
	}
}

// CreateOrder 创建订单和明细（数据操作）
func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.CreateWithItems(ctx, order)
}

// GetOrder 查询订单（含明细）
func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// ListOrders 查询用户订单列表（含明细）
func (m *OrderModule) ListOrders(ctx context.Context, userID string) ([]*etorder.Order, error) {
	return m.orderRepo.ListByUser(ctx, userID)
}

// ListOrderTransactions 查询订单的支付流水
func (m *OrderModule) ListOrderTransactions(ctx context.Context, orderID string) ([]*ettransaction.Transaction, error) {
	return m.paymentRepo.ListTransactionsByOrder(ctx, orderID)
}

// UserExists 检查用户是否存在
func (m *OrderModule) UserExists(ctx context.Context, userID string) (bool, error) {
	return m.userRepo.Exists(ctx, userID)
}

// GetActiveService 查询上架服务
func (m *OrderModule) GetActiveService(ctx context.Context, serviceID string) (*etservice.Service, error) {
	return m.serviceRepo.GetActiveByID(ctx, serviceID)
}

// GetUserAddress 查询归属该用户的地址
func (m *OrderModule) GetUserAddress(ctx context.Context, addressID, userID string) (*etaddress.Address, error) {
	return m.addressRepo.GetByIDAndUser(ctx, addressID, userID)
}
