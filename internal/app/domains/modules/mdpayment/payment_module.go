package mdpayment

import (
	"context"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rppayment"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpservice"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rpuser"
)

// PaymentModule 支付模块（数据编排层）
// 封装支付编排需要的全部数据操作：前置校验查询 + 支付记录读写
type PaymentModule struct {
	paymentRepo rppayment.PaymentRepository
	userRepo    rpuser.UserRepository
	serviceRepo rpservice.ServiceRepository
	addressRepo rpaddress.AddressRepository
}

// NewPaymentModule 创建支付模块
func NewPaymentModule(
	paymentRepo rppayment.PaymentRepository,
	userRepo rpuser.UserRepository,
	serviceRepo rpservice.ServiceRepository,
	addressRepo rpaddress.AddressRepository,
) *PaymentModule {
	return &PaymentModule{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		addressRepo: addressRepo,
	}
}

// GetUser 查询用户
func (m *PaymentModule) GetUser(ctx context.Context, userID string) (*etuser.User, error) {
	return m.userRepo.GetByID(ctx, userID)
}

// GetActiveService 查询上架服务
func (m *PaymentModule) GetActiveService(ctx context.Context, serviceID string) (*etservice.Service, error) {
	return m.serviceRepo.GetActiveByID(ctx, serviceID)
}

// GetUserAddress 查询归属该用户的地址
func (m *PaymentModule) GetUserAddress(ctx context.Context, addressID, userID string) (*etaddress.Address, error) {
	return m.addressRepo.GetByIDAndUser(ctx, addressID, userID)
}

// CreatePaymentOrder 创建订单+明细+流水（同一事务）
func (m *PaymentModule) CreatePaymentOrder(ctx context.Context, order *etorder.Order, txn *ettransaction.Transaction) error {
	return m.paymentRepo.CreatePaymentOrder(ctx, order, txn)
}

// GetTransactionByOrderRef 根据对外订单号查询流水
func (m *PaymentModule) GetTransactionByOrderRef(ctx context.Context, orderRef string) (*ettransaction.Transaction, error) {
	return m.paymentRepo.GetTransactionByOrderRef(ctx, orderRef)
}

// GetOrderByID 查询订单
func (m *PaymentModule) GetOrderByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.paymentRepo.GetOrderByID(ctx, orderID)
}

// AttachGatewayOrder 回写网关流水号和原始响应
func (m *PaymentModule) AttachGatewayOrder(ctx context.Context, transactionID, gatewayTransactionID string, raw []byte) error {
	return m.paymentRepo.AttachGatewayOrder(ctx, transactionID, gatewayTransactionID, raw)
}

// ApplyOutcome 将终态结果原子地投影到流水和订单
func (m *PaymentModule) ApplyOutcome(ctx context.Context, orderRef string, txStatus ettransaction.Status, orderStatus etorder.OrderStatus, payStatus etorder.PaymentStatus, raw []byte) (bool, error) {
	return m.paymentRepo.ApplyOutcome(ctx, orderRef, txStatus, orderStatus, payStatus, raw)
}
