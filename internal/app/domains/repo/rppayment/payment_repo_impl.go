package rppayment

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/ettransaction"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/repo/rporder"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/entity"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
)

// PaymentRepositoryImpl 支付记录仓储实现（MySQL）
type PaymentRepositoryImpl struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付记录仓储实例
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

// CreatePaymentOrder 创建订单+明细+流水（同一事务）
func (r *PaymentRepositoryImpl) CreatePaymentOrder(ctx context.Context, order *etorder.Order, txn *ettransaction.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rporder.ToGormOrder(order)).Error; err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := tx.Create(rporder.ToGormItem(order.ID, item)).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(toGormTransaction(txn)).Error; err != nil {
			// order_ref 唯一索引冲突：同一对外订单号重复发起
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errorx.ErrDuplicateOrder
			}
			return err
		}
		return nil
	})
}

// GetTransactionByOrderRef 根据对外订单号查询流水
func (r *PaymentRepositoryImpl) GetTransactionByOrderRef(ctx context.Context, orderRef string) (*ettransaction.Transaction, error) {
	var po entity.Transaction
	err := r.db.WithContext(ctx).Where("order_ref = ?", orderRef).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrTransactionNotFound
		}
		return nil, err
	}
	return toDomainTransaction(&po), nil
}

// GetOrderByID 根据ID查询订单
func (r *PaymentRepositoryImpl) GetOrderByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound
		}
		return nil, err
	}
	return rporder.ToDomainOrder(&po), nil
}

// AttachGatewayOrder 回写网关流水号和原始响应
func (r *PaymentRepositoryImpl) AttachGatewayOrder(ctx context.Context, transactionID, gatewayTransactionID string, raw []byte) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("id = ?", transactionID).
		Updates(map[string]interface{}{
			"gateway_transaction_id": gatewayTransactionID,
			"gateway_response":       raw,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrTransactionNotFound
	}
	return nil
}

// ApplyOutcome 将终态结果原子地投影到流水和订单
//
// 并发安全：流水行的条件更新（WHERE order_ref=? AND status='pending'）依赖
// 行锁串行化同一 order_ref 上的并发 reconcile——赢者提交转换，输者 RowsAffected=0
// 观察到 no-op。流水和订单在同一数据库事务内更新，不会出现撕裂写
func (r *PaymentRepositoryImpl) ApplyOutcome(ctx context.Context, orderRef string, txStatus ettransaction.Status, orderStatus etorder.OrderStatus, payStatus etorder.PaymentStatus, raw []byte) (bool, error) {
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Transaction{}).
			Where("order_ref = ? AND status = ?", orderRef, entity.TransactionStatusPending).
			Updates(map[string]interface{}{
				"status":           string(txStatus),
				"gateway_response": raw,
				"updated_at":       time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// 流水不存在，或已到终态（幂等 no-op）
			var count int64
			if err := tx.Model(&entity.Transaction{}).Where("order_ref = ?", orderRef).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return errorx.ErrTransactionNotFound
			}
			return nil
		}

		// 流水写在前：即使订单更新失败整个事务回滚，也不会出现
		// 订单已终态而流水仍 pending 的反向不一致
		var txnPO entity.Transaction
		if err := tx.Where("order_ref = ?", orderRef).First(&txnPO).Error; err != nil {
			return err
		}

		orderResult := tx.Model(&entity.Order{}).
			Where("id = ?", txnPO.OrderID).
			Updates(map[string]interface{}{
				"status":         string(orderStatus),
				"payment_status": string(payStatus),
				"updated_at":     time.Now(),
			})
		if orderResult.Error != nil {
			return orderResult.Error
		}
		if orderResult.RowsAffected == 0 {
			return errorx.ErrOrderNotFound
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// ListTransactionsByOrder 查询订单的流水列表
func (r *PaymentRepositoryImpl) ListTransactionsByOrder(ctx context.Context, orderID string) ([]*ettransaction.Transaction, error) {
	var pos []entity.Transaction
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	txns := make([]*ettransaction.Transaction, 0, len(pos))
	for i := range pos {
		txns = append(txns, toDomainTransaction(&pos[i]))
	}
	return txns, nil
}

// toGormTransaction 领域对象转换为 GORM 模型
func toGormTransaction(txn *ettransaction.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                   txn.ID,
		OrderID:              txn.OrderID,
		OrderRef:             txn.OrderRef,
		PaymentGateway:       txn.PaymentGateway,
		Amount:               txn.Amount,
		Currency:             txn.Currency,
		Status:               string(txn.Status),
		GatewayTransactionID: txn.GatewayTransactionID,
		GatewayResponse:      datatypes.JSON(txn.GatewayResponse),
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}
}

// toDomainTransaction GORM 模型转换为领域对象
func toDomainTransaction(po *entity.Transaction) *ettransaction.Transaction {
	return &ettransaction.Transaction{
		ID:                   po.ID,
		OrderID:              po.OrderID,
		OrderRef:             po.OrderRef,
		PaymentGateway:       po.PaymentGateway,
		Amount:               po.Amount,
		Currency:             po.Currency,
		Status:               ettransaction.Status(po.Status),
		GatewayTransactionID: po.GatewayTransactionID,
		GatewayResponse:      []byte(po.GatewayResponse),
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
}
