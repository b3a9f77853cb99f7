package rporder

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"
	"github.com/qwikyankit/qwiky-backend/internal/app/infra/persistence/entity"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// CreateWithItems 创建订单和订单明细（同一事务）
func (r *OrderRepositoryImpl) CreateWithItems(ctx context.Context, order *etorder.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ToGormOrder(order)).Error; err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := tx.Create(ToGormItem(order.ID, item)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID 根据ID查询订单（含明细）
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound
		}
		return nil, err
	}

	order := ToDomainOrder(&po)
	if err := r.loadItems(ctx, []*etorder.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// ListByUser 查询用户的订单列表（含明细）
func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*etorder.Order, error) {
	var pos []entity.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		orders = append(orders, ToDomainOrder(&pos[i]))
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems 批量加载订单明细
func (r *OrderRepositoryImpl) loadItems(ctx context.Context, orders []*etorder.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]string, 0, len(orders))
	byID := make(map[string]*etorder.Order, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		byID[o.ID] = o
	}

	var pos []entity.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Find(&pos).Error; err != nil {
		return err
	}

	for i := range pos {
		po := &pos[i]
		if o, ok := byID[po.OrderID]; ok {
			o.Items = append(o.Items, &etorder.Item{
				ID:         po.ID,
				ServiceID:  po.ServiceID,
				Quantity:   po.Quantity,
				UnitPrice:  po.UnitPrice,
				TotalPrice: po.TotalPrice,
			})
		}
	}
	return nil
}

// ToGormOrder 领域对象转换为 GORM 模型
func ToGormOrder(order *etorder.Order) *entity.Order {
	return &entity.Order{
		ID:             order.ID,
		BookingNo:      order.BookingNo,
		UserID:         order.UserID,
		GuestAddressID: order.GuestAddressID,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
		ScheduledDate:  order.ScheduledDate,
		ScheduledTime:  order.ScheduledTime,
		Notes:          order.Notes,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// ToGormItem 订单明细转换为 GORM 模型
func ToGormItem(orderID string, item *etorder.Item) *entity.OrderItem {
	return &entity.OrderItem{
		ID:         item.ID,
		OrderID:    orderID,
		ServiceID:  item.ServiceID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
	}
}

// ToDomainOrder GORM 模型转换为领域对象（不含明细）
func ToDomainOrder(po *entity.Order) *etorder.Order {
	return &etorder.Order{
		ID:             po.ID,
		BookingNo:      po.BookingNo,
		UserID:         po.UserID,
		GuestAddressID: po.GuestAddressID,
		Status:         etorder.OrderStatus(po.Status),
		PaymentStatus:  etorder.PaymentStatus(po.PaymentStatus),
		Subtotal:       po.Subtotal,
		DiscountAmount: po.DiscountAmount,
		TotalAmount:    po.TotalAmount,
		ScheduledDate:  po.ScheduledDate,
		ScheduledTime:  po.ScheduledTime,
		Notes:          po.Notes,
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	}
}
