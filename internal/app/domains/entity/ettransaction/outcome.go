package ettransaction

import "github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etorder"

// Outcome 归一化后的支付结果
// verify 轮询和 webhook 推送两条通道都归一化到这里，再做同一套状态投影
type Outcome string

const (
	OutcomePaid    Outcome = "paid"    // orderStatus=PAID 且 paymentStatus=SUCCESS
	OutcomeFailed  Outcome = "failed"  // paymentStatus=FAILED
	OutcomeDropped Outcome = "dropped" // paymentStatus=USER_DROPPED
	OutcomeUnknown Outcome = "unknown" // 其余/模糊状态，不做任何变更
)

// NormalizeGatewayStatus 将网关状态对归一化为 Outcome
func NormalizeGatewayStatus(orderStatus, paymentStatus string) Outcome {
	switch {
	case orderStatus == "PAID" && paymentStatus == "SUCCESS":
		return OutcomePaid
	case paymentStatus == "FAILED":
		return OutcomeFailed
	case paymentStatus == "USER_DROPPED":
		return OutcomeDropped
	default:
		return OutcomeUnknown
	}
}

// IsTerminal 该结果是否为终态结果
func (o Outcome) IsTerminal() bool {
	return o == OutcomePaid || o == OutcomeFailed || o == OutcomeDropped
}

// Projection 结果到 (流水状态, 订单状态, 订单支付状态) 的确定性投影
//
//	paid    → success   / confirmed / paid
//	failed  → failed    / cancelled / failed
//	dropped → cancelled / cancelled / failed
//
// 订单状态永远是流水状态的投影，不会单独到达终态
func (o Outcome) Projection() (Status, etorder.OrderStatus, etorder.PaymentStatus, bool) {
	switch o {
	case OutcomePaid:
		return StatusSuccess, etorder.OrderStatusConfirmed, etorder.PaymentStatusPaid, true
	case OutcomeFailed:
		return StatusFailed, etorder.OrderStatusCancelled, etorder.PaymentStatusFailed, true
	case OutcomeDropped:
		return StatusCancelled, etorder.OrderStatusCancelled, etorder.PaymentStatusFailed, true
	default:
		return StatusPending, etorder.OrderStatusPending, etorder.PaymentStatusPending, false
	}
}
