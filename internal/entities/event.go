package entities

import "time"

// OrderEvent is emitted on every lifecycle change. Delivery to customers and
// drivers (push, sockets) is owned by a separate dispatcher consuming the
// events topic.
type OrderEvent struct {
	OrderID    int64          `json:"order_id"`
	OrderRef   string         `json:"order_ref"`
	CustomerID int64          `json:"customer_id"`
	DriverID   *int64         `json:"driver_id,omitempty"`
	Type       OrderEventType `json:"type"`
	At         time.Time      `json:"at"`
}

type OrderEventType string

const (
	EventOrderCreated      OrderEventType = "order.created"
	EventOrderAssigned     OrderEventType = "order.assigned"
	EventOrderAccepted     OrderEventType = "order.accepted"
	EventOrderPickedUp     OrderEventType = "order.picked_up"
	EventOrderInTransit    OrderEventType = "order.in_transit"
	EventOrderDelivered    OrderEventType = "order.delivered"
	EventDeliveryConfirmed OrderEventType = "order.delivery_confirmed"
	EventOrderCancelled    OrderEventType = "order.cancelled"
)

func (t OrderEventType) String() string {
	return string(t)
}
