package entities

import "time"

type Order struct {
	ID                int64
	OrderID           string
	TrackingID        string
	CustomerID        int64
	TankSize          string
	Quantity          int
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	PaymentMethod     PaymentMethodType
	PaymentStatus     PaymentStatusType
	Status            OrderStatusType
	DriverID          *int64
	AssignedAt        *time.Time
	AcceptedAt        *time.Time
	DeliveredAt       *time.Time
	DeliveryConfirmed bool
	CancelReason      *string
	CancelledBy       *string
	Amount            int64
	TotalAmount       int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAssigned  OrderStatusType = "assigned"
	OrderAccepted  OrderStatusType = "accepted"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition can leave the status.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// IsActive reports whether the order still occupies the customer's single
// active-order slot.
func (s OrderStatusType) IsActive() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderAccepted, OrderPickedUp, OrderInTransit:
		return true
	default:
		return false
	}
}

// ActiveOrderStatuses is the set of statuses counted by the one-active-order
// rule, in the order they occur in the lifecycle.
var ActiveOrderStatuses = []OrderStatusType{
	OrderPending,
	OrderAssigned,
	OrderAccepted,
	OrderPickedUp,
	OrderInTransit,
}

// Cancellable reports whether the order can still be cancelled. Orders that
// reached in_transit ride out to delivery.
func (s OrderStatusType) Cancellable() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderAccepted, OrderPickedUp:
		return true
	default:
		return false
	}
}

type PaymentMethodType string

const (
	PaymentCash         PaymentMethodType = "cash"
	PaymentCard         PaymentMethodType = "card"
	PaymentPOS          PaymentMethodType = "pos"
	PaymentBankTransfer PaymentMethodType = "bank_transfer"
	PaymentOnline       PaymentMethodType = "online"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "pending"
	PaymentCompleted PaymentStatusType = "completed"
	PaymentFailed    PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID                *int64
	Status            *OrderStatusType
	PaymentStatus     *PaymentStatusType
	DriverID          *int64
	AssignedAt        *time.Time
	AcceptedAt        *time.Time
	DeliveredAt       *time.Time
	DeliveryConfirmed *bool
	CancelReason      *string
	CancelledBy       *string
}

// OrderCreate carries the customer-supplied fields of a new order. Identifiers,
// status and timestamps are owned by the order service.
type OrderCreate struct {
	CustomerID        int64
	TankSize          string
	Quantity          int
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	PaymentMethod     PaymentMethodType
	Amount            int64
	TotalAmount       int64
}

// CancelActor identifies who asked for a cancellation. Customers may only
// cancel their own orders, drivers only orders assigned to them.
type CancelActor struct {
	Role ActorRoleType
	ID   int64
}

type ActorRoleType string

const (
	ActorCustomer ActorRoleType = "customer"
	ActorDriver   ActorRoleType = "driver"
	ActorAdmin    ActorRoleType = "admin"
)

func (r ActorRoleType) String() string {
	return string(r)
}

// OrderCountFilter narrows CountOrders. Nil fields are not applied.
type OrderCountFilter struct {
	CustomerID    *int64
	PaymentMethod *PaymentMethodType
	PaymentStatus *PaymentStatusType
	CreatedAfter  *time.Time
}

// ActiveOrderCheck is the result of the one-active-order lookup.
type ActiveOrderCheck struct {
	HasActive bool
	Order     *Order
}

// OrderAssignment reports a completed driver binding.
type OrderAssignment struct {
	OrderID    int64
	OrderRef   string
	DriverID   int64
	AssignedAt time.Time
	Score      float64
	Manual     bool
}
