package order

import "time"

type OrderDB struct {
	ID                int64
	OrderID           string
	TrackingID        string
	CustomerID        int64
	TankSize          string
	Quantity          int
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	PaymentMethod     string
	PaymentStatus     string
	Status            string
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

type OrderModifyDB struct {
	ID                *int64
	Status            *string
	PaymentStatus     *string
	DriverID          *int64
	AssignedAt        *time.Time
	AcceptedAt        *time.Time
	DeliveredAt       *time.Time
	DeliveryConfirmed *bool
	CancelReason      *string
	CancelledBy       *string
}
