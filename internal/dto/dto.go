// Package dto holds the JSON request and response shapes of the HTTP API.
package dto

import "time"

type OrderCreate struct {
	CustomerID        int64   `json:"customer_id"`
	TankSize          string  `json:"tank_size"`
	Quantity          int     `json:"quantity"`
	DeliveryAddress   string  `json:"delivery_address"`
	DeliveryLatitude  float64 `json:"delivery_latitude"`
	DeliveryLongitude float64 `json:"delivery_longitude"`
	PaymentMethod     string  `json:"payment_method"`
	Amount            int64   `json:"amount"`
	TotalAmount       int64   `json:"total_amount"`
}

type Order struct {
	ID                int64      `json:"id"`
	OrderID           string     `json:"order_id"`
	TrackingID        string     `json:"tracking_id"`
	CustomerID        int64      `json:"customer_id"`
	TankSize          string     `json:"tank_size"`
	Quantity          int        `json:"quantity"`
	DeliveryAddress   string     `json:"delivery_address"`
	DeliveryLatitude  float64    `json:"delivery_latitude"`
	DeliveryLongitude float64    `json:"delivery_longitude"`
	PaymentMethod     string     `json:"payment_method"`
	PaymentStatus     string     `json:"payment_status"`
	Status            string     `json:"status"`
	DriverID          *int64     `json:"driver_id,omitempty"`
	AssignedAt        *time.Time `json:"assigned_at,omitempty"`
	AcceptedAt        *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	DeliveryConfirmed bool       `json:"delivery_confirmed"`
	CancelReason      *string    `json:"cancel_reason,omitempty"`
	CancelledBy       *string    `json:"cancelled_by,omitempty"`
	Amount            int64      `json:"amount"`
	TotalAmount       int64      `json:"total_amount"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type ActiveOrderCheck struct {
	HasActiveOrder bool   `json:"has_active_order"`
	Order          *Order `json:"order,omitempty"`
}

type POSEligibility struct {
	CustomerID int64 `json:"customer_id"`
	Eligible   bool  `json:"eligible"`
}

type OrderAssign struct {
	DriverID *int64 `json:"driver_id,omitempty"`
}

type OrderAssignment struct {
	OrderID    int64     `json:"order_id"`
	OrderRef   string    `json:"order_ref"`
	DriverID   int64     `json:"driver_id"`
	AssignedAt time.Time `json:"assigned_at"`
	Score      float64   `json:"score"`
	Manual     bool      `json:"manual"`
}

type OrderTransition struct {
	DriverID int64 `json:"driver_id"`
}

type OrderCancel struct {
	ActorRole string `json:"actor_role"`
	ActorID   int64  `json:"actor_id"`
	Reason    string `json:"reason"`
}

type OrderConfirmDelivery struct {
	CustomerID int64 `json:"customer_id"`
}

type DriverCreate struct {
	UserID      int64   `json:"user_id"`
	CurrentLat  float64 `json:"current_lat"`
	CurrentLong float64 `json:"current_long"`
}

type DriverCreateResponse struct {
	ID int64 `json:"id"`
}

type DriverUpdate struct {
	IsAvailable *bool    `json:"is_available,omitempty"`
	CurrentLat  *float64 `json:"current_lat,omitempty"`
	CurrentLong *float64 `json:"current_long,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

type Driver struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	IsAvailable bool      `json:"is_available"`
	CurrentLat  float64   `json:"current_lat"`
	CurrentLong float64   `json:"current_long"`
	TotalTrips  int       `json:"total_trips"`
	Rating      float64   `json:"rating"`
	LastSeenAt  time.Time `json:"last_seen_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type PaymentStatusChanged struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
}
