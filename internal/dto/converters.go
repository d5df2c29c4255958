package dto

import (
	"gasline/internal/entities"
)

func FromOrder(o *entities.Order) *Order {
	if o == nil {
		return nil
	}

	return &Order{
		ID:                o.ID,
		OrderID:           o.OrderID,
		TrackingID:        o.TrackingID,
		CustomerID:        o.CustomerID,
		TankSize:          o.TankSize,
		Quantity:          o.Quantity,
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryLatitude:  o.DeliveryLatitude,
		DeliveryLongitude: o.DeliveryLongitude,
		PaymentMethod:     o.PaymentMethod.String(),
		PaymentStatus:     o.PaymentStatus.String(),
		Status:            o.Status.String(),
		DriverID:          o.DriverID,
		AssignedAt:        o.AssignedAt,
		AcceptedAt:        o.AcceptedAt,
		DeliveredAt:       o.DeliveredAt,
		DeliveryConfirmed: o.DeliveryConfirmed,
		CancelReason:      o.CancelReason,
		CancelledBy:       o.CancelledBy,
		Amount:            o.Amount,
		TotalAmount:       o.TotalAmount,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromDriver(d *entities.Driver) *Driver {
	if d == nil {
		return nil
	}

	return &Driver{
		ID:          d.ID,
		UserID:      d.UserID,
		IsAvailable: d.IsAvailable,
		CurrentLat:  d.CurrentLat,
		CurrentLong: d.CurrentLong,
		TotalTrips:  d.TotalTrips,
		Rating:      d.Rating,
		LastSeenAt:  d.LastSeenAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDriverList(drivers []entities.Driver) []Driver {
	result := make([]Driver, len(drivers))
	for i := range drivers {
		result[i] = *FromDriver(&drivers[i])
	}
	return result
}

func FromOrderAssignment(a *entities.OrderAssignment) *OrderAssignment {
	if a == nil {
		return nil
	}

	return &OrderAssignment{
		OrderID:    a.OrderID,
		OrderRef:   a.OrderRef,
		DriverID:   a.DriverID,
		AssignedAt: a.AssignedAt,
		Score:      a.Score,
		Manual:     a.Manual,
	}
}
