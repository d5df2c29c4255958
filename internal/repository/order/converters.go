package order

import (
	"gasline/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                o.ID,
		OrderID:           o.OrderID,
		TrackingID:        o.TrackingID,
		CustomerID:        o.CustomerID,
		TankSize:          o.TankSize,
		Quantity:          o.Quantity,
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryLatitude:  o.DeliveryLatitude,
		DeliveryLongitude: o.DeliveryLongitude,
		PaymentMethod:     entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus:     entities.PaymentStatusType(o.PaymentStatus),
		Status:            entities.OrderStatusType(o.Status),
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

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.PaymentStatus != nil {
		paymentStatus := orderModify.PaymentStatus.String()
		orderDB.PaymentStatus = &paymentStatus
	}
	if orderModify.DriverID != nil {
		orderDB.DriverID = orderModify.DriverID
	}
	if orderModify.AssignedAt != nil {
		orderDB.AssignedAt = orderModify.AssignedAt
	}
	if orderModify.AcceptedAt != nil {
		orderDB.AcceptedAt = orderModify.AcceptedAt
	}
	if orderModify.DeliveredAt != nil {
		orderDB.DeliveredAt = orderModify.DeliveredAt
	}
	if orderModify.DeliveryConfirmed != nil {
		orderDB.DeliveryConfirmed = orderModify.DeliveryConfirmed
	}
	if orderModify.CancelReason != nil {
		orderDB.CancelReason = orderModify.CancelReason
	}
	if orderModify.CancelledBy != nil {
		orderDB.CancelledBy = orderModify.CancelledBy
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func statusStrings(statuses []entities.OrderStatusType) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
