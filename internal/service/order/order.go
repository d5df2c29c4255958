package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"gasline/internal/entities"
)

type Service struct {
	repository  Repository
	driverTrips DriverTrips
	posPolicy   POSPolicy
	events      EventPublisher
	txManager   TxManager
	retrier     Retrier
}

func New(
	repository Repository,
	driverTrips DriverTrips,
	posPolicy POSPolicy,
	events EventPublisher,
	txManager TxManager,
	retrier Retrier,
) *Service {
	return &Service{
		repository:  repository,
		driverTrips: driverTrips,
		posPolicy:   posPolicy,
		events:      events,
		txManager:   txManager,
		retrier:     retrier,
	}
}

// CreateOrder validates the request, enforces the one-active-order rule and
// POS eligibility, and persists the order in pending status. The active-order
// check runs inside the creation transaction, so two racing requests cannot
// both commit.
func (s *Service) CreateOrder(ctx context.Context, create entities.OrderCreate) (*entities.Order, error) {
	if create.CustomerID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidTankSize(create.TankSize) || !isValidAddress(create.DeliveryAddress) {
		return nil, ErrMissingRequiredFields
	}
	if create.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !isValidCoordinates(create.DeliveryLatitude, create.DeliveryLongitude) {
		return nil, ErrInvalidCoordinates
	}
	if !isValidPaymentMethod(create.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if create.Amount <= 0 || create.TotalAmount < create.Amount {
		return nil, ErrInvalidAmount
	}

	if create.PaymentMethod == entities.PaymentPOS {
		eligible, err := s.posPolicy.CanUsePOS(ctx, create.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("check POS eligibility: %w", err)
		}
		if !eligible {
			return nil, ErrPOSNotEligible
		}
	}

	trackingID := uuid.NewString()
	newOrder := entities.Order{
		OrderID:           newOrderRef(trackingID),
		TrackingID:        trackingID,
		CustomerID:        create.CustomerID,
		TankSize:          create.TankSize,
		Quantity:          create.Quantity,
		DeliveryAddress:   create.DeliveryAddress,
		DeliveryLatitude:  create.DeliveryLatitude,
		DeliveryLongitude: create.DeliveryLongitude,
		PaymentMethod:     create.PaymentMethod,
		PaymentStatus:     entities.PaymentPending,
		Status:            entities.OrderPending,
		Amount:            create.Amount,
		TotalAmount:       create.TotalAmount,
		CreatedAt:         time.Now().UTC(),
	}

	var created *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			existing, err := s.repository.GetActiveByCustomer(ctx, create.CustomerID)
			if err != nil && !errors.Is(err, ErrOrderNotFound) {
				return fmt.Errorf("check active order: %w", err)
			}
			if existing != nil {
				return ErrActiveOrderExists
			}

			created, err = s.repository.Create(ctx, newOrder)
			if err != nil {
				return fmt.Errorf("create order: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, newOrderEvent(created, entities.EventOrderCreated))
	return created, nil
}

// CheckActiveOrder reports whether the customer currently occupies their
// active-order slot.
func (s *Service) CheckActiveOrder(ctx context.Context, customerID int64) (*entities.ActiveOrderCheck, error) {
	if customerID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	active, err := s.repository.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return &entities.ActiveOrderCheck{HasActive: false}, nil
		}
		return nil, fmt.Errorf("get active order: %w", err)
	}

	return &entities.ActiveOrderCheck{HasActive: true, Order: active}, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrMissingRequiredFields
	}

	o, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// AcceptOrder moves an assigned order to accepted on behalf of its driver.
func (s *Service) AcceptOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	if orderID <= 0 || driverID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	return s.transition(ctx, orderID,
		[]entities.OrderStatusType{entities.OrderAssigned},
		&driverID,
		entities.OrderModify{
			Status:     pointer.To(entities.OrderAccepted),
			AcceptedAt: &now,
		},
		entities.EventOrderAccepted,
	)
}

// PickUpOrder moves an accepted order to picked_up.
func (s *Service) PickUpOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	if orderID <= 0 || driverID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	return s.transition(ctx, orderID,
		[]entities.OrderStatusType{entities.OrderAccepted},
		&driverID,
		entities.OrderModify{
			Status: pointer.To(entities.OrderPickedUp),
		},
		entities.EventOrderPickedUp,
	)
}

// MarkInTransit moves the order to in_transit. Drivers that head out straight
// from acceptance skip the picked_up step.
func (s *Service) MarkInTransit(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	if orderID <= 0 || driverID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	return s.transition(ctx, orderID,
		[]entities.OrderStatusType{entities.OrderPickedUp, entities.OrderAccepted},
		&driverID,
		entities.OrderModify{
			Status: pointer.To(entities.OrderInTransit),
		},
		entities.EventOrderInTransit,
	)
}

// DeliverOrder completes the delivery: the order becomes delivered, the
// delivery timestamp is recorded and the driver's trip count grows, all in
// one transaction.
func (s *Service) DeliverOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	if orderID <= 0 || driverID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	var delivered *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			o, err := s.applyStatusUpdate(ctx, orderID,
				[]entities.OrderStatusType{entities.OrderInTransit},
				&driverID,
				entities.OrderModify{
					Status:      pointer.To(entities.OrderDelivered),
					DeliveredAt: &now,
				},
			)
			if err != nil {
				return err
			}

			if err := s.driverTrips.AddTrip(ctx, driverID); err != nil {
				return fmt.Errorf("increment driver trips: %w", err)
			}

			delivered = o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, newOrderEvent(delivered, entities.EventOrderDelivered))
	return delivered, nil
}

// ConfirmDelivery records the customer's confirmation on a delivered order.
// Idempotent: confirming twice leaves the order exactly as after the first
// call.
func (s *Service) ConfirmDelivery(ctx context.Context, orderID, customerID int64) (*entities.Order, error) {
	if orderID <= 0 || customerID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	if current.Status != entities.OrderDelivered {
		return nil, fmt.Errorf("%w: cannot confirm delivery of %s order", ErrInvalidTransition, current.Status)
	}
	if current.DeliveryConfirmed {
		return current, nil
	}

	confirmed, err := s.transition(ctx, orderID,
		[]entities.OrderStatusType{entities.OrderDelivered},
		nil,
		entities.OrderModify{
			DeliveryConfirmed: pointer.To(true),
		},
		entities.EventDeliveryConfirmed,
	)
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// CancelOrder cancels the order and records who asked and why. Orders already
// in transit, delivered or cancelled cannot be cancelled.
func (s *Service) CancelOrder(ctx context.Context, orderID int64, actor entities.CancelActor, reason string) (*entities.Order, error) {
	if orderID <= 0 || strings.TrimSpace(reason) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCancelActor(actor) {
		return nil, ErrMissingRequiredFields
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case entities.ActorCustomer:
		if current.CustomerID != actor.ID {
			return nil, ErrOrderNotFound
		}
	case entities.ActorDriver:
		if current.DriverID == nil || *current.DriverID != actor.ID {
			return nil, ErrDriverMismatch
		}
	}

	cancellable := make([]entities.OrderStatusType, 0, len(entities.ActiveOrderStatuses))
	for _, st := range entities.ActiveOrderStatuses {
		if st.Cancellable() {
			cancellable = append(cancellable, st)
		}
	}

	return s.transition(ctx, orderID,
		cancellable,
		nil,
		entities.OrderModify{
			Status:       pointer.To(entities.OrderCancelled),
			CancelReason: &reason,
			CancelledBy:  pointer.To(actor.Role.String()),
		},
		entities.EventOrderCancelled,
	)
}

// transition runs a compare-and-set status update, retrying transient
// conflicts and translating a failed check into the precise failure.
func (s *Service) transition(
	ctx context.Context,
	orderID int64,
	expected []entities.OrderStatusType,
	expectedDriverID *int64,
	modify entities.OrderModify,
	eventType entities.OrderEventType,
) (*entities.Order, error) {
	var updated *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		o, err := s.applyStatusUpdate(ctx, orderID, expected, expectedDriverID, modify)
		if err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, newOrderEvent(updated, eventType))
	return updated, nil
}

func (s *Service) applyStatusUpdate(
	ctx context.Context,
	orderID int64,
	expected []entities.OrderStatusType,
	expectedDriverID *int64,
	modify entities.OrderModify,
) (*entities.Order, error) {
	o, err := s.repository.UpdateStatus(ctx, orderID, expected, expectedDriverID, modify)
	if err != nil {
		if errors.Is(err, ErrConcurrentModification) {
			return nil, s.classifyConflict(ctx, orderID, expected, expectedDriverID)
		}
		return nil, err
	}
	return o, nil
}

// classifyConflict re-reads the order after a failed compare-and-set to tell
// a genuinely invalid transition apart from a transient race.
func (s *Service) classifyConflict(
	ctx context.Context,
	orderID int64,
	expected []entities.OrderStatusType,
	expectedDriverID *int64,
) error {
	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !statusIn(current.Status, expected) {
		return fmt.Errorf("%w: order is %s", ErrInvalidTransition, current.Status)
	}
	if expectedDriverID != nil {
		if current.DriverID == nil || *current.DriverID != *expectedDriverID {
			return ErrDriverMismatch
		}
	}

	// State matches on re-read: a concurrent writer slipped in between.
	return ErrConcurrentModification
}

func statusIn(status entities.OrderStatusType, set []entities.OrderStatusType) bool {
	for _, st := range set {
		if st == status {
			return true
		}
	}
	return false
}

func newOrderEvent(o *entities.Order, eventType entities.OrderEventType) entities.OrderEvent {
	return entities.OrderEvent{
		OrderID:    o.ID,
		OrderRef:   o.OrderID,
		CustomerID: o.CustomerID,
		DriverID:   o.DriverID,
		Type:       eventType,
		At:         time.Now().UTC(),
	}
}

func newOrderRef(trackingID string) string {
	return "GC-" + strings.ToUpper(strings.ReplaceAll(trackingID, "-", "")[:10])
}
