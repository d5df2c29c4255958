package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"gasline/internal/entities"
	servicedriver "gasline/internal/service/driver"
)

const pendingSweepBatchSize = 50

type Service struct {
	orders      OrderRepository
	drivers     DriverRepository
	scorer      Scorer
	events      EventPublisher
	txManager   TxManager
	retrier     Retrier
	maxAttempts int
}

func New(
	orders OrderRepository,
	drivers DriverRepository,
	scorer Scorer,
	events EventPublisher,
	txManager TxManager,
	retrier Retrier,
	maxAttempts int,
) *Service {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Service{
		orders:      orders,
		drivers:     drivers,
		scorer:      scorer,
		events:      events,
		txManager:   txManager,
		retrier:     retrier,
		maxAttempts: maxAttempts,
	}
}

// FindBestDriver scores every eligible driver against the order's delivery
// point and returns the highest-scoring one. On an exact score tie the
// earlier candidate wins, keeping selection deterministic.
func (s *Service) FindBestDriver(ctx context.Context, order entities.Order) (*entities.DriverCandidate, float64, error) {
	candidates, err := s.drivers.ListCandidates(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list driver candidates: %w", err)
	}

	return s.pickBest(candidates, order, nil)
}

// AssignDriver binds a driver to a pending order. With driverID set the
// caller picked the driver; otherwise the best-scoring candidate is chosen,
// stepping to the next-best when a candidate goes unavailable mid-flight.
func (s *Service) AssignDriver(ctx context.Context, orderID int64, driverID *int64) (*entities.OrderAssignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.OrderPending || order.DriverID != nil {
		return nil, ErrOrderNotPending
	}

	if driverID != nil {
		return s.assignManual(ctx, order, *driverID)
	}
	return s.assignAuto(ctx, order)
}

// ProcessPendingOrders sweeps unassigned pending orders oldest-first and
// auto-assigns each. A depleted driver pool ends the sweep early; the orders
// stay pending for the next cycle. Returns the number of orders assigned.
func (s *Service) ProcessPendingOrders(ctx context.Context) (int, error) {
	pending, err := s.orders.ListPending(ctx, pendingSweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending orders: %w", err)
	}

	var (
		assigned int
		sweepErr error
	)
	for _, order := range pending {
		if _, err := s.assignAuto(ctx, &order); err != nil {
			if errors.Is(err, ErrNoDriverAvailable) {
				break
			}
			// A racing assignment is fine, anything else is reported.
			if !errors.Is(err, ErrConcurrentModification) {
				sweepErr = errors.Join(sweepErr, fmt.Errorf("assign order %d: %w", order.ID, err))
			}
			continue
		}
		assigned++
	}

	return assigned, sweepErr
}

func (s *Service) assignManual(ctx context.Context, order *entities.Order, driverID int64) (*entities.OrderAssignment, error) {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, servicedriver.ErrDriverNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	if !driver.IsAvailable {
		return nil, ErrDriverUnavailable
	}

	return s.bind(ctx, order, driverID, 0, true)
}

func (s *Service) assignAuto(ctx context.Context, order *entities.Order) (*entities.OrderAssignment, error) {
	excluded := make(map[int64]struct{})

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		candidates, err := s.drivers.ListCandidates(ctx)
		if err != nil {
			return nil, fmt.Errorf("list driver candidates: %w", err)
		}

		best, score, err := s.pickBest(candidates, *order, excluded)
		if err != nil {
			return nil, err
		}

		assignment, err := s.bind(ctx, order, best.ID, score, false)
		if err != nil {
			if errors.Is(err, ErrDriverUnavailable) {
				excluded[best.ID] = struct{}{}
				continue
			}
			return nil, err
		}
		return assignment, nil
	}

	return nil, ErrNoDriverAvailable
}

func (s *Service) pickBest(
	candidates []entities.DriverCandidate,
	order entities.Order,
	excluded map[int64]struct{},
) (*entities.DriverCandidate, float64, error) {
	var (
		best      *entities.DriverCandidate
		bestScore float64
	)
	for i := range candidates {
		if _, skip := excluded[candidates[i].ID]; skip {
			continue
		}

		score := s.scorer.Score(candidates[i], order.DeliveryLatitude, order.DeliveryLongitude)
		if best == nil || score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}
	if best == nil {
		return nil, 0, ErrNoDriverAvailable
	}

	return best, bestScore, nil
}

// bind attaches the driver inside a serializable transaction, re-checking the
// driver's availability against the same snapshot the order update sees.
func (s *Service) bind(ctx context.Context, order *entities.Order, driverID int64, score float64, manual bool) (*entities.OrderAssignment, error) {
	assignedAt := time.Now().UTC()

	var bound *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			driver, err := s.drivers.GetByID(ctx, driverID)
			if err != nil {
				if errors.Is(err, servicedriver.ErrDriverNotFound) {
					return ErrDriverNotFound
				}
				return err
			}
			if !driver.IsAvailable {
				return ErrDriverUnavailable
			}

			bound, err = s.orders.Bind(ctx, order.ID, driverID, entities.OrderModify{
				Status:     pointer.To(entities.OrderAssigned),
				DriverID:   &driverID,
				AssignedAt: &assignedAt,
			})
			if err != nil {
				return err
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, entities.OrderEvent{
		OrderID:    bound.ID,
		OrderRef:   bound.OrderID,
		CustomerID: bound.CustomerID,
		DriverID:   bound.DriverID,
		Type:       entities.EventOrderAssigned,
		At:         assignedAt,
	})

	return &entities.OrderAssignment{
		OrderID:    bound.ID,
		OrderRef:   bound.OrderID,
		DriverID:   driverID,
		AssignedAt: assignedAt,
		Score:      score,
		Manual:     manual,
	}, nil
}
