package driver

import (
	"context"
	"fmt"
	"time"

	"gasline/internal/entities"
)

type Service struct {
	repository Repository
	users      UserRepository
	txManager  TxManager
}

func New(repository Repository, users UserRepository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		users:      users,
		txManager:  txManager,
	}
}

// CreateDriver registers a driver profile for an existing account. The
// account must carry the driver role and be active.
func (s *Service) CreateDriver(ctx context.Context, create entities.DriverCreate) (int64, error) {
	if create.UserID <= 0 {
		return 0, ErrMissingRequiredFields
	}
	if !isValidCoordinates(create.CurrentLat, create.CurrentLong) {
		return 0, ErrInvalidCoordinates
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, create.UserID)
		if err != nil {
			return err
		}
		if user.Role != entities.RoleDriver || !user.IsActive {
			return ErrNotDriverRole
		}

		id, err = s.repository.Create(ctx, create)
		if err != nil {
			return fmt.Errorf("create driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateDriver applies a partial update, typically the driver app's location
// heartbeat or an availability toggle. Any update refreshes last_seen_at.
func (s *Service) UpdateDriver(ctx context.Context, modify entities.DriverModify) (*entities.Driver, error) {
	if modify.ID == nil || *modify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if modify.IsAvailable == nil &&
		modify.CurrentLat == nil &&
		modify.CurrentLong == nil &&
		modify.Rating == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if modify.CurrentLat != nil || modify.CurrentLong != nil {
		if modify.CurrentLat == nil || modify.CurrentLong == nil {
			return nil, ErrInvalidCoordinates
		}
		if !isValidCoordinates(*modify.CurrentLat, *modify.CurrentLong) {
			return nil, ErrInvalidCoordinates
		}
	}
	if modify.Rating != nil && !isValidRating(*modify.Rating) {
		return nil, ErrInvalidRating
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return updated, nil
}

func (s *Service) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	d, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return d, nil
}

func (s *Service) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}
	return drivers, nil
}

// AddTrip bumps the driver's completed trip counter.
func (s *Service) AddTrip(ctx context.Context, driverID int64) error {
	if driverID <= 0 {
		return ErrInvalidDriverID
	}

	if err := s.repository.IncrementTrips(ctx, driverID); err != nil {
		return fmt.Errorf("increment trips: %w", err)
	}
	return nil
}

// MarkStaleUnavailable takes drivers silent for longer than offlineAfter out
// of the candidate pool. Called by the presence sweep.
func (s *Service) MarkStaleUnavailable(ctx context.Context, offlineAfter time.Duration) (int64, error) {
	if offlineAfter <= 0 {
		return 0, ErrMissingRequiredFields
	}

	deadline := time.Now().UTC().Add(-offlineAfter)
	affected, err := s.repository.MarkUnavailableBefore(ctx, deadline)
	if err != nil {
		return 0, fmt.Errorf("mark stale drivers unavailable: %w", err)
	}
	return affected, nil
}
