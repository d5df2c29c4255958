package entities

import "time"

type Driver struct {
	ID          int64
	UserID      int64
	IsAvailable bool
	CurrentLat  float64
	CurrentLong float64
	TotalTrips  int
	Rating      float64
	LastSeenAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverModify struct {
	ID          *int64
	IsAvailable *bool
	CurrentLat  *float64
	CurrentLong *float64
	TotalTrips  *int
	Rating      *float64
}

// DriverCreate carries the fields needed to register a driver profile for an
// existing driver account.
type DriverCreate struct {
	UserID      int64
	CurrentLat  float64
	CurrentLong float64
}

// DriverCandidate is a driver eligible for assignment together with the
// workload the matching query aggregated for it.
type DriverCandidate struct {
	Driver
	ActiveOrderCount int
}
