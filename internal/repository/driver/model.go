package driver

import "time"

type DriverDB struct {
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

type DriverModifyDB struct {
	ID          *int64
	IsAvailable *bool
	CurrentLat  *float64
	CurrentLong *float64
	TotalTrips  *int
	Rating      *float64
}

type CandidateDB struct {
	DriverDB
	ActiveOrderCount int
}
