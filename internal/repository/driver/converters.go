package driver

import (
	"gasline/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
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

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}

	return &DriverModifyDB{
		ID:          driverModify.ID,
		IsAvailable: driverModify.IsAvailable,
		CurrentLat:  driverModify.CurrentLat,
		CurrentLong: driverModify.CurrentLong,
		TotalTrips:  driverModify.TotalTrips,
		Rating:      driverModify.Rating,
	}
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}

func ToDomainCandidates(candidatesDB []CandidateDB) []entities.DriverCandidate {
	if len(candidatesDB) == 0 {
		return []entities.DriverCandidate{}
	}

	result := make([]entities.DriverCandidate, len(candidatesDB))
	for i, candidateDB := range candidatesDB {
		result[i] = entities.DriverCandidate{
			Driver:           *ToDomain(&candidateDB.DriverDB),
			ActiveOrderCount: candidateDB.ActiveOrderCount,
		}
	}
	return result
}
