package driver_score

import (
	"gasline/internal/entities"
	"gasline/pkg/geo"
)

// Scoring weights. Tuned against dispatch quality in production, kept as
// named constants so operations can review changes in one place.
const (
	// distanceWeight dominates: distance values carry the largest magnitude,
	// so a closer driver wins unless heavily loaded.
	distanceWeight = -0.4

	// workloadPointsPerOrder converts an active order into penalty points.
	workloadPointsPerOrder = 25
	workloadWeight         = -0.2

	// experienceCap caps the experience bonus: past 100 trips more experience
	// no longer moves the score.
	experienceCap    = 100.0
	experienceWeight = 0.15
)

type ScoreFactory struct{}

func New() *ScoreFactory {
	return &ScoreFactory{}
}

// Score ranks a candidate driver for a delivery point. Higher is better.
// Pure function of the candidate and the coordinates.
func (f *ScoreFactory) Score(candidate entities.DriverCandidate, deliveryLat, deliveryLong float64) float64 {
	distance := geo.DistanceKm(
		deliveryLat,
		deliveryLong,
		candidate.Driver.CurrentLat,
		candidate.Driver.CurrentLong,
	)

	workloadScore := float64(candidate.ActiveOrderCount * workloadPointsPerOrder)

	experienceScore := float64(candidate.Driver.TotalTrips) / 100 * 100
	if experienceScore > experienceCap {
		experienceScore = experienceCap
	}

	return distance*distanceWeight + workloadScore*workloadWeight + experienceScore*experienceWeight
}
