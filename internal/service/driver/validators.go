package driver

func isValidCoordinates(lat, long float64) bool {
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}

func isValidRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}
