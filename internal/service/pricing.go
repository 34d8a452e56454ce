package service

// Lesson prices in whole dollars.
const (
	priceHalfHour = 45
	priceFullHour = 60
)

// PriceForDuration maps a lesson duration in minutes to its price in whole
// dollars. Unknown durations deliberately fall back to the 60-minute price.
func PriceForDuration(minutes int) int {
	switch minutes {
	case 30:
		return priceHalfHour
	case 60:
		return priceFullHour
	default:
		return priceFullHour
	}
}
