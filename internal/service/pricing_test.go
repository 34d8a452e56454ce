package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceForDuration(t *testing.T) {
	assert.Equal(t, 45, PriceForDuration(30))
	assert.Equal(t, 60, PriceForDuration(60))
}

func TestPriceForDuration_FallsBackToHourPrice(t *testing.T) {
	// Out-of-domain durations charge the 60-minute price.
	for _, minutes := range []int{0, -1, 15, 45, 90, 120} {
		assert.Equal(t, 60, PriceForDuration(minutes), "duration %d", minutes)
	}
}
