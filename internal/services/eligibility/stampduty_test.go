package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStampDuty_FirstTimeBuyer(t *testing.T) {
	result := CalculateStampDuty(200000, true)

	assert.Equal(t, 0.02, result.Rate)
	assert.InDelta(t, 4000, result.StampDuty, 1e-9)
}

func TestCalculateStampDuty_Standard(t *testing.T) {
	result := CalculateStampDuty(200000, false)

	assert.Equal(t, 0.03, result.Rate)
	assert.InDelta(t, 6000, result.StampDuty, 1e-9)
}

func TestCalculateStampDuty_ZeroPrice(t *testing.T) {
	result := CalculateStampDuty(0, false)

	assert.Equal(t, 0.0, result.StampDuty)
	assert.Equal(t, 0.03, result.Rate)
}

func TestCalculateStampDuty_Deterministic(t *testing.T) {
	first := CalculateStampDuty(425000, true)
	second := CalculateStampDuty(425000, true)

	assert.Equal(t, first, second)
}
