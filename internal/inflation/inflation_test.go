package inflation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	assert.InDelta(t, 4540.8, Apply(4400, 3.2), 1e-9)
	assert.InDelta(t, 7430.4, Apply(7200, 3.2), 1e-9)

	// Deflationary year
	assert.InDelta(t, 5940, Apply(6000, -1.0), 1e-9)

	// Zero rate is the identity
	assert.InDelta(t, 1234.56, Apply(1234.56, 0), 1e-9)
}

func TestApplyOptional_NilPropagates(t *testing.T) {
	assert.Nil(t, ApplyOptional(nil, 3.2))

	base := 7200.0
	got := ApplyOptional(&base, 3.2)
	assert.NotNil(t, got)
	assert.InDelta(t, 7430.4, *got, 1e-9)
}

func TestRoundToDisplay(t *testing.T) {
	assert.Equal(t, 4500.0, RoundToDisplay(4540.8))
	assert.Equal(t, 7400.0, RoundToDisplay(7430.4))
	assert.Equal(t, 5900.0, RoundToDisplay(5940))
	assert.Equal(t, 4600.0, RoundToDisplay(4550))
	assert.Equal(t, 0.0, RoundToDisplay(49.9))
}

func TestRoundToDisplay_Idempotent(t *testing.T) {
	for _, v := range []float64{0, 49, 50, 99.99, 4540.8, 7430.4, 5940, 123456.78} {
		once := RoundToDisplay(v)
		assert.Equal(t, once, RoundToDisplay(once), "value %v", v)
	}
}

func TestRoundToDisplayOptional_NilPropagates(t *testing.T) {
	assert.Nil(t, RoundToDisplayOptional(nil))

	v := 7430.4
	got := RoundToDisplayOptional(&v)
	assert.NotNil(t, got)
	assert.Equal(t, 7400.0, *got)
}

func TestFormatPrice(t *testing.T) {
	max := 7200.0
	assert.Equal(t, "$4,400 - $7,200", FormatPrice(4400, &max))
	assert.Equal(t, "$6,500", FormatPrice(6500, nil))

	small := 900.0
	assert.Equal(t, "$500 - $900", FormatPrice(500, &small))

	big := 1250000.0
	assert.Equal(t, "$1,000,000 - $1,250,000", FormatPrice(1000000, &big))
}

func TestScenario_RangeEntry(t *testing.T) {
	min, max := 4400.0, 7200.0
	newMin := Apply(min, 3.2)
	newMax := ApplyOptional(&max, 3.2)

	assert.InDelta(t, 4540.8, newMin, 1e-9)
	assert.InDelta(t, 7430.4, *newMax, 1e-9)
	assert.Equal(t, 4500.0, RoundToDisplay(newMin))
	assert.Equal(t, 7400.0, *RoundToDisplayOptional(newMax))
}

func TestScenario_SingleValueDeflation(t *testing.T) {
	newMin := Apply(6000, -1.0)
	newMax := ApplyOptional(nil, -1.0)

	assert.InDelta(t, 5940, newMin, 1e-9)
	assert.Nil(t, newMax)
	assert.Equal(t, 5900.0, RoundToDisplay(newMin))
	assert.Nil(t, RoundToDisplayOptional(newMax))
}
