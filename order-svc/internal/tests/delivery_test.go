package tests

import (
	"testing"

	"luciafood-express/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestFeeTable_FeeFor(t *testing.T) {
	fees := service.NewFeeTable(map[string]float64{"Santa Lucía": 25, "Tegucigalpa": 60}, 50)

	assert.Equal(t, 25.0, fees.FeeFor("Santa Lucía"))
	assert.Equal(t, 60.0, fees.FeeFor("Tegucigalpa"))
	// Unknown zones fall back to the default fee, never an error.
	assert.Equal(t, 50.0, fees.FeeFor("UnknownZone"))
	assert.Equal(t, 50.0, fees.FeeFor(""))
}

func TestFeeTable_BuiltInDefaults(t *testing.T) {
	fees := service.NewFeeTable(nil, service.DefaultDeliveryFee)
	assert.Equal(t, 25.0, fees.FeeFor("Santa Lucía"))
	assert.Equal(t, float64(service.DefaultDeliveryFee), fees.FeeFor("Marte"))
}

func TestNewFeeTableFromJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		zone string
		want float64
	}{
		{"configured zone", `{"Centro": 15}`, "Centro", 15},
		{"default for unknown", `{"Centro": 15}`, "Afuera", 50},
		{"empty input falls back to built-ins", "", "Santa Lucía", 25},
		{"malformed input falls back to built-ins", "{not json", "Santa Lucía", 25},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fees := service.NewFeeTableFromJSON(testCase.raw, 50)
			assert.Equal(t, testCase.want, fees.FeeFor(testCase.zone))
		})
	}
}

func TestFeeTable_ZonesCopy(t *testing.T) {
	fees := service.NewFeeTable(map[string]float64{"Centro": 15}, 50)
	zones := fees.Zones()
	zones["Centro"] = 999
	assert.Equal(t, 15.0, fees.FeeFor("Centro"))
}
