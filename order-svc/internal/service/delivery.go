package service

import "encoding/json"

// DefaultDeliveryFee applies to any zone that is not in the table.
const DefaultDeliveryFee = 50

// FeeTable maps a delivery zone to its flat fee. The table is deployment-time
// configuration: built-in defaults overridable through DELIVERY_FEE_TABLE.
type FeeTable struct {
	fees       map[string]float64
	defaultFee float64
}

func defaultZoneFees() map[string]float64 {
	return map[string]float64{
		"Santa Lucía":      25,
		"Valle de Ángeles": 35,
		"San Juancito":     45,
		"Tegucigalpa":      60,
	}
}

func NewFeeTable(fees map[string]float64, defaultFee float64) *FeeTable {
	if fees == nil {
		fees = defaultZoneFees()
	}
	return &FeeTable{fees: fees, defaultFee: defaultFee}
}

// NewFeeTableFromJSON builds a table from a JSON object of zone -> fee, for
// example `{"Santa Lucía": 25}`. Empty or malformed input falls back to the
// built-in zones.
func NewFeeTableFromJSON(raw string, defaultFee float64) *FeeTable {
	if raw == "" {
		return NewFeeTable(nil, defaultFee)
	}
	var fees map[string]float64
	if err := json.Unmarshal([]byte(raw), &fees); err != nil || len(fees) == 0 {
		return NewFeeTable(nil, defaultFee)
	}
	return NewFeeTable(fees, defaultFee)
}

// FeeFor returns the zone's flat fee, or the default fee for unknown zones.
// An unknown zone is never an error.
func (t *FeeTable) FeeFor(zone string) float64 {
	if fee, ok := t.fees[zone]; ok {
		return fee
	}
	return t.defaultFee
}

// Zones returns the configured table for display to the client.
func (t *FeeTable) Zones() map[string]float64 {
	out := make(map[string]float64, len(t.fees))
	for zone, fee := range t.fees {
		out[zone] = fee
	}
	return out
}

func (t *FeeTable) DefaultFee() float64 { return t.defaultFee }
