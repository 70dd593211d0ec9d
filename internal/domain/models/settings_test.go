package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettingsFromMapDefaults(t *testing.T) {
	s := SettingsFromMap(nil)
	assert.True(t, s.IFoodFeePercent.Equal(decimal.NewFromInt(25)), "fee %s", s.IFoodFeePercent)
	assert.True(t, s.DefaultLaborRatePerHour.IsZero())
	assert.True(t, s.DefaultMarginPercent.IsZero())
}

func TestSettingsFromMapParsesValues(t *testing.T) {
	raw := map[string]SettingEntry{
		SettingIFoodFeePercent:  {Value: "30", Description: "Taxa do iFood"},
		SettingLaborRatePerHour: {Value: "18.50"},
		SettingMarginPercent:    {Value: "40"},
	}

	s := SettingsFromMap(raw)
	assert.True(t, s.IFoodFeePercent.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.DefaultLaborRatePerHour.Equal(decimal.RequireFromString("18.50")))
	assert.True(t, s.DefaultMarginPercent.Equal(decimal.NewFromInt(40)))
}

func TestSettingsFromMapFallsBackOnGarbage(t *testing.T) {
	raw := map[string]SettingEntry{
		SettingIFoodFeePercent:  {Value: "twenty-five"},
		SettingLaborRatePerHour: {Value: ""},
	}

	s := SettingsFromMap(raw)
	assert.True(t, s.IFoodFeePercent.Equal(DefaultIFoodFeePercent), "fee %s", s.IFoodFeePercent)
	assert.True(t, s.DefaultLaborRatePerHour.IsZero())
}
