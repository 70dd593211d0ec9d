package models

import "github.com/shopspring/decimal"

// Backend configuration keys recognized by the console.
const (
	SettingIFoodFeePercent  = "IFOOD_FEE_PERCENT"
	SettingLaborRatePerHour = "DEFAULT_LABOR_RATE_PER_HOUR"
	SettingMarginPercent    = "DEFAULT_MARGIN_PERCENT"
)

// SettingEntry is one raw entry of the backend's /config map.
type SettingEntry struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Settings is the typed view of the backend configuration map. Operator
// tunables get explicit defaults here so callers never read the raw map.
type Settings struct {
	IFoodFeePercent         decimal.Decimal
	DefaultLaborRatePerHour decimal.Decimal
	DefaultMarginPercent    decimal.Decimal
}

// DefaultIFoodFeePercent applies when the backend key is absent or does not
// parse as a number.
var DefaultIFoodFeePercent = decimal.NewFromInt(25)

// DefaultSettings returns the settings used when the backend configuration
// is unreachable.
func DefaultSettings() Settings {
	return Settings{IFoodFeePercent: DefaultIFoodFeePercent}
}

// SettingsFromMap decodes the stringly backend configuration into typed
// settings, falling back to defaults entry by entry.
func SettingsFromMap(raw map[string]SettingEntry) Settings {
	s := DefaultSettings()
	s.IFoodFeePercent = decimalSetting(raw, SettingIFoodFeePercent, DefaultIFoodFeePercent)
	s.DefaultLaborRatePerHour = decimalSetting(raw, SettingLaborRatePerHour, decimal.Zero)
	s.DefaultMarginPercent = decimalSetting(raw, SettingMarginPercent, decimal.Zero)
	return s
}

func decimalSetting(raw map[string]SettingEntry, key string, fallback decimal.Decimal) decimal.Decimal {
	entry, ok := raw[key]
	if !ok || entry.Value == "" {
		return fallback
	}
	value, err := decimal.NewFromString(entry.Value)
	if err != nil {
		return fallback
	}
	return value
}
