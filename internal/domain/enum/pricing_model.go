package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PricingModel represents how a logistics provider prices shipments.
// It is immutable once set on a provider profile.
type PricingModel int

const (
	PricingModelFlatRate         PricingModel = 0
	PricingModelTieredByWeight   PricingModel = 1
	PricingModelTieredByDistance PricingModel = 2
)

func (m PricingModel) String() string {
	if !m.IsValid() {
		return "Unknown"
	}
	return [...]string{"FlatRate", "TieredByWeight", "TieredByDistance"}[m]
}

// IsValid reports whether the value is a known pricing model
func (m PricingModel) IsValid() bool {
	return m >= PricingModelFlatRate && m <= PricingModelTieredByDistance
}

func (m PricingModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PricingModel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PricingModel(i)
		return nil
	}
	switch str {
	case "FlatRate":
		*m = PricingModelFlatRate
	case "TieredByWeight":
		*m = PricingModelTieredByWeight
	case "TieredByDistance":
		*m = PricingModelTieredByDistance
	}
	return nil
}

func (m PricingModel) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PricingModel) Scan(value interface{}) error {
	if value == nil {
		*m = PricingModelFlatRate
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PricingModel(v)
	case int:
		*m = PricingModel(v)
	}
	return nil
}
