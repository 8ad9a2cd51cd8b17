package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ShippingMethod represents how a seller fulfils deliveries.
// Direct means the seller ships at a fixed self-managed price;
// ThirdParty means a logistics partner prices the shipment.
type ShippingMethod int

const (
	ShippingMethodDirect     ShippingMethod = 0
	ShippingMethodThirdParty ShippingMethod = 1
)

func (s ShippingMethod) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"direct", "third-party"}[s]
}

// IsValid reports whether the value is a known shipping method
func (s ShippingMethod) IsValid() bool {
	return s == ShippingMethodDirect || s == ShippingMethodThirdParty
}

func (s ShippingMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ShippingMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ShippingMethod(i)
		return nil
	}
	switch str {
	case "direct":
		*s = ShippingMethodDirect
	case "third-party":
		*s = ShippingMethodThirdParty
	}
	return nil
}

func (s ShippingMethod) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ShippingMethod) Scan(value interface{}) error {
	if value == nil {
		*s = ShippingMethodDirect
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ShippingMethod(v)
	case int:
		*s = ShippingMethod(v)
	}
	return nil
}
