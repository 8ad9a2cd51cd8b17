package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the status of a marketplace order
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusPaid      OrderStatus = 1
	OrderStatusShipped   OrderStatus = 2
	OrderStatusDelivered OrderStatus = 3
	OrderStatusCancelled OrderStatus = 4
)

func (s OrderStatus) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Pending", "Paid", "Shipped", "Delivered", "Cancelled"}[s]
}

// IsValid reports whether the value is a known order status
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = OrderStatusPending
	case "Paid":
		*s = OrderStatusPaid
	case "Shipped":
		*s = OrderStatusShipped
	case "Delivered":
		*s = OrderStatusDelivered
	case "Cancelled":
		*s = OrderStatusCancelled
	}
	return nil
}

// ParseOrderStatus converts a status name into its enum value
func ParseOrderStatus(str string) (OrderStatus, error) {
	switch str {
	case "Pending":
		return OrderStatusPending, nil
	case "Paid":
		return OrderStatusPaid, nil
	case "Shipped":
		return OrderStatusShipped, nil
	case "Delivered":
		return OrderStatusDelivered, nil
	case "Cancelled":
		return OrderStatusCancelled, nil
	}
	return OrderStatusPending, fmt.Errorf("unknown order status %q", str)
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
