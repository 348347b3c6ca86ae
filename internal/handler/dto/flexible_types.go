package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Клиент исторически шлет числовые поля то числами, то строками
// ("category": "5", "previous_questions": ["1", "2"]). Типы ниже нормализуют
// оба представления к каноническим числовым на границе HTTP.

// FlexUint — uint, принимающий в JSON число или числовую строку
type FlexUint uint

// UnmarshalJSON реализует json.Unmarshaler для FlexUint
func (f *FlexUint) UnmarshalJSON(data []byte) error {
	n, err := parseFlexibleID(data)
	if err != nil {
		return err
	}
	*f = FlexUint(n)
	return nil
}

// FlexInt — int, принимающий в JSON число или числовую строку
type FlexInt int

// UnmarshalJSON реализует json.Unmarshaler для FlexInt
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*f = FlexInt(v)
		return nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", v)
		}
		*f = FlexInt(n)
		return nil
	default:
		return fmt.Errorf("invalid numeric value of type %T", raw)
	}
}

// IDList — список идентификаторов, принимающий числа и числовые строки
type IDList []uint

// UnmarshalJSON реализует json.Unmarshaler для IDList
func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		n, err := parseFlexibleID(item)
		if err != nil {
			return err
		}
		ids = append(ids, n)
	}
	*l = ids
	return nil
}

// parseFlexibleID разбирает JSON-значение как неотрицательный идентификатор
func parseFlexibleID(data []byte) (uint, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case float64:
		if v < 0 || v != float64(uint(v)) {
			return 0, fmt.Errorf("invalid id %v", v)
		}
		return uint(v), nil
	case string:
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", v)
		}
		return uint(n), nil
	default:
		return 0, fmt.Errorf("invalid id of type %T", raw)
	}
}
