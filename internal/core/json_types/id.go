package json_types

import (
	"encoding/json"
	"strconv"
)

// FlexID - идентификатор, который календарный API отдает то строкой, то числом
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 1 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*id = FlexID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*id = FlexID(num.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id FlexID) String() string {
	return string(id)
}

// AsInt возвращает числовое представление, если идентификатор числовой
func (id FlexID) AsInt() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
