package parkpow

import (
	"encoding/json"
	"strconv"
)

// Value tolerates vendors returning identifiers as numbers or strings.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = Value(val)
	case float64:
		*v = Value(strconv.FormatInt(int64(val), 10))
	default:
		*v = ""
	}

	return nil
}

type PredictResponse struct {
	USDOT Value `json:"USDOT"`
	MC    Value `json:"MC"`

	Results     []Prediction `json:"results"`
	Predictions []Prediction `json:"predictions"`
}

type Prediction struct {
	USDOT Value `json:"usdot"`
	MC    Value `json:"mc"`
}
