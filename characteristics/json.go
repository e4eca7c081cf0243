package characteristics

import "encoding/json"

// wireCharacteristics mirrors the persisted field name ("values": [4]float64)
// named in the scheduler's serialization contract.
type wireCharacteristics struct {
	Values [4]float64 `json:"values"`
}

// MarshalJSON implements json.Marshaler using the "values" 4-array field.
func (c Characteristics) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCharacteristics{Values: c.Values()})
}

// UnmarshalJSON implements json.Unmarshaler using the "values" 4-array field.
func (c *Characteristics) UnmarshalJSON(data []byte) error {
	var w wireCharacteristics
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := FromValues(w.Values[:])
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
