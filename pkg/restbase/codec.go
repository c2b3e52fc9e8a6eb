package restbase

import (
	"encoding/json"
	"fmt"
)

// JSONCodec encodes request parameters to JSON and decodes response bodies
// from JSON. Nil parameters and empty bodies map to nil.
type JSONCodec struct{}

// Encode implements Codec.Encode.
func (JSONCodec) Encode(method string, params interface{}) ([]byte, error) {
	if params == nil {
		return nil, nil
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshaling request parameters: %w", err)
	}

	return body, nil
}

// Decode implements Codec.Decode.
func (JSONCodec) Decode(raw []byte) (interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var data interface{}

	err := json.Unmarshal(raw, &data)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling response body: %w", err)
	}

	return data, nil
}
