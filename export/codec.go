package export

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeJSON encodes records as a JSON array.
func EncodeJSON(records []Record) ([]byte, error) {
	return json.Marshal(records)
}

// DecodeJSON parses a JSON array of records.
func DecodeJSON(data []byte) ([]Record, error) {
	var out []Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecords, err)
	}
	return out, nil
}

// EncodeMsgpack encodes records as a MessagePack array.
func EncodeMsgpack(records []Record) ([]byte, error) {
	return msgpack.Marshal(records)
}

// DecodeMsgpack parses a MessagePack array of records.
func DecodeMsgpack(data []byte) ([]Record, error) {
	var out []Record
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecords, err)
	}
	return out, nil
}

// Encode dispatches on f.
func Encode(records []Record, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(records)
	case FormatMsgpack:
		return EncodeMsgpack(records)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Decode dispatches on f.
func Decode(data []byte, f Format) ([]Record, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatMsgpack:
		return DecodeMsgpack(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}
