// Package payload defines the JSON document carried in the compressed request
// body and its codec.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
)

// Record is the document serialized into the request body. Struct field order
// pins the serialized key order: message, status, data.
type Record struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    Data   `json:"data"`
}

// Data is the nested part of a Record.
type Data struct {
	Items       []int  `json:"items"`
	Description string `json:"description"`
}

// Default returns the built-in demo record.
func Default() Record {
	return Record{
		Message: "Hello, Gzip World!",
		Status:  "success",
		Data: Data{
			Items:       []int{1, 2, 3, 4, 5},
			Description: "This is a test of gzip compression for cURL --data-raw.",
		},
	}
}

// Marshal encodes r as compact UTF-8 JSON.
func Marshal(r Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a JSON document into a Record.
func Unmarshal(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("payload: %w", err)
	}
	return r, nil
}

// FromFile loads a record from a JSON file.
func FromFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("payload: %w", err)
	}
	return Unmarshal(data)
}
