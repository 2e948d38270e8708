package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// LegRecord is one remote call made while running a transfer.
type LegRecord struct {
	Name   string `json:"name"`
	Bank   string `json:"bank"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// LegTrail is stored as a jsonb array.
type LegTrail []LegRecord

// Value implements the driver.Valuer interface
func (l LegTrail) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *LegTrail) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported leg trail column type")
	}
	return json.Unmarshal(bytes, l)
}
