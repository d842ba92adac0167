package models

import (
	"encoding/json"
	"strconv"
)

// ID identifies a persisted record. The zero value means the record was never saved.
type ID struct {
	n     int64
	saved bool
}

// SavedID returns the ID of a record the store assigned n to.
func SavedID(n int64) ID { return ID{n: n, saved: true} }

// Value returns the store identifier and whether the record has been saved.
func (id ID) Value() (int64, bool) { return id.n, id.saved }

func (id ID) IsSaved() bool { return id.saved }

// Int64 returns the identifier, or 0 for an unsaved record.
func (id ID) Int64() int64 { return id.n }

func (id ID) String() string {
	if !id.saved {
		return "unsaved"
	}
	return strconv.FormatInt(id.n, 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if !id.saved {
		return []byte("null"), nil
	}
	return json.Marshal(id.n)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ID{}
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = SavedID(n)
	return nil
}
